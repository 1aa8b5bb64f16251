package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/handlers/dto"
	"github.com/snaplink/snaplink-backend/internal/handlers/middleware"
	"github.com/snaplink/snaplink-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser cria um novo usuário
// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponseI18n(c, err)
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
		case errs.Is(err, errors.ErrInvalidEmail):
			dto.ValidationErrorResponseI18n(c, nil)
		default:
			dto.InternalErrorResponseI18n(c)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.T(c, "user.created")})
}

// UpdateUser atualiza parcialmente o usuário autenticado
// PATCH /users
func (h *UserHandler) UpdateUser(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		dto.UnauthorizedErrorResponseI18n(c)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponseI18n(c, err)
		return
	}

	err := h.userService.UpdateUser(c.Request.Context(), claims.UserID, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// NotFound continua NotFound para o chamador; nada de remap
		// genérico para Forbidden
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			dto.NotFoundErrorResponseI18n(c, "User")
		case errs.Is(err, errors.ErrNothingToUpdate):
			dto.BadRequestErrorResponseI18n(c, "error.nothing_to_update")
		case errs.Is(err, errors.ErrUpdateFailed):
			dto.BadRequestErrorResponseI18n(c, "error.update_failed")
		case errs.Is(err, errors.ErrInvalidEmail):
			dto.ValidationErrorResponseI18n(c, nil)
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
		default:
			dto.InternalErrorResponseI18n(c)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "user.updated")})
}

// DeleteUser faz soft delete do usuário autenticado e de suas URLs
// DELETE /users
func (h *UserHandler) DeleteUser(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		dto.UnauthorizedErrorResponseI18n(c)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), claims.UserID); err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			dto.NotFoundErrorResponseI18n(c, "User")
			return
		}
		dto.InternalErrorResponseI18n(c)
		return
	}

	c.Status(http.StatusNoContent)
}
