package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/handlers/dto"
	"github.com/snaplink/snaplink-backend/internal/services"
)

// AuthHandler lida com requisições de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica o usuário e emite um token de acesso
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponseI18n(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Email desconhecido e senha errada produzem a mesma resposta
		if errs.Is(err, errors.ErrInvalidCredentials) {
			dto.UnauthorizedErrorResponseI18n(c)
			return
		}
		dto.InternalErrorResponseI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
}
