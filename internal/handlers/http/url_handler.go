package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/handlers/dto"
	"github.com/snaplink/snaplink-backend/internal/handlers/middleware"
	"github.com/snaplink/snaplink-backend/internal/services"
)

// UrlHandler lida com requisições HTTP relacionadas a URLs encurtadas
type UrlHandler struct {
	urlService *services.UrlService
}

// NewUrlHandler cria um novo UrlHandler
func NewUrlHandler(urlService *services.UrlService) *UrlHandler {
	return &UrlHandler{
		urlService: urlService,
	}
}

// CreateUrl encurta uma URL. Autenticação é opcional: com token a URL
// pertence ao usuário do token; sem token vale o userId do corpo (ou
// nenhum dono).
// POST /urls
func (h *UrlHandler) CreateUrl(c *gin.Context) {
	var req dto.CreateUrlRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponseI18n(c, err)
		return
	}

	ownerID := req.UserID
	if claims, ok := middleware.CurrentClaims(c); ok {
		ownerID = &claims.UserID
	}

	snapLink, err := h.urlService.Create(c.Request.Context(), services.CreateUrlInput{
		OriginalURL: req.OriginalURL,
		OwnerID:     ownerID,
	}, c.Request.Host)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrInvalidURL):
			dto.ValidationErrorResponseI18n(c, nil)
		case errs.Is(err, errors.ErrCodeSpaceExhausted):
			dto.InternalErrorResponseI18n(c)
		default:
			dto.InternalErrorResponseI18n(c)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SnapLinkResponse{SnapLink: snapLink})
}

// Redirect resolve um short code, contabiliza o clique e redireciona.
// Responde 404 em texto puro: esta rota é servida direto a browsers.
// GET /:shortCode
func (h *UrlHandler) Redirect(c *gin.Context) {
	code := c.Param("shortCode")

	originalURL, err := h.urlService.Resolve(c.Request.Context(), code)
	if err != nil {
		if errs.Is(err, errors.ErrUrlNotFound) {
			c.String(http.StatusNotFound, "URL not found")
			return
		}
		dto.InternalErrorResponseI18n(c)
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}

// ListUrls lista as URLs ativas do usuário autenticado.
// Usuário sem URLs recebe uma lista vazia, não um erro.
// GET /all-urls
func (h *UrlHandler) ListUrls(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		dto.UnauthorizedErrorResponseI18n(c)
		return
	}

	urls, err := h.urlService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		dto.InternalErrorResponseI18n(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUrlResponses(urls))
}

// UpdateUrl troca o destino de uma URL do usuário autenticado.
// Se o novo destino já tem registro ativo do mesmo dono, devolve o link
// existente sem mutação.
// PATCH /update-url
func (h *UrlHandler) UpdateUrl(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		dto.UnauthorizedErrorResponseI18n(c)
		return
	}

	var req dto.UpdateUrlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponseI18n(c, err)
		return
	}

	result, err := h.urlService.Update(c.Request.Context(), claims.UserID, services.UpdateUrlInput{
		OriginalURL:    req.OriginalURL,
		NewOriginalURL: req.NewOriginalURL,
	}, c.Request.Host)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUrlNotFound):
			dto.NotFoundErrorResponseI18n(c, "Url")
		case errs.Is(err, errors.ErrUpdateFailed):
			dto.BadRequestErrorResponseI18n(c, "error.update_failed")
		default:
			dto.InternalErrorResponseI18n(c)
		}
		return
	}

	if !result.Updated {
		c.JSON(http.StatusOK, dto.SnapLinkResponse{SnapLink: result.SnapLink})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "url.updated")})
}

// DeleteUrl faz soft delete de uma URL do usuário autenticado
// DELETE /:id
func (h *UrlHandler) DeleteUrl(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		dto.UnauthorizedErrorResponseI18n(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ValidationErrorResponseI18n(c, nil)
		return
	}

	if err := h.urlService.Delete(c.Request.Context(), claims.UserID, uint(id)); err != nil {
		if errs.Is(err, errors.ErrUrlNotFound) {
			dto.NotFoundErrorResponseI18n(c, "Url")
			return
		}
		dto.InternalErrorResponseI18n(c)
		return
	}

	c.Status(http.StatusNoContent)
}
