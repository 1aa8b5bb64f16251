package dto

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
)

// ProblemResponse segue RFC 7807 (Problem Details for HTTP APIs),
// estendendo o problem padrão com erros de validação por campo
type ProblemResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// newProblem cria uma resposta de erro RFC 7807 com título e detalhe via i18n
func newProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *ProblemResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(status)
	p.Type = baseURL + problemType
	p.Title = T(c, titleKey, params...)
	p.Detail = T(c, detailKey, params...)
	p.Instance = c.Request.URL.Path

	return &ProblemResponse{DefaultProblem: p}
}

// RespondProblem escreve o problem com o media type application/problem+json
func RespondProblem(c *gin.Context, p *ProblemResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(p.Status, p)
}

// ValidationErrorResponseI18n responde 400 com os campos inválidos do binding
func ValidationErrorResponseI18n(c *gin.Context, err error) {
	p := newProblem(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	p.Errors = bindingErrors(err)
	RespondProblem(c, p)
}

// NotFoundErrorResponseI18n responde 404 para o recurso informado
func NotFoundErrorResponseI18n(c *gin.Context, resource string) {
	RespondProblem(c, newProblem(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	))
}

// ConflictErrorResponseI18n responde 409 com o detalhe informado
func ConflictErrorResponseI18n(c *gin.Context, detailKey string) {
	RespondProblem(c, newProblem(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
	))
}

// UnauthorizedErrorResponseI18n responde 401
func UnauthorizedErrorResponseI18n(c *gin.Context) {
	RespondProblem(c, newProblem(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	))
}

// BadRequestErrorResponseI18n responde 400 com o detalhe informado
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) {
	RespondProblem(c, newProblem(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	))
}

// InternalErrorResponseI18n responde 500 sem vazar detalhes internos
func InternalErrorResponseI18n(c *gin.Context) {
	RespondProblem(c, newProblem(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	))
}

// bindingErrors extrai erros de campo do validator usado pelo binding do Gin
func bindingErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return out
}
