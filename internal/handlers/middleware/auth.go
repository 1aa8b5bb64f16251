package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/snaplink/snaplink-backend/internal/domain/errors"
	"github.com/snaplink/snaplink-backend/internal/domain/ports"
	"github.com/snaplink/snaplink-backend/internal/infrastructure/i18n"
)

const (
	// AuthClaimsContextKey é a chave das claims do usuário autenticado no contexto
	AuthClaimsContextKey = "auth_claims"
)

// AuthMiddleware valida tokens bearer nas rotas protegidas
type AuthMiddleware struct {
	tokens ports.TokenService
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth rejeita requisições sem token válido com 401.
// Token ausente, malformado, inválido e expirado recebem a mesma resposta.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.parseBearer(c)
		if !ok {
			m.unauthorized(c)
			return
		}

		c.Set(AuthClaimsContextKey, claims)
		c.Next()
	}
}

// OptionalAuth trata requisições sem header Authorization como anônimas,
// mas rejeita headers presentes e inválidos.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := m.parseBearer(c)
		if !ok {
			m.unauthorized(c)
			return
		}

		c.Set(AuthClaimsContextKey, claims)
		c.Next()
	}
}

// parseBearer extrai e verifica o token do header Authorization
func (m *AuthMiddleware) parseBearer(c *gin.Context) (*ports.TokenClaims, bool) {
	header := c.GetHeader("Authorization")

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, false
	}

	claims, err := m.tokens.Verify(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

// unauthorized responde 401 RFC 7807.
// Não usa o pacote dto para evitar ciclo de import (dto depende das
// chaves de contexto deste pacote).
func (m *AuthMiddleware) unauthorized(c *gin.Context) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(http.StatusUnauthorized)
	p.Type = baseURL + errors.ProblemTypeUnauthorized
	p.Title = m.translate(c, "error.unauthorized.title")
	p.Detail = m.translate(c, "error.unauthorized.detail")
	p.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, p)
}

func (m *AuthMiddleware) translate(c *gin.Context, key string) string {
	svc, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := svc.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}

// CurrentClaims retorna as claims do usuário autenticado, se houver
func CurrentClaims(c *gin.Context) (*ports.TokenClaims, bool) {
	value, exists := c.Get(AuthClaimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*ports.TokenClaims)
	return claims, ok
}
