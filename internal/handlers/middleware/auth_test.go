package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaplink/snaplink-backend/internal/domain/ports"
)

// fakeTokenService aceita apenas o token "good" e rejeita o resto
type fakeTokenService struct {
	claims ports.TokenClaims
}

func (f *fakeTokenService) Sign(claims ports.TokenClaims) (string, error) {
	return "good", nil
}

func (f *fakeTokenService) Verify(token string) (*ports.TokenClaims, error) {
	if token != "good" {
		return nil, fmt.Errorf("invalid token")
	}
	claims := f.claims
	return &claims, nil
}

func newAuthTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	tokens := &fakeTokenService{claims: ports.TokenClaims{UserID: 42, Email: "maria@example.com"}}
	router := newAuthTestRouter(NewAuthMiddleware(tokens).RequireAuth())

	t.Run("sem header responde 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
	})

	t.Run("token válido libera a rota com as claims no contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":42`)
	})

	t.Run("token inválido responde 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer forged")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("header malformado responde 401", func(t *testing.T) {
		for _, header := range []string{"good", "Basic good", "Bearer", "Bearer "} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	tokens := &fakeTokenService{claims: ports.TokenClaims{UserID: 42, Email: "maria@example.com"}}
	router := newAuthTestRouter(NewAuthMiddleware(tokens).OptionalAuth())

	t.Run("sem header segue como anônimo", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"anonymous":true`)
	})

	t.Run("token válido anexa as claims", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":42`)
	})

	t.Run("header presente mas inválido responde 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer forged")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
