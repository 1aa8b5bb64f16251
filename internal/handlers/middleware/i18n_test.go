package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/snaplink/snaplink-backend/internal/infrastructure/i18n"
)

func newI18nTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, err := i18n.NewService("en")
	if err != nil {
		t.Fatalf("falha ao criar serviço i18n: %v", err)
	}

	router := gin.New()
	router.Use(NewI18nMiddleware(service).DetectLanguage())
	router.GET("/", func(c *gin.Context) {
		lang, _ := c.Get(LanguageContextKey)
		c.String(http.StatusOK, "%s", lang)
	})
	return router
}

func TestDetectLanguage(t *testing.T) {
	router := newI18nTestRouter(t)

	cases := []struct {
		name           string
		query          string
		acceptLanguage string
		want           string
	}{
		{"sem pistas cai no idioma padrão", "", "", "en"},
		{"query lang tem prioridade", "?lang=pt-BR", "en", "pt-BR"},
		{"query lang não suportada é ignorada", "?lang=fr", "", "en"},
		{"Accept-Language simples", "", "pt-BR", "pt-BR"},
		{"Accept-Language com pesos", "", "fr-FR,fr;q=0.9,pt-BR;q=0.8,en;q=0.7", "pt-BR"},
		{"idioma não suportado cai no padrão", "", "de-DE,de;q=0.9", "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			router.ServeHTTP(w, req)

			if w.Body.String() != tc.want {
				t.Errorf("esperava idioma %q, obteve %q", tc.want, w.Body.String())
			}
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	service, err := i18n.NewService("en")
	if err != nil {
		t.Fatalf("falha ao criar serviço i18n: %v", err)
	}
	m := NewI18nMiddleware(service)

	t.Run("variação regional cai na base suportada", func(t *testing.T) {
		// en-GB não existe no catálogo, mas en sim
		if got := m.parseAcceptLanguage("en-GB,en-US;q=0.9"); got != "en" {
			t.Errorf("esperava 'en', obteve %q", got)
		}
	})

	t.Run("header vazio retorna vazio", func(t *testing.T) {
		if got := m.parseAcceptLanguage(""); got != "" {
			t.Errorf("esperava vazio, obteve %q", got)
		}
	})
}
