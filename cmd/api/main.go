package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	httphandlers "github.com/snaplink/snaplink-backend/internal/handlers/http"
	"github.com/snaplink/snaplink-backend/internal/handlers/middleware"
	infraauth "github.com/snaplink/snaplink-backend/internal/infrastructure/auth"
	"github.com/snaplink/snaplink-backend/internal/infrastructure/config"
	"github.com/snaplink/snaplink-backend/internal/infrastructure/i18n"
	"github.com/snaplink/snaplink-backend/internal/infrastructure/logging"
	"github.com/snaplink/snaplink-backend/internal/infrastructure/persistence/postgres"
	"github.com/snaplink/snaplink-backend/internal/services"
)

func main() {
	// Carregar .env para o ambiente (opcional em produção)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting snaplink backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	urlRepo := postgres.NewUrlRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Colaboradores externos: hasher e token service
	hasher := infraauth.NewBcryptHasher(cfg.Hash.Cost)
	tokens := infraauth.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Inicializar services
	userService := services.NewUserService(userRepo, urlRepo, uow, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	urlService := services.NewUrlService(urlRepo, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService)
	urlHandler := httphandlers.NewUrlHandler(urlService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Correlação de requisições
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Users
	router.POST("/users", userHandler.CreateUser)
	router.PATCH("/users", authMiddleware.RequireAuth(), userHandler.UpdateUser)
	router.DELETE("/users", authMiddleware.RequireAuth(), userHandler.DeleteUser)

	// Auth
	router.POST("/auth/login", authHandler.Login)

	// URLs
	router.POST("/urls", authMiddleware.OptionalAuth(), urlHandler.CreateUrl)
	router.GET("/all-urls", authMiddleware.RequireAuth(), urlHandler.ListUrls)
	router.PATCH("/update-url", authMiddleware.RequireAuth(), urlHandler.UpdateUrl)
	router.DELETE("/:id", authMiddleware.RequireAuth(), urlHandler.DeleteUrl)

	// Redirect público fica por último no registro, mas o Gin resolve
	// rotas estáticas antes do parâmetro
	router.GET("/:shortCode", urlHandler.Redirect)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
