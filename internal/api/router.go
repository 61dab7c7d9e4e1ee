package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/WaleedUkhan/Backend-Development/internal/api/handler"
	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/api/render"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/service"
	"github.com/WaleedUkhan/Backend-Development/internal/infrastructure/config"
	mongodb "github.com/WaleedUkhan/Backend-Development/internal/infrastructure/db/mongo"
	redisdb "github.com/WaleedUkhan/Backend-Development/internal/infrastructure/db/redis"
	"github.com/WaleedUkhan/Backend-Development/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backend"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	diskStore, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	authService := service.NewAuthService(userRepo, sessionStore)
	articleService := service.NewArticleService(articleRepo)
	fileService := service.NewFileService(diskStore, cfg.Upload.MaxSizeMB<<20)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName, log)
	dashboardHandler := handler.NewDashboardHandler()
	articleHandler := handler.NewArticleHandler(articleService)
	fileHandler := handler.NewFileHandler(fileService)
	homeHandler := handler.NewHomeHandler(fileService, log)

	e.Use(middleware.Session(sessionStore, middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	}))
	requireAuth := middleware.RequireAuth()

	// --- Pages ---
	e.GET("/", homeHandler.Home)

	// --- Auth routes ---
	e.GET("/auth/login", authHandler.ShowLogin)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/register", authHandler.ShowRegister)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/logout", authHandler.Logout)

	// --- Dashboards (authenticated only; role resolution in the handler) ---
	dashboard := e.Group("/dashboard", requireAuth)
	dashboard.GET("", dashboardHandler.Home)
	dashboard.GET("/:role", dashboardHandler.Show)

	// --- News CMS ---
	e.GET("/articles", articleHandler.List)
	e.GET("/articles/:id", articleHandler.Show)
	e.POST("/articles", articleHandler.Create, requireAuth, middleware.RequireRole(domain.RoleManager))
	e.POST("/articles/:id/delete", articleHandler.Delete, requireAuth, middleware.RequireRole(domain.RoleAdmin))

	// --- File manager ---
	e.GET("/upload", fileHandler.ShowUpload, requireAuth)
	e.POST("/upload", fileHandler.Upload, requireAuth)
	e.GET("/files", fileHandler.List, requireAuth)
	e.DELETE("/files/:name", fileHandler.Delete, requireAuth, middleware.RequireRole(domain.RoleManager))
	e.Static("/uploads", diskStore.Dir())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
