package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/api/handler"
	"github.com/redmisiones/news-api/internal/api/middleware"
	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/ports"
	"github.com/redmisiones/news-api/internal/infrastructure/config"
)

// Deps carries everything the router needs, already constructed.
type Deps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Pool     *pgxpool.Pool
	Users    ports.UserRepository
	Verifier *auth.Verifier
	Auth     ports.AuthService
	UserSvc  ports.UserService
	News     ports.NewsService
	Blobs    handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("newsapi"))

	authGuard := middleware.Auth(d.Verifier, d.Users, d.Logger)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify)

	// --- User directory ---
	userHandler := handler.NewUserHandler(d.UserSvc)
	users := e.Group("/users", authGuard)
	users.POST("", userHandler.Create, middleware.RequireScopes("admin"))
	users.GET("", userHandler.List, middleware.RequireScopes("admin"))
	users.GET("/:id", userHandler.Get, middleware.RequireScopes("user"))
	users.PUT("/:id", userHandler.Update, middleware.RequireScopes("user"))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireScopes("admin"))

	// --- News ---
	newsHandler := handler.NewNewsHandler(d.News)
	e.GET("/api/news", newsHandler.List)
	e.GET("/api/news/:id", newsHandler.Get)
	e.POST("/api/news", newsHandler.Create, authGuard, middleware.RequireScopes("user"))
	e.PUT("/api/news/:id", newsHandler.Update, authGuard, middleware.RequireScopes("user"))
	e.DELETE("/api/news/:id", newsHandler.Delete, authGuard, middleware.RequireScopes("admin"))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Pool, d.Blobs)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Uploaded/local static assets.
	e.Static("/static", d.Config.StaticDir)

	return e
}
