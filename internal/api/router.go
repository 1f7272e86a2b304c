package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/admindesk/user-management/internal/api/handler"
	"github.com/admindesk/user-management/internal/api/middleware"
	"github.com/admindesk/user-management/internal/core/domain"
	"github.com/admindesk/user-management/internal/core/ports"
	"github.com/admindesk/user-management/internal/core/service"
	"github.com/admindesk/user-management/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store handle is passed in explicitly; the router owns no global state.
func NewRouter(userRepo ports.UserRepository, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("user_management"))

	// --- Dependencies ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler()

	requireAuth := middleware.Auth(authService)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	users := api.Group("/users", requireAuth)
	users.GET("", userHandler.List, requireAdmin)
	users.GET("/:id", userHandler.Get) // self-or-admin scope enforced in the service
	users.POST("", userHandler.Create, requireAdmin)
	users.PUT("/:id", userHandler.Update, requireAdmin)
	users.DELETE("/:id", userHandler.Delete, requireAdmin)

	api.GET("/health", healthHandler.Liveness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
