package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/choremarket/chore-api/internal/docs"

	"github.com/choremarket/chore-api/internal/api/handler"
	"github.com/choremarket/chore-api/internal/api/middleware"
	"github.com/choremarket/chore-api/internal/core/domain"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Redis may be nil when
// the service runs fully in-memory.
type Dependencies struct {
	Accounts ports.AccountService
	Chores   ports.ChoreService
	Sessions ports.SessionStore
	Limiter  ports.AdmissionController
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("choremarket"))
	e.Use(middleware.RateLimit(deps.Limiter, deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Accounts)
	choreHandler := handler.NewChoreHandler(deps.Chores)
	authRequired := middleware.Auth(deps.Sessions)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authRequired)

	// --- Chore lifecycle (all authenticated) ---
	chores := e.Group("/chores", authRequired)
	chores.POST("", choreHandler.Create, middleware.RBAC(domain.RoleRequester))
	chores.GET("", choreHandler.List)
	chores.POST("/:id/pay", choreHandler.Pay, middleware.RBAC(domain.RoleRequester))
	chores.POST("/:id/assign", choreHandler.Assign, middleware.RBAC(domain.RoleProvider))
	chores.POST("/:id/complete", choreHandler.Complete, middleware.RBAC(domain.RoleProvider))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
