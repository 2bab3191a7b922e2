package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulseboard/dashboard-api/internal/api/handler"
	"github.com/pulseboard/dashboard-api/internal/api/middleware"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
	"github.com/pulseboard/dashboard-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires into handlers and middleware.
// Mongo and Redis are nil unless the corresponding backend is configured;
// the readiness probe skips whatever is absent.
type Deps struct {
	Accounts       ports.AccountRepository
	AuthService    ports.AuthService
	Tokens         ports.TokenVerifier
	Metrics        ports.MetricsService
	GeneralLimiter ports.RateLimiter
	AuthLimiter    ports.RateLimiter
	Mongo          *mongo.Database
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds the Echo instance with the full request pipeline: the
// general rate limit runs before dispatch on every route, then per-route
// stages in order — auth bucket on login, bearer auth on protected routes,
// role gate on admin routes — each failing fast into the error handler.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))
	e.Use(middleware.RateLimit(deps.GeneralLimiter, middleware.BucketGeneral, deps.Logger))

	authMW := middleware.Auth(deps.Tokens)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	metricsHandler := handler.NewMetricsHandler(deps.Metrics)
	transactionHandler := handler.NewTransactionHandler(deps.Metrics)
	userHandler := handler.NewUserHandler(deps.Accounts)

	// --- Auth ---
	e.POST("/login", authHandler.Login,
		middleware.RateLimit(deps.AuthLimiter, middleware.BucketAuth, deps.Logger))

	// --- Protected dashboard routes ---
	e.GET("/kpis", metricsHandler.KPIs, authMW)
	e.GET("/sales", metricsHandler.Sales, authMW)
	e.GET("/transactions", transactionHandler.List, authMW)
	e.GET("/analytics/overview", metricsHandler.Overview, authMW)

	// --- Admin routes ---
	e.GET("/users", userHandler.List, authMW, adminMW)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
