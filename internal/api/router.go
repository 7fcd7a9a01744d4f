package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pitchbridge/pitchbridge-api/internal/api/handler"
	"github.com/pitchbridge/pitchbridge-api/internal/api/middleware"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// Services bundles the use-case implementations the router exposes. Tests
// inject in-memory implementations here.
type Services struct {
	Auth          ports.AuthService
	Users         ports.UserService
	Startups      ports.StartupService
	Interests     ports.InterestService
	Events        ports.EventService
	Feedback      ports.FeedbackService
	Notifications ports.NotificationService
	Analyzer      ports.AnalyzerService
}

// RouterOptions carries the non-service dependencies of the router. Mongo and
// Redis are only used by the readiness probe; both may be nil, in which case
// /health/ready is not registered.
type RouterOptions struct {
	JWTSecret string
	Log       zerolog.Logger
	Mongo     *mongo.Database
	Redis     *redis.Client
	// Registry overrides the default Prometheus registry. Tests building
	// several routers in one process need isolated registries.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if opts.Registry != nil {
		registerer = opts.Registry
		gatherer = opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "pitchbridge",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)
	startupHandler := handler.NewStartupHandler(svc.Startups, svc.Analyzer)
	interestHandler := handler.NewInterestHandler(svc.Interests)
	eventHandler := handler.NewEventHandler(svc.Events)
	feedbackHandler := handler.NewFeedbackHandler(svc.Feedback)
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)

	auth := middleware.Auth(opts.JWTSecret)

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Authenticated API ---
	apiGroup := e.Group("/api", auth)

	apiGroup.GET("/users/:id", userHandler.Get)
	apiGroup.PATCH("/users/:id", userHandler.Update)
	apiGroup.GET("/users/:id/startups", startupHandler.ListByOwner)
	apiGroup.GET("/users/:id/notifications", notificationHandler.ListByUser)

	apiGroup.GET("/startups", startupHandler.List)
	apiGroup.POST("/startups", startupHandler.Create,
		middleware.RBAC(domain.RoleEntrepreneur, domain.RoleAdmin))
	apiGroup.GET("/startups/:id", startupHandler.Get)
	apiGroup.PATCH("/startups/:id", startupHandler.Update)
	apiGroup.DELETE("/startups/:id", startupHandler.Delete)
	apiGroup.POST("/startups/:id/analyze", startupHandler.Analyze,
		middleware.RBAC(domain.RoleEntrepreneur, domain.RoleAdmin))
	apiGroup.GET("/startups/:id/interests", interestHandler.ListByStartup)
	apiGroup.GET("/startups/:id/ai-feedback", feedbackHandler.GetByStartup)

	apiGroup.POST("/interests", interestHandler.Create,
		middleware.RBAC(domain.RoleInvestor, domain.RoleAdmin))
	apiGroup.GET("/investors/:id/interests", interestHandler.ListByInvestor)
	apiGroup.PATCH("/interests/:id", interestHandler.Update)
	apiGroup.DELETE("/interests/:id", interestHandler.Delete)

	apiGroup.GET("/events", eventHandler.List)
	apiGroup.GET("/events/:id", eventHandler.Get)
	apiGroup.POST("/events", eventHandler.Create,
		middleware.RBAC(domain.RoleAdmin))

	apiGroup.POST("/ai-feedback", feedbackHandler.Save)

	apiGroup.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if opts.Mongo != nil && opts.Redis != nil {
		healthDeps := handler.NewHealthDependenciesHandler(opts.Mongo, opts.Redis)
		e.GET("/health/ready", healthDeps.Readiness)
	}

	return e
}
