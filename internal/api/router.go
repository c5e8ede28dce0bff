package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/blog-app/blog-api/docs"
	"github.com/blog-app/blog-api/internal/api/handler"
	"github.com/blog-app/blog-api/internal/api/middleware"
	"github.com/blog-app/blog-api/internal/api/session"
	"github.com/blog-app/blog-api/internal/core/ports"
)

// Dependencies are the services and connections the router wires into
// handlers. Mongo and Redis are only used by the readiness probe and may be
// nil.
type Dependencies struct {
	AuthService    ports.AuthService
	PostService    ports.PostService
	ContactService ports.ContactService

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// Options tune the HTTP surface.
type Options struct {
	Cookies     session.Cookies
	CORSOrigins []string
	BodyLimit   string

	// StaticRoot is served under /public. Empty disables static files.
	StaticRoot string

	// RateLimitStore backs the limiter on /register, /login and /contact.
	// When nil an in-process store allowing RateLimitRPS with RateLimitBurst
	// is used.
	RateLimitStore echomiddleware.RateLimiterStore
	RateLimitRPS   float64
	RateLimitBurst int

	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Binder = handler.NewBinder()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	metricsMiddleware, err := middleware.Metrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	bodyLimit := opts.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "50M"
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(metricsMiddleware)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService, opts.Cookies)
	postHandler := handler.NewPostHandler(deps.PostService)
	contactHandler := handler.NewContactHandler(deps.ContactService)
	authMiddleware := middleware.Auth(deps.AuthService, opts.Cookies)
	limiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: rateLimitStore(opts),
	})

	// --- Auth routes ---
	e.POST("/register", authHandler.Register, limiter)
	e.POST("/login", authHandler.Login, limiter)
	e.GET("/logout", authHandler.Logout)
	e.GET("/", authHandler.Me, authMiddleware)

	// --- Post routes ---
	e.POST("/create", postHandler.Create, authMiddleware)
	e.GET("/getposts", postHandler.List)
	e.GET("/getpostbyid/:id", postHandler.Get)
	e.PUT("/editpost/:id", postHandler.Update, authMiddleware)
	e.DELETE("/deletepost/:id", postHandler.Delete, authMiddleware)

	e.POST("/contact", contactHandler.Submit, limiter)

	if opts.StaticRoot != "" {
		e.Static("/public", opts.StaticRoot)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func rateLimitStore(opts Options) echomiddleware.RateLimiterStore {
	if opts.RateLimitStore != nil {
		return opts.RateLimitStore
	}

	rps, burst := opts.RateLimitRPS, opts.RateLimitBurst
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = int(rps)
	}
	return echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
}
