package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/candles/rsvp-system/internal/api/handler"
	"github.com/candles/rsvp-system/internal/api/middleware"
	"github.com/candles/rsvp-system/internal/core/service"
	"github.com/candles/rsvp-system/internal/identity"
	"github.com/candles/rsvp-system/internal/infrastructure/config"
	mongodb "github.com/candles/rsvp-system/internal/infrastructure/db/mongo"
	redisdb "github.com/candles/rsvp-system/internal/infrastructure/db/redis"
	"github.com/candles/rsvp-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("rsvp"))

	// --- Identity ---
	codec := identity.NewCodec(cfg.SecretKey)
	sessions := identity.NewManager(codec, cfg.CookieName, cfg.CookieDomain, cfg.CookieSecure)
	hasher := identity.NewHasher(cfg.HashSalt)

	// --- Dependencies ---
	domainRepo := mongodb.NewDomainRepository(db)
	inviteRepo := mongodb.NewInviteRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	guard := redisdb.NewSubmissionGuard(rdb)

	authService := service.NewAuthService(domainRepo, hasher, log)
	inviteService := service.NewInviteService(inviteRepo, eventRepo, guard, log)

	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SocketConnectionToken)
	eventHandler := handler.NewEventHandler(inviteService)
	adminGate := middleware.Admin(sessions)

	// --- API routes (session attached to every request) ---
	apiGroup := e.Group("/api", middleware.Session(sessions))

	auth := apiGroup.Group("/auth")
	auth.GET("/privilege", authHandler.Privilege)
	auth.GET("/secret", authHandler.Secret)
	auth.POST("/login", authHandler.Login)

	events := apiGroup.Group("/events")
	events.GET("/master/:eventId/codes", eventHandler.ListCodes, adminGate)
	events.GET("/master/:eventId/code/create", eventHandler.CreateCode, adminGate)
	events.POST("/:inviteId", eventHandler.SubmitRSVP)
	events.GET("/:inviteId", eventHandler.InviteDetails)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
