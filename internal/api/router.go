package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/api/handler"
	"github.com/thingful/thingful-api/internal/api/metrics"
	"github.com/thingful/thingful-api/internal/api/middleware"
	"github.com/thingful/thingful-api/internal/core/auth"
	"github.com/thingful/thingful-api/internal/core/ports"
	"github.com/thingful/thingful-api/internal/core/sanitize"
	"github.com/thingful/thingful-api/internal/core/service"
	redisinfra "github.com/thingful/thingful-api/internal/infrastructure/db/redis"
	"github.com/thingful/thingful-api/internal/infrastructure/db/sqlstore"
)

// Options carries everything the router needs to assemble the API.
type Options struct {
	DB          *sql.DB
	Redis       *redis.Client // nil disables the things-listing cache
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	HashWorkers int
	CacheTTL    time.Duration
	Logger      zerolog.Logger
}

// NewRouter wires repositories, services, and handlers into a configured
// Echo instance. The caller owns the DB and Redis lifecycles.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("thingful"))

	// Repositories.
	users := sqlstore.NewUserRepository(opts.DB)
	things := sqlstore.NewThingRepository(opts.DB)
	reviews := sqlstore.NewReviewRepository(opts.DB)

	// Core collaborators.
	hasher := auth.NewHasher(opts.BcryptCost, opts.HashWorkers)
	codec := auth.NewTokenCodec(opts.JWTSecret, opts.TokenTTL)
	sanitizer := sanitize.New()
	metrics.ObserveHashQueueDepth(hasher.QueueDepth)

	var cache ports.ThingListCache
	if opts.Redis != nil {
		cache = redisinfra.NewThingListCache(opts.Redis, opts.CacheTTL, opts.Logger)
	}

	// Services.
	basic := service.NewBasicAuthenticator(users, hasher)
	bearer := service.NewBearerAuthenticator(users, codec)
	authSvc := service.NewAuthService(basic, codec)
	userSvc := service.NewUserService(users, hasher, sanitizer, opts.Logger)
	thingSvc := service.NewThingService(things, sanitizer, cache, opts.Logger)
	reviewSvc := service.NewReviewService(reviews, things, sanitizer, cache, opts.Logger)

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	thingHandler := handler.NewThingHandler(thingSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	healthHandler := handler.NewHealthHandler(opts.DB, opts.Redis)

	requireBasic := middleware.RequireAuth(basic)
	requireBearer := middleware.RequireAuth(bearer)

	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := e.Group("/api")
	apiGroup.GET("/things", thingHandler.List)
	apiGroup.GET("/things/:thing_id", thingHandler.Get, requireBearer)
	apiGroup.GET("/things/:thing_id/reviews", thingHandler.ListReviews, requireBearer)
	apiGroup.POST("/reviews", reviewHandler.Create, requireBasic)
	apiGroup.POST("/users", userHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	return e
}
