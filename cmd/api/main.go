// Command api runs the blog HTTP API.
//
// @title                       Blog API
// @version                     1.0
// @description                 Personal blog backend: accounts, cookie sessions, posts with inline images and a contact form.
// @BasePath                    /
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/blog-app/blog-api/internal/api"
	"github.com/blog-app/blog-api/internal/api/metrics"
	"github.com/blog-app/blog-api/internal/api/session"
	"github.com/blog-app/blog-api/internal/core/ports"
	"github.com/blog-app/blog-api/internal/core/service"
	"github.com/blog-app/blog-api/internal/infrastructure/db/mongo"
	"github.com/blog-app/blog-api/internal/infrastructure/db/redis"
	"github.com/blog-app/blog-api/internal/infrastructure/imagestore"
	"github.com/blog-app/blog-api/internal/pkg/config"
	"github.com/blog-app/blog-api/pkg/logger"
)

const (
	publicPrefix    = "/public"
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "blog-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	if err := mongo.EnsureIndexes(ctx, userRepo, postRepo); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	// --- Redis (optional) ---
	var (
		rdb            *goredis.Client
		rateLimitStore echomiddleware.RateLimiterStore
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		limit, window := fixedWindow(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		rateLimitStore = redis.NewRateLimitStore(rdb, limit, window, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected, rate limits shared")
	} else {
		log.Info().Msg("redis disabled, rate limits kept in process")
	}

	// --- Image storage ---
	images, staticRoot, err := newImageStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL, log)
	postService := service.NewPostService(postRepo, metrics.InstrumentImageStore(images), log)
	contactService := service.NewContactService(log)

	e, err := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		PostService:    postService,
		ContactService: contactService,
		Mongo:          db,
		Redis:          rdb,
		Log:            log,
	}, api.Options{
		Cookies:        session.NewCookies(cfg.IsProduction(), cfg.SessionTTL),
		CORSOrigins:    splitAndTrimCSV(cfg.CORSOrigin),
		BodyLimit:      cfg.BodyLimit,
		StaticRoot:     staticRoot,
		RateLimitStore: rateLimitStore,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newImageStore returns the configured backend and, for the local backend,
// the directory served under /public.
func newImageStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.ImageStore, string, error) {
	switch cfg.Storage.Backend {
	case "s3":
		store, err := imagestore.NewS3Store(ctx, imagestore.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
		}, log)
		if err != nil {
			return nil, "", err
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("storing images in s3")
		return store, "", nil
	default:
		store, err := imagestore.NewLocalStore(cfg.Storage.Root, publicPrefix, log)
		if err != nil {
			return nil, "", err
		}
		log.Info().Str("root", cfg.Storage.Root).Msg("storing images on local disk")
		return store, cfg.Storage.Root, nil
	}
}

// fixedWindow converts a token-bucket rate into a fixed window that admits
// burst requests and averages out to rps.
func fixedWindow(rps float64, burst int) (int, time.Duration) {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return burst, time.Duration(float64(burst) / rps * float64(time.Second))
}

func splitAndTrimCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
