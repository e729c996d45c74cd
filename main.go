package main

import (
	"context"
	_ "embed"
	"log/slog"
	"os"
	"time"

	"github.com/hanksha/strajk-bowling/api"
	bk "github.com/hanksha/strajk-bowling/booking"
	"github.com/hanksha/strajk-bowling/bookingapi"
	"github.com/hanksha/strajk-bowling/config"
	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/hanksha/strajk-bowling/session"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

//go:embed database/setup.sql
var setupSQL string

const stubAPIKey = "strajk-local-key"

func main() {
	cfg, err := config.Load()

	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))
	logger := slog.Default().With("component", "main")

	sessions, closeSessions, err := openSessions(cfg, logger)

	if err != nil {
		logger.Error("failed to open session store", "backend", cfg.SessionBackend, "err", err)
		os.Exit(1)
	}

	defer closeSessions()

	bookingClient := bookingapi.NewClient(cfg.APIURL(), cfg.BookingAPIKey)

	submitter := bk.NewSubmitter(bookingClient, sessions)
	bookingService := bk.NewService(submitter, cfg.DraftTTL)
	confirmationService := confirmation.NewService(sessions, confirmation.NewResolver())

	flash := api.NewFlashStore(5 * time.Minute)
	limiter := api.NewRateLimiter(cfg.SubmitRatePerSecond, cfg.SubmitBurst, 3*time.Minute)

	r := gin.Default()
	r.SetHTMLTemplate(api.Templates())

	api.NewSystemHandler().Register(r.Group(""))

	// BOOKING API STUB

	if cfg.BookingAPIStub {
		stubKey := cfg.BookingAPIKey
		if len(stubKey) == 0 {
			stubKey = stubAPIKey
		}
		logger.Info("serving booking api stub", "url", cfg.APIURL())
		bookingapi.NewStub(stubKey).Register(r.Group("/stub"))
	}

	// WEB

	webRouter := r.Group("")
	webRouter.Use(api.SessionCookie(cfg.SessionTTL))
	api.NewWebHandler(bookingService, confirmationService, flash, limiter).Register(webRouter)

	// BOOKING API

	bookingRouter := r.Group("/api/v1/booking")
	bookingRouter.Use(api.SessionCookie(cfg.SessionTTL))
	api.NewBookingHandler(bookingService, confirmationService, flash, limiter).Register(bookingRouter)

	logger.Info("starting server", "port", cfg.Port, "sessionBackend", cfg.SessionBackend)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func openSessions(cfg config.Config, logger *slog.Logger) (session.Manager, func(), error) {
	ctx := context.Background()

	switch cfg.SessionBackend {
	case config.BackendPostgres:
		logger.Info("connecting to PostgreSQL database")
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, nil, err
		}

		if _, err := pool.Exec(ctx, setupSQL); err != nil {
			pool.Close()
			return nil, nil, err
		}

		logger.Info("initialized database tables")
		return session.NewPostgresManager(pool, cfg.SessionTTL), pool.Close, nil

	case config.BackendRedis:
		logger.Info("connecting to Redis", "addr", cfg.RedisAddr)
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}

		return session.NewRedisManager(client, cfg.SessionTTL), func() { client.Close() }, nil

	default:
		return session.NewMemoryManager(cfg.SessionTTL), func() {}, nil
	}
}
