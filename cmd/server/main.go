package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/pulseboard/dashboard-api/internal/api"
	"github.com/pulseboard/dashboard-api/internal/api/middleware"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
	"github.com/pulseboard/dashboard-api/internal/core/service"
	"github.com/pulseboard/dashboard-api/internal/infrastructure/config"
	mongodb "github.com/pulseboard/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulseboard/dashboard-api/internal/infrastructure/db/redis"
	"github.com/pulseboard/dashboard-api/internal/infrastructure/memory"
	"github.com/pulseboard/dashboard-api/internal/limiter"
	"github.com/pulseboard/dashboard-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// --- Optional backends ---
	var rdb *goredis.Client
	if cfg.RateLimit.Backend == config.BackendRedis {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	var mongoDB *gomongo.Database
	accounts := ports.AccountRepository(memory.NewAccountRepository(memory.SeededAccounts()...))
	if cfg.Accounts.Backend == config.BackendMongo {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer client.Disconnect(context.Background())
		mongoDB = db
		accounts = mongodb.NewAccountRepository(db)
	}

	// --- Rate limiters, one per bucket ---
	var generalLimiter, authLimiter ports.RateLimiter
	if rdb != nil {
		generalLimiter = redisdb.NewFixedWindowLimiter(rdb, middleware.BucketGeneral, cfg.RateLimit.GeneralLimit, cfg.RateLimit.Window)
		authLimiter = redisdb.NewFixedWindowLimiter(rdb, middleware.BucketAuth, cfg.RateLimit.AuthLimit, cfg.RateLimit.Window)
	} else {
		generalLimiter = limiter.NewFixedWindow(cfg.RateLimit.GeneralLimit, cfg.RateLimit.Window)
		authLimiter = limiter.NewFixedWindow(cfg.RateLimit.AuthLimit, cfg.RateLimit.Window)
	}

	// --- Core services ---
	dataset := memory.NewSeededDataset()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accounts, tokens)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	metricsService := service.NewMetricsService(dataset, dataset, rng, log)

	e := api.NewRouter(api.Deps{
		Accounts:       accounts,
		AuthService:    authService,
		Tokens:         tokens,
		Metrics:        metricsService,
		GeneralLimiter: generalLimiter,
		AuthLimiter:    authLimiter,
		Mongo:          mongoDB,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
