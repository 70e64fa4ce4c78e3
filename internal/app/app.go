package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/db"
	apphttp "github.com/yungbote/storefront-backend/internal/http"
	"github.com/yungbote/storefront-backend/internal/observability"
	"github.com/yungbote/storefront-backend/internal/platform/envutil"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/platform/ratelimit"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	dbService    *db.Service
	redis        *redis.Client
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(context.Background(), log, cfg.Otel)

	dbService, err := db.NewService(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init db: %w", err)
	}
	theDB := dbService.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = dbService.Close()
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	if err := db.EnsureSearchIndexes(theDB); err != nil {
		log.Warn("search index setup failed (continuing)", "error", err)
	}

	a := &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		dbService:    dbService,
		otelShutdown: otelShutdown,
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimitEnabled() {
		rl, client, err := ratelimit.NewFromConfig(context.Background(), cfg.RateLimit, log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init rate limiter: %w", err)
		}
		a.redis = client
		limiter = rl
		log.Info("Rate limiting enabled", "limit_per_minute", cfg.RateLimit.Limit)
	}

	a.Repos = wireRepos(theDB, log)
	a.Services = wireServices(theDB, log, cfg, a.Repos)
	handlers := wireHandlers(theDB, log, cfg, a.Services)
	a.Router = wireRouter(log, cfg, handlers, limiter)
	return a, nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return errors.New("app not initialized")
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := apphttp.NewServer(":"+strconv.Itoa(a.Cfg.Port), a.Router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("Server listening", "addr", server.Addr())
		return server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down server", "timeout", a.Cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
		a.redis = nil
	}
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
		a.dbService = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
