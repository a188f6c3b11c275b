package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/config"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/redis"
	"github.com/MrSnakeDoc/tapbook/internal/scheduler"
	"github.com/MrSnakeDoc/tapbook/internal/store"
	"github.com/MrSnakeDoc/tapbook/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/tapbook/internal/store/redis"
	"github.com/MrSnakeDoc/tapbook/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	sessions    *editor.Manager
	catalog     *scheduler.CatalogReloader
	reaper      *scheduler.SessionReaper
}

// Store is an opened business store and the connection behind it.
type Store struct {
	store.Businesses
	client *goredis.Client
}

// Close releases the Redis connection, if any.
func (s *Store) Close(log logger.Logger) {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		log.Warn("failed to close redis", logger.Error(err))
		return
	}
	log.Info("✅ Redis closed cleanly")
}

// OpenStore connects the configured store driver. Redis is dialled with
// retries and fails fast once the connect budget is spent.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (*Store, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store, businesses are lost on restart")
		return &Store{Businesses: memory.New()}, nil
	}

	client, err := redis.Connect(ctx, redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Store{Businesses: redisstore.NewStore(client), client: client}, nil
}

// New wires the store, the catalog, the edit sessions and the HTTP server.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	st, err := OpenStore(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	rv, err := views.New()
	if err != nil {
		st.Close(loggerClient)
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	registry := catalog.NewRegistry()
	reloadTrigger := make(chan struct{}, 1)
	catalogReloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		registry,
		loggerClient,
		cfg.CatalogReloadInterval,
		reloadTrigger,
	)

	sessions := editor.NewManager(st, cfg.AutosaveDelay, loggerClient)
	reaper := scheduler.NewSessionReaper(sessions, loggerClient, cfg.SessionReapInterval, cfg.SessionIdleTTL)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		BaseURL:       cfg.BaseURL,
		StoreDriver:   cfg.StoreDriver,
		Store:         st,
		Intake:        intake.NewService(st, loggerClient),
		Sessions:      sessions,
		Catalog:       registry,
		Views:         rv,
		ReloadTrigger: reloadTrigger,
		RateLimit: deps.RateLimit{
			Burst:  cfg.RateLimitBurst,
			PerMin: cfg.RateLimitPerMin,
		},
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: st.client,
		sessions:    sessions,
		catalog:     catalogReloader,
		reaper:      reaper,
	}, nil
}

// Run serves until ctx is cancelled, then saves open sessions and stops.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("🚀 Starting TapBook v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	if err := a.catalog.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Duration("interval", a.cfg.CatalogReloadInterval))

	if err := a.reaper.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session reaper: %w", err)
	}
	a.logger.Info("session reaper started",
		logger.Duration("interval", a.cfg.SessionReapInterval),
		logger.Duration("idle_ttl", a.cfg.SessionIdleTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.catalog.Stop()
	a.reaper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	// Sessions flush after the server stops so no edit lands behind the save.
	if err := a.sessions.CloseAll(shutdownCtx); err != nil {
		a.logger.Warn("some edit sessions were not saved", logger.Error(err))
	} else {
		a.logger.Info("💾 edit sessions saved")
	}

	(&Store{client: a.redisClient}).Close(a.logger)

	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ TapBook stopped cleanly")
	return nil
}
