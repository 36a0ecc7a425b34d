package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cheongyak-calculator/config"
	httpLayer "cheongyak-calculator/http"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/repository"
	"cheongyak-calculator/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: ./configs/config.yaml)")
	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return exitError(2, "config load failed: %v", err)
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return exitError(2, "logger init failed: %v", err)
	}
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{"app": cfg.App.Name})

	ctx := context.Background()

	var postRepo repository.PostRepository
	if cfg.Database.Postgres.Enabled() {
		db, err := repository.OpenPostgres(cfg.Database.Postgres)
		if err != nil {
			return exitError(3, "%v", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			zapLog.Warn("postgres not reachable yet", zap.Error(err))
		}
		postRepo = repository.NewPostRepositoryPostgres(db)
	} else {
		zapLog.Info("no postgres configured, serving posts from memory")
		postRepo = repository.NewPostRepositoryMemory()
	}

	var cache repository.CacheRepository
	if cfg.Database.Redis.Enabled() {
		redisCache := repository.NewRedisCache(cfg.Database.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			zapLog.Warn("redis not reachable, cache reads will fall through", zap.Error(err))
		}
		cache = redisCache
	} else {
		memCache := repository.NewMemoryCache()
		defer memCache.Close()
		cache = memCache
	}

	scoreService := service.NewScoreService(nil, log)
	shareService := service.NewShareService(cfg.Share)
	blogService := service.NewBlogService(postRepo, cache, cfg.Cache.TTL, cfg.Blog.PerPage, log)

	if !shareService.Available() {
		zapLog.Warn("kakao share disabled, clients will get a notice")
	}

	rateLimiter := httpLayer.NewRateLimiter(
		httpLayer.Limit{Capacity: cfg.RateLimit.Score.Capacity, Refill: cfg.RateLimit.Score.Refill},
		map[string]httpLayer.Limit{
			httpLayer.ShareRoute: {Capacity: cfg.RateLimit.Share.Capacity, Refill: cfg.RateLimit.Share.Refill},
		},
	)
	defer rateLimiter.Stop()

	router := httpLayer.Router{
		Score:       httpLayer.NewScoreHandler(scoreService, shareService, log),
		Blog:        httpLayer.NewBlogHandler(blogService, log),
		RateLimiter: rateLimiter,
		Logger:      log,
	}

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLog.Info("listening", zap.String("addr", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return exitError(1, "error starting server: %v", err)
	case <-quit:
		zapLog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error during server shutdown", zap.Error(err))
	}

	zapLog.Info("server exited")
	return nil
}
