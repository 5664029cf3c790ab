package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Cheertaboi/coupon-feed-service/internal/api"
	"github.com/Cheertaboi/coupon-feed-service/internal/cache"
	"github.com/Cheertaboi/coupon-feed-service/internal/config"
	"github.com/Cheertaboi/coupon-feed-service/internal/observability"
	"github.com/Cheertaboi/coupon-feed-service/internal/render"
	"github.com/Cheertaboi/coupon-feed-service/internal/repository"
	"github.com/Cheertaboi/coupon-feed-service/internal/service"
	"github.com/Cheertaboi/coupon-feed-service/pkg/db"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Init()
		logx.Fatal().Err(err).Msg("failed to load config")
	}

	logx.Init(logx.LoggerOpts{
		Environment: cfg.Environment(),
		FilePath:    cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSizeMB,
	})

	store, closer, err := openStore(cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("store", cfg.Store).Msg("failed to open snapshot store")
	}
	defer closer.Close()

	renderer, err := render.New(render.LoadIcons(cfg.IconDir, cfg.IconDesktop, cfg.IconMobile))
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build renderer")
	}

	repo := repository.NewSnapshotRepo(store)
	handler := api.NewRouter(api.Options{
		Feed:           service.NewFeedService(repo, cfg.APIKey),
		Tables:         service.NewTableService(repo, renderer),
		Pages:          renderer,
		Metrics:        observability.NewMetrics(),
		KeyParam:       cfg.KeyParam,
		TriggerParam:   cfg.TriggerParam,
		TriggerValue:   cfg.TriggerValue,
		PageTitle:      cfg.PageTitle,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logx.Error().Err(err).Msg("HTTP server Shutdown")
		}
		close(idleConnsClosed)
	}()

	logx.Info().Str("addr", cfg.Addr).Str("store", cfg.Store).Msg("starting coupon-service")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logx.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	logx.Info().Msg("server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openStore(cfg *config.Config) (repository.OptionStore, io.Closer, error) {
	switch cfg.Store {
	case config.StorePostgres:
		conn, err := db.NewPostgresConnection(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresOptions(conn)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return store, conn, nil
	case config.StoreRedis:
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisOptions(rdb, cfg.Redis.KeyPrefix), rdb, nil
	default:
		logx.Warn().Msg("using in-memory snapshot store; coupons are lost on restart")
		return cache.NewOptionCache(), nopCloser{}, nil
	}
}
