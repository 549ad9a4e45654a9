package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "valk_landing/internal/adapters/http_server"
	"valk_landing/internal/adapters/memory"
	"valk_landing/internal/adapters/observability"
	"valk_landing/internal/adapters/proxyauth"
	redisad "valk_landing/internal/adapters/redis"
	"valk_landing/internal/app"
	"valk_landing/internal/content"
	"valk_landing/internal/domain"
	"valk_landing/internal/shared"
	mysqlrepo "valk_landing/internal/storage/mysql"
)

const (
	sweepInterval  = time.Minute
	limiterIdleTTL = 10 * time.Minute
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("web server failed")
	}
	log.Info().Msg("shutdown complete")
}

func run(cfg shared.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// catalog: MySQL when configured, built-in content otherwise
	var repo domain.CatalogRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return fmt.Errorf("sql.Open: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db.Ping: %w", err)
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}
	cat, err := app.LoadCatalog(ctx, repo, content.Catalog())
	if err != nil {
		return err
	}
	log.Info().
		Int("rooms", len(cat.Rooms)).
		Int("amenities", len(cat.Amenities)).
		Int("features", len(cat.Features)).
		Msg("catalog ready")

	g, ctx := errgroup.WithContext(ctx)

	// view store
	var store domain.ViewStore
	switch cfg.ViewStore {
	case shared.StoreRedis:
		rs := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rs.Close()
		if err := rs.Ping(ctx); err != nil {
			return fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		store = rs
	default:
		ms := memory.New()
		g.Go(func() error { return ms.RunSweeper(ctx, sweepInterval) })
		store = ms
	}
	log.Info().Str("store", cfg.ViewStore).Dur("ttl", cfg.ViewTTL).Msg("view store ready")

	pages := app.NewPageService(store, cat, cfg.ViewTTL, log.Logger)
	limiter := server.NewClientLimiter(cfg.SubmitRPS, cfg.SubmitBurst)
	g.Go(func() error {
		t := time.NewTicker(limiterIdleTTL)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				limiter.Prune(limiterIdleTTL)
			}
		}
	})

	// http
	auth := proxyauth.NewResolver(cfg.AuthUserHeader, cfg.AuthNameHeader)
	srv := server.New(cfg.RequestTimeout, cfg.TrustProxy, auth.Middleware)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Pages: pages, DefaultWidth: cfg.DefaultWidth, Limiter: limiter})

	servers := []*http.Server{{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, observability.NewMetricsServer(cfg.MetricsAddr, reg))
	}
	for _, hs := range servers {
		hs := hs
		g.Go(func() error {
			log.Info().Str("addr", hs.Addr).Msg("listening")
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return hs.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
