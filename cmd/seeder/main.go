package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"valk_landing/internal/adapters/observability"
	"valk_landing/internal/app"
	"valk_landing/internal/content"
	"valk_landing/internal/shared"
	mysqlrepo "valk_landing/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("seeding incomplete")
	}
	log.Info().Msg("seeding completed")
}

func run(cfg shared.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MySQLDSN == "" {
		return errors.New("MYSQL_DSN is empty; nothing to seed")
	}
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.Ping: %w", err)
	}
	log.Info().Msg("db ping ok")

	seeder := app.NewCatalogSeeder(mysqlrepo.New(db))
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, job := range seeder.Jobs(content.Catalog()) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("semaphore acquire failed")
			break
		}

		wg.Add(1)
		go func(job app.SeedJob) {
			defer wg.Done()
			defer sem.Release(1)

			if err := job.Run(ctx); err != nil {
				failed.Add(1)
				log.Warn().Str("kind", job.Kind).Int("position", job.Position).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("kind", job.Kind).Str("name", job.Name).Msg("seed ok")
		}(job)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d seed jobs failed", n)
	}
	return ctx.Err()
}
