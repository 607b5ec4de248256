package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/observability"
	redisad "github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/redis"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/app"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/shared"
	mysqlrepo "github.com/Kallyan98/Hotel-Recommender-System/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("offers", len(shared.SeedOffers)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	seeder := app.NewSeedService(repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, offer := range shared.SeedOffers {
		offer := offer

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := seeder.SeedOffer(ctx, offer); err != nil {
				log.Warn().Str("offer", offer.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("offer", offer.Name).Msg("seed ok")
		}()
	}

	wg.Wait()
	seeder.InvalidateCatalog(ctx)
	log.Info().Msg("seeding completed")
}
