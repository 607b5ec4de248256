package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/http_server"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/llm"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/observability"
	redisad "github.com/Kallyan98/Hotel-Recommender-System/internal/adapters/redis"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/app"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/shared"
	mysqlrepo "github.com/Kallyan98/Hotel-Recommender-System/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// without an API key the service still answers with structured results,
	// just no narrative text
	var narrative domain.NarrativeClient
	if cfg.LLMKey != "" {
		nc, err := llm.New(cfg.LLMBase, cfg.LLMKey, cfg.LLMModel, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize narrative client")
		}
		narrative = nc
	}
	r := app.NewRecommendationService(repo, cache, narrative, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: r})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
