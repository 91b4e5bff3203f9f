// @title         Credscan API
// @version       0.1.0
// @description   Credibility scoring for text content: heuristic analysis, fact checking, scan history

package main

import (
	"context"

	"github.com/joho/godotenv"

	"credscan/internal/modkit/repokit"
	"credscan/internal/platform/config"
	"credscan/internal/platform/logger"
	phttp "credscan/internal/platform/net/http"
	"credscan/internal/platform/store"

	"credscan/internal/services/api"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CRED_API_*)
	root := config.New()
	apiCfg := root.Prefix("CRED_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")  // pgCfg lives under SERVICE_PGSQL_*
	rdsCfg := root.Prefix("SERVICE_REDIS_") // rdsCfg lives under SERVICE_REDIS_*
	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + redis cache)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			RDS: store.RedisConfig{
				Enabled:  rdsCfg.MayBool("ENABLED", true),
				Addr:     rdsCfg.MayString("ADDR", "localhost:6379"),
				Password: rdsCfg.MayString("PASSWORD", ""),
				DB:       rdsCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail loudly before serving if a required backend went away after Open
	repokit.MustGuard(context.Background(), st)

	// http server (reads CRED_API_PORT / CRED_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
