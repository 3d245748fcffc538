package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tubone24/eiga-miyou/internal/aggregate"
	"github.com/tubone24/eiga-miyou/internal/config"
	"github.com/tubone24/eiga-miyou/internal/jobs"
	"github.com/tubone24/eiga-miyou/internal/migrate"
	"github.com/tubone24/eiga-miyou/internal/scrapers"
	"github.com/tubone24/eiga-miyou/internal/server"
	"github.com/tubone24/eiga-miyou/internal/venues"
	pkgcache "github.com/tubone24/eiga-miyou/pkg/cache"
	pkgdb "github.com/tubone24/eiga-miyou/pkg/db"
	"github.com/tubone24/eiga-miyou/pkg/tmdb"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Venue mappings: Postgres when configured, else in-memory.
	var resolver venues.Resolver
	if cfg.DatabaseURL != "" {
		pool, err := pkgdb.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("db connect failed")
		}
		defer pool.Close()
		if err := migrate.Up(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		resolver = venues.NewPostgres(pool)
	} else {
		resolver = venues.NewMemory()
	}

	var c pkgcache.ResultCache
	if addr := cfg.ValkeyAddr; addr != "" {
		vc, err := pkgcache.NewValkey(addr, cfg.ValkeyPassword, cfg.CacheTTL)
		if err != nil {
			log.Error().Err(err).Msg("valkey connect failed, using in-memory cache")
			c = pkgcache.NewInMemory(cfg.CacheTTL, cfg.CacheCapacity)
		} else {
			c = vc
		}
	} else {
		c = pkgcache.NewInMemory(cfg.CacheTTL, cfg.CacheCapacity)
	}

	if err := jobs.SeedVenueMappings(ctx, resolver); err != nil {
		log.Error().Err(err).Msg("venue mapping seed failed")
	}
	jobs.StartCacheSweep(ctx, c, cfg.CacheTTL/2)

	browser := scrapers.NewExecBrowser(cfg.BrowserBin)
	browser.OpenTimeout = cfg.BrowserOpenTimeout
	browser.CmdTimeout = cfg.BrowserCmdTimeout

	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	registry := scrapers.NewRegistry(
		scrapers.NewToho(httpClient),
		scrapers.NewCinema109(httpClient),
		scrapers.NewAeon(browser, cfg.BrowserSettle),
	)

	var movies aggregate.MovieSearcher
	if cfg.TMDBAPIKey != "" {
		movies = tmdb.New(cfg.TMDBAPIKey, cfg.TMDBLanguage)
	} else {
		log.Warn().Msg("TMDB_API_KEY not set; schedule search will report a configuration error")
	}

	agg := &aggregate.Aggregator{
		Resolver:       resolver,
		Cache:          c,
		Scrapers:       registry,
		Movies:         movies,
		FetchTimeout:   cfg.FetchTimeout,
		BrowserTimeout: cfg.BrowserTimeout,
	}

	api := server.New(agg, resolver)
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("shutdown complete")
}
