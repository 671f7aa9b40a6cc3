package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scentlens/backend/config"
	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/infrastructure/cache"
	"github.com/scentlens/backend/internal/infrastructure/dataset"
	"github.com/scentlens/backend/internal/logger"
	"github.com/scentlens/backend/internal/usecase"
)

const version = "1.0.0"

// app carries what every subcommand needs once PersistentPreRunE has run
type app struct {
	cfg    *config.Config
	logger zerolog.Logger

	catalogPath   string
	catalogFormat string
	refresh       bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "scentlens",
		Short: "Browse and get recommendations from a fragrance catalog",
		Long: `scentlens loads a fragrance catalog (JSON snapshot or semicolon CSV dataset),
fills in missing attributes with accord heuristics and lets you search,
filter, sort and run the recommendation quiz from the command line.

Configuration comes from SCENTLENS_* environment variables, a .env file
and an optional scentlens.yaml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.catalogPath != "" {
				cfg.Catalog.Path = a.catalogPath
			}
			if a.catalogFormat != "" {
				cfg.Catalog.Format = a.catalogFormat
			}

			a.cfg = cfg
			a.logger = logger.New(logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			a.logger.Debug().
				Str("catalog", cfg.Catalog.Path).
				Str("format", cfg.Catalog.Format).
				Str("cache", cfg.Cache.Type).
				Dur("cache_ttl", cfg.Cache.TTL).
				Msg("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (overrides catalog.path)")
	root.PersistentFlags().StringVar(&a.catalogFormat, "format", "", "catalog format: json or csv (overrides catalog.format)")
	root.PersistentFlags().BoolVar(&a.refresh, "refresh", false, "ignore any cached snapshot and reload the catalog")

	root.AddCommand(
		newConvertCmd(a),
		newBrowseCmd(a),
		newRecommendCmd(a),
		newShowCmd(a),
	)

	return root
}

// openCatalog wires the configured source and cache into a catalog service.
// The returned cleanup releases the cache.
func (a *app) openCatalog(ctx context.Context) (*usecase.CatalogService, func(), error) {
	source, err := dataset.NewSource(a.cfg.Catalog.Format, a.cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := a.openCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	service := usecase.NewCatalogService(source, store, usecase.CatalogServiceConfig{
		CacheTTL: a.cfg.Cache.TTL,
		Recommendation: usecase.RecommendationConfig{
			Limit:           a.cfg.Recommendation.Limit,
			RankByRelevance: a.cfg.Recommendation.RankByRelevance,
		},
	}, a.logger)

	if a.refresh {
		if err := service.Invalidate(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("could not drop cached catalog")
		}
	}

	return service, closeStore, nil
}

// openCache returns the configured cache. An unreachable Redis degrades to
// running without a cache rather than failing the command.
func (a *app) openCache(ctx context.Context) (domain.CacheRepository, func(), error) {
	switch a.cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, a.cfg.Cache.RedisURL)
		if err != nil {
			a.logger.Warn().Err(err).Msg("redis cache unavailable, continuing without cache")
			return nil, func() {}, nil
		}
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				a.logger.Warn().Err(err).Msg("closing redis cache")
			}
		}, nil
	case "memory", "":
		memoryCache := cache.NewMemoryCache()
		return memoryCache, func() { _ = memoryCache.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache type %q", a.cfg.Cache.Type)
	}
}
