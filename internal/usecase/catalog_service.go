package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/scentlens/backend/internal/domain"
)

// DefaultCatalogTTL is how long a normalized snapshot stays in the cache
const DefaultCatalogTTL = 24 * time.Hour

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL       time.Duration
	Recommendation RecommendationConfig
}

// CatalogService owns the catalog lifecycle: it loads a source once,
// normalizes it, keeps the snapshot cached and serves queries against it.
type CatalogService struct {
	source   domain.CatalogSource
	cache    domain.CacheRepository
	cacheTTL time.Duration
	filter   *FilterService
	recs     *RecommendationService
	logger   zerolog.Logger

	mu       sync.Mutex
	snapshot *domain.Snapshot
}

// NewCatalogService creates a catalog service. cache may be nil, in which
// case every first Load reads the source.
func NewCatalogService(
	source domain.CatalogSource,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
	logger zerolog.Logger,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = DefaultCatalogTTL
	}

	return &CatalogService{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
		filter:   NewFilterService(logger),
		recs:     NewRecommendationService(config.Recommendation, logger),
		logger:   logger.With().Str("component", "catalog").Str("source", source.Name()).Logger(),
	}
}

// Load returns the normalized snapshot, building it on first use.
// Flow: memo -> cache -> source -> normalize -> cache -> memo.
// A failed load is not memoized, so the next call retries.
func (s *CatalogService) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil {
		return s.snapshot, nil
	}

	key := s.cacheKey()

	cached, err := s.getFromCache(ctx, key)
	if err == nil {
		s.snapshot = domain.NewSnapshot(s.source.Name(), cached)
		s.logger.Info().Int("items", s.snapshot.Len()).Msg("catalog loaded from cache")
		return s.snapshot, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to source")
	}

	start := time.Now()
	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogEmpty, s.source.Name())
	}

	items := NormalizeCatalog(records)

	if err := s.setInCache(ctx, key, items); err != nil {
		// Log but don't fail if caching fails
		s.logger.Warn().Err(err).Msg("catalog cache write failed")
	}

	s.snapshot = domain.NewSnapshot(s.source.Name(), items)
	s.logger.Info().
		Int("items", s.snapshot.Len()).
		Dur("took", time.Since(start)).
		Msg("catalog loaded from source")

	return s.snapshot, nil
}

// Invalidate drops the memoized snapshot and its cache entry so the next
// Load reads the source again.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = nil
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, s.cacheKey()); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

// Search returns the items whose text fields contain query
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Fragrance, error) {
	return s.Browse(ctx, query, domain.FilterState{})
}

// Browse runs the search, filter and sort pipeline over the snapshot
func (s *CatalogService) Browse(ctx context.Context, search string, state domain.FilterState) ([]domain.Fragrance, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter.FilterFragrances(snapshot.Items(), search, state), nil
}

// Recommend narrows the snapshot with quiz answers
func (s *CatalogService) Recommend(ctx context.Context, answers domain.QuizAnswerSet) ([]domain.Fragrance, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.recs.GetRecommendedFragrances(snapshot.Items(), answers), nil
}

// Lookup finds a single item by slug
func (s *CatalogService) Lookup(ctx context.Context, slug string) (domain.Fragrance, bool, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return domain.Fragrance{}, false, err
	}
	item, ok := snapshot.BySlug(slug)
	return item, ok, nil
}

// Suggest proposes slugs close to one that Lookup did not find
func (s *CatalogService) Suggest(ctx context.Context, slug string) ([]string, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return SuggestSlugs(snapshot.Items(), slug, DefaultSuggestionLimit), nil
}

// cacheKey identifies the snapshot of this source. Format: "catalog:{source}"
// or "catalog:{source}:{fingerprint}" for sources that can fingerprint their
// content, so edited or relocated files never share an entry.
func (s *CatalogService) cacheKey() string {
	key := "catalog:" + s.source.Name()

	fingerprinted, ok := s.source.(domain.FingerprintedSource)
	if !ok {
		return key
	}
	fingerprint, err := fingerprinted.Fingerprint()
	if err != nil {
		s.logger.Debug().Err(err).Msg("catalog source has no fingerprint")
		return key
	}
	return key + ":" + fingerprint
}

// getFromCache decodes a cached snapshot
func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.Fragrance, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var items []domain.Fragrance
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn().Err(err).Msg("discarding undecodable cached catalog")
		return nil, domain.ErrCacheMiss
	}
	if len(items) == 0 {
		return nil, domain.ErrCacheMiss
	}
	return items, nil
}

// setInCache stores the normalized snapshot as JSON
func (s *CatalogService) setInCache(ctx context.Context, key string, items []domain.Fragrance) error {
	if s.cache == nil {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
