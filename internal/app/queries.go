package app

import (
	"context"
	"fmt"
	"time"

	"reviewboard/internal/domain"
)

type QueryService struct {
	src      domain.ReviewSource
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires a review source with an optional cache (c may be nil).
func NewQueryService(src domain.ReviewSource, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{src: src, cache: c, cacheTTL: ttl}
}

func (s *QueryService) Catalog() string { return s.src.Name() }

func (s *QueryService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	key := "reviews:" + s.src.Name()
	if s.cache != nil {
		var out []domain.Review
		// decode errors and a cached null fall through to the source, which rewrites the key
		if ok, err := s.cache.Get(ctx, key, &out); ok && err == nil && out != nil {
			return out, nil
		}
	}

	rs, err := s.src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s reviews: %w", s.src.Name(), err)
	}

	// copy so a cache holding the value by reference never aliases the caller's slice
	out := make([]domain.Review, len(rs))
	copy(out, rs)

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, s.cacheTTL)
	}
	return rs, nil
}
