package app

import (
	"context"
	"fmt"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

type SeedService struct {
	repo  domain.OfferRepository
	cache domain.Cache
}

func NewSeedService(r domain.OfferRepository, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

// SeedOffer upserts one catalog entry. Cache invalidation is left to
// InvalidateCatalog so a concurrent seed run does not thrash the key.
func (s *SeedService) SeedOffer(ctx context.Context, o domain.Offer) error {
	if o.Name == "" {
		return fmt.Errorf("seed offer: empty name")
	}
	if err := s.repo.UpsertOffer(ctx, o); err != nil {
		return fmt.Errorf("upsert offer %q: %w", o.Name, err)
	}
	return nil
}

// InvalidateCatalog drops the cached offer list after a seed run so readers
// pick up the new catalog on the next request.
func (s *SeedService) InvalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, catalogCacheKey)
}
