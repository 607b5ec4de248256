package domain

import "context"

type OfferRepository interface {
	// Write paths
	UpsertOffer(ctx context.Context, o Offer) error

	// Read paths
	GetOffer(ctx context.Context, name string) (Offer, error)
	ListOffers(ctx context.Context) ([]Offer, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// NarrativeClient is the external recommendation-text collaborator. It is the
// only fallible, slow edge in the system; callers own its timeout and must
// not let its failure sink the rest of a response.
type NarrativeClient interface {
	Recommend(ctx context.Context, system, prompt string) (string, error)
}
