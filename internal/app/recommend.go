package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/booking"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

const catalogCacheKey = "offers:all"

// Recommendation is the full response for one booking request: the extracted
// intent, the budget-admitted candidates, their fare breakdowns (empty when
// the request carried no stay range) and the collaborator's narrative text.
type Recommendation struct {
	Intent     domain.BookingIntent         `json:"intent"`
	Candidates []domain.Offer               `json:"candidates"`
	Fares      map[string]domain.FareResult `json:"fares"`
	Narrative  string                       `json:"recommendation,omitempty"`
}

type RecommendationService struct {
	repo     domain.OfferRepository
	cache    domain.Cache
	llm      domain.NarrativeClient
	cacheTTL time.Duration
}

func NewRecommendationService(r domain.OfferRepository, c domain.Cache, n domain.NarrativeClient, ttl time.Duration) *RecommendationService {
	return &RecommendationService{repo: r, cache: c, llm: n, cacheTTL: ttl}
}

// Recommend runs the whole pipeline for one raw request: extract intent,
// filter the catalog, compute per-candidate fares, then ask the narrative
// collaborator. The narrative call is the only fallible external edge; its
// failure degrades to an empty narrative instead of sinking the response.
func (s *RecommendationService) Recommend(ctx context.Context, text string) (Recommendation, error) {
	intent := booking.Extract(text)

	catalog, err := s.Offers(ctx)
	if err != nil {
		return Recommendation{}, err
	}
	candidates := booking.SelectCandidates(catalog, intent)
	fares, err := booking.BuildFares(candidates, intent)
	if err != nil {
		// unreachable with extractor-produced intents; kept for standalone callers
		return Recommendation{}, err
	}

	rec := Recommendation{Intent: intent, Candidates: candidates, Fares: fares}
	rec.Narrative = s.narrative(ctx, text, candidates, fares, intent)
	return rec, nil
}

// Offers returns the catalog, read-through cached.
func (s *RecommendationService) Offers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if ok, _ := s.cache.Get(ctx, catalogCacheKey, &offers); ok {
		return offers, nil
	}
	offers, err := s.repo.ListOffers(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, catalogCacheKey, offers, int(s.cacheTTL.Seconds()))
	return offers, nil
}

// Fare computes a standalone day-wise fare for one named offer.
func (s *RecommendationService) Fare(ctx context.Context, name, checkIn, checkOut string, adults, children int) (domain.FareResult, error) {
	offer, err := s.repo.GetOffer(ctx, name)
	if err != nil {
		return domain.FareResult{}, err
	}
	return booking.ComputeFare(offer, checkIn, checkOut, adults, children)
}

func (s *RecommendationService) narrative(ctx context.Context, text string, candidates []domain.Offer, fares map[string]domain.FareResult, intent domain.BookingIntent) string {
	if s.llm == nil {
		return ""
	}
	key := "rec:" + requestHash(text)
	var cached string
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached
	}

	out, err := s.llm.Recommend(ctx, narrativeSystemPrompt, buildNarrativePrompt(text, candidates, fares, intent))
	if err != nil {
		log.Warn().Err(err).Msg("narrative call failed; returning structured result only")
		return ""
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}
