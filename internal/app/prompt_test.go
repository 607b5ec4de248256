package app

import (
	"strings"
	"testing"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

func TestBuildNarrativePrompt_CarriesContractFields(t *testing.T) {
	offers := []domain.Offer{{
		Name: "Lakeview Serenity Hotel", PriceAdult: 4200, PriceChild: 600,
		Currency: "INR", Rating: 4.2, Location: "Udaipur",
		Amenities:   []string{"lake view"},
		Sightseeing: []string{"City Palace", "Lake Pichola"},
	}}
	fares := map[string]domain.FareResult{
		"Lakeview Serenity Hotel": {OfferName: "Lakeview Serenity Hotel", TotalFare: 8400},
	}
	intent := domain.BookingIntent{Adults: 2, Children: 0}

	p := buildNarrativePrompt("lake stay for 2 adults", offers, fares, intent)
	for _, want := range []string{
		"lake stay for 2 adults",
		"Lakeview Serenity Hotel - Adult Price: 4200 INR, Child Price: 600 INR",
		"rating 4.2",
		"lake view",
		"City Palace, Lake Pichola",
		"Total Fare: 8400 INR",
		"rating >= 3",
		"for 2 adults and 0 children",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestBuildNarrativePrompt_NoFareClauseWithoutDates(t *testing.T) {
	offers := []domain.Offer{{Name: "Budget Stay Central", PriceAdult: 2500, PriceChild: 500, Currency: "INR", Rating: 3.0}}
	p := buildNarrativePrompt("anything central", offers, map[string]domain.FareResult{}, domain.BookingIntent{Adults: 1})
	if strings.Contains(p, "Total Fare") {
		t.Fatalf("fare clause must be absent when no fares exist:\n%s", p)
	}
}

func TestRequestHash_Stable(t *testing.T) {
	if requestHash("abc") != requestHash("abc") {
		t.Fatal("hash must be deterministic")
	}
	if requestHash("abc") == requestHash("abd") {
		t.Fatal("different texts must not collide trivially")
	}
}
