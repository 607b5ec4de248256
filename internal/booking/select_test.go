package booking_test

import (
	"testing"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/booking"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/shared"
)

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }

func TestSelectCandidates_NoBudgetAdmitsAll(t *testing.T) {
	got := booking.SelectCandidates(shared.SeedOffers, domain.BookingIntent{Adults: 1})
	if len(got) != len(shared.SeedOffers) {
		t.Fatalf("want %d candidates, got %d", len(shared.SeedOffers), len(got))
	}
}

func TestSelectCandidates_BudgetFiltersOnBaseRates(t *testing.T) {
	got := booking.SelectCandidates(shared.SeedOffers, domain.BookingIntent{Adults: 1, Budget: intp(3000)})
	if len(got) != 1 || got[0].Name != "Budget Stay Central" {
		t.Fatalf("budget 3000 should admit only Budget Stay Central, got %+v", got)
	}
	for _, o := range got {
		if o.PriceAdult > 3000 || o.PriceChild > 3000 {
			t.Fatalf("offer over budget admitted: %+v", o)
		}
	}
}

func TestBuildFares_NoDatesSkipsComputation(t *testing.T) {
	fares, err := booking.BuildFares(shared.SeedOffers, domain.BookingIntent{Adults: 2})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(fares) != 0 {
		t.Fatalf("want empty fare map without dates, got %d entries", len(fares))
	}
}

func TestBuildFares_PerCandidate(t *testing.T) {
	intent := domain.BookingIntent{
		Adults:   2,
		Children: 1,
		CheckIn:  strp("2025-06-06"),
		CheckOut: strp("2025-06-08"),
	}
	fares, err := booking.BuildFares(shared.SeedOffers, intent)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(fares) != len(shared.SeedOffers) {
		t.Fatalf("want a fare per candidate, got %d", len(fares))
	}
	if fares["Sea Breeze Resort"].TotalFare != 22550 {
		t.Fatalf("Sea Breeze total: %d", fares["Sea Breeze Resort"].TotalFare)
	}
}

func TestBuildFares_DuplicateNameOverwrites(t *testing.T) {
	a := domain.Offer{Name: "Twin", PriceAdult: 100, PriceChild: 10, Currency: "INR"}
	b := domain.Offer{Name: "Twin", PriceAdult: 200, PriceChild: 20, Currency: "INR"}
	intent := domain.BookingIntent{Adults: 1, CheckIn: strp("2025-06-02"), CheckOut: strp("2025-06-03")}
	fares, err := booking.BuildFares([]domain.Offer{a, b}, intent)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(fares) != 1 || fares["Twin"].TotalFare != 200 {
		t.Fatalf("duplicate name should overwrite: %+v", fares)
	}
}
