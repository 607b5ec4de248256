package booking

import "github.com/Kallyan98/Hotel-Recommender-System/internal/domain"

// SelectCandidates filters the catalog against the intent's budget. An offer
// qualifies when no budget was given, or when both its adult and child BASE
// nightly rates are within it. Deliberately the base per-person rate, not the
// computed stay total; an open product question, preserved deliberately.
// Rating and location are not filtered here, that belongs to the narrative
// collaborator's contract.
func SelectCandidates(catalog []domain.Offer, intent domain.BookingIntent) []domain.Offer {
	out := make([]domain.Offer, 0, len(catalog))
	for _, o := range catalog {
		if intent.Budget == nil || (o.PriceAdult <= *intent.Budget && o.PriceChild <= *intent.Budget) {
			out = append(out, o)
		}
	}
	return out
}

// BuildFares computes a fare per candidate, keyed by offer name, using the
// intent's party and stay range. Without a usable range the map stays empty:
// no dates means skip fare computation, not an error. Offer names are assumed
// unique per catalog; a duplicate name overwrites its predecessor.
func BuildFares(candidates []domain.Offer, intent domain.BookingIntent) (map[string]domain.FareResult, error) {
	fares := make(map[string]domain.FareResult, len(candidates))
	if !intent.HasDates() {
		return fares, nil
	}
	for _, o := range candidates {
		fr, err := ComputeFare(o, *intent.CheckIn, *intent.CheckOut, intent.Adults, intent.Children)
		if err != nil {
			return nil, err
		}
		fares[o.Name] = fr
	}
	return fares, nil
}
