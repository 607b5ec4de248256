package app

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

const narrativeSystemPrompt = "You are an AI hotel booking assistant."

// buildNarrativePrompt renders the candidate offers, their computed totals
// and the original request into the narrative collaborator's prompt. The
// collaborator's contract lives in this text: rating >= 3, honor the budget,
// echo the computed total fare. The core supplies the fields and does not
// re-apply those rules itself.
func buildNarrativePrompt(request string, offers []domain.Offer, fares map[string]domain.FareResult, intent domain.BookingIntent) string {
	lines := make([]string, 0, len(offers))
	for _, o := range offers {
		line := fmt.Sprintf("%s - Adult Price: %d %s, Child Price: %d %s, rating %.1f, amenities: %s, sightseeing: %s",
			o.Name, o.PriceAdult, o.Currency, o.PriceChild, o.Currency, o.Rating,
			strings.Join(o.Amenities, ", "), strings.Join(o.Sightseeing, ", "))
		// Without a stay range no totals exist; leave the clause off rather
		// than inventing one.
		if fr, ok := fares[o.Name]; ok {
			line += fmt.Sprintf(", Total Fare: %d %s", fr.TotalFare, o.Currency)
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(`User request:
%s

Hotels available:
%s

Task:
- Recommend the best hotel(s) under user's budget (if specified)
- Only recommend hotels with rating >= 3
- Include the computed total fare
- Format answer as:

Welcome to AI Hotel booking system:

1. Hotel: {hotel name}
2. Fare should be: {total fare} for %d adults and %d children
3. Sea front or not
4. Hotel Rating is : {rating}
5. Sight seeing places to roam around nearer to the hotel
`, request, strings.Join(lines, "\n"), intent.Adults, intent.Children)
}

// requestHash gives a stable cache key for a raw request text.
func requestHash(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
