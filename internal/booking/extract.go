// Package booking holds the pure core: request parsing, fare computation and
// candidate selection. No I/O, no shared state; every function is safe to
// call concurrently.
package booking

import (
	"regexp"
	"strconv"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

var (
	adultsRe   = regexp.MustCompile(`(?i)(\d+)\s*adults?`)
	childrenRe = regexp.MustCompile(`(?i)(\d+)\s*child(?:ren)?`)
	budgetRe   = regexp.MustCompile(`(?i)budget\s*(?:under|below)?\s*\$?(\d+)`)
	isoDateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Extract parses a free-text booking request into a BookingIntent. Each field
// is matched independently, first match wins, and anything absent falls back
// to its default (adults=1, children=0, no budget, no dates) rather than
// failing. Matched numbers are taken as-is with no range validation.
//
// Dates: every YYYY-MM-DD substring is collected; the first two become
// check-in and check-out. A single date is not usable, so fewer than two
// leaves both absent.
func Extract(text string) domain.BookingIntent {
	intent := domain.BookingIntent{Adults: 1, Children: 0}

	if m := adultsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Adults = n
		}
	}
	if m := childrenRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Children = n
		}
	}
	if m := budgetRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Budget = &n
		}
	}

	if dates := isoDateRe.FindAllString(text, -1); len(dates) >= 2 {
		// Later dates in the text, if any, are ignored. Both must be real
		// calendar dates; downstream relies on the extractor never emitting
		// a date the fare calculator cannot parse.
		in, out := dates[0], dates[1]
		_, inErr := ParseDate(in)
		_, outErr := ParseDate(out)
		if inErr == nil && outErr == nil {
			intent.CheckIn = &in
			intent.CheckOut = &out
		}
	}
	return intent
}
