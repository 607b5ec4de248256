package domain

// Offer is one catalog entry: a bookable lodging option with fixed base
// nightly rates per adult and per child.
type Offer struct {
	Name        string   `json:"name"`
	PriceAdult  int      `json:"price_adult"`
	PriceChild  int      `json:"price_child"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
	Sightseeing []string `json:"sightseeing"` // display order matters downstream
}

// DayRate is one row of a day-wise fare breakdown. Prices already include the
// weekend surcharge when the date falls on a Saturday or Sunday.
type DayRate struct {
	Date       string `json:"date"` // YYYY-MM-DD
	PriceAdult int    `json:"price_adult"`
	PriceChild int    `json:"price_child"`
	NightTotal int    `json:"night_total"`
	Currency   string `json:"currency"`
}

// FareResult is the full breakdown for one offer and one stay. TotalFare is
// always the exact sum of NightTotal across Nights.
type FareResult struct {
	OfferName string    `json:"offer_name"`
	Nights    []DayRate `json:"nights"` // chronological, one per billable night
	TotalFare int       `json:"total_fare"`
}
