package domain

// BookingIntent is the structured form of a free-text booking request.
// Immutable after extraction. CheckIn/CheckOut are ISO dates (YYYY-MM-DD);
// the extractor guarantees either both are present and well-formed, or both
// are nil. Budget is a per-person base nightly rate ceiling, nil meaning
// no ceiling.
type BookingIntent struct {
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Budget   *int    `json:"budget,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
}

// HasDates reports whether the intent carries a usable stay range.
func (b BookingIntent) HasDates() bool {
	return b.CheckIn != nil && b.CheckOut != nil
}
