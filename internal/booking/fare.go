package booking

import (
	"fmt"
	"time"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

const dateLayout = "2006-01-02"

// weekend rates are the base multiplied by 1.2 and truncated toward zero,
// e.g. 650 -> 780. Integer math throughout; never round.
const surchargeNum, surchargeDen = 12, 10

// ParseDate parses a YYYY-MM-DD calendar date. Malformed input yields an
// error wrapping domain.ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// ComputeFare builds the day-wise price table and total for one offer and one
// stay. A degenerate or inverted range (checkOut <= checkIn) is clamped to a
// single billable night rather than rejected. Nights falling on a Saturday or
// Sunday carry the weekend surcharge on both rates. Pure: identical inputs
// always produce identical output.
func ComputeFare(offer domain.Offer, checkIn, checkOut string, adults, children int) (domain.FareResult, error) {
	start, err := ParseDate(checkIn)
	if err != nil {
		return domain.FareResult{}, err
	}
	end, err := ParseDate(checkOut)
	if err != nil {
		return domain.FareResult{}, err
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights <= 0 {
		nights = 1
	}

	res := domain.FareResult{
		OfferName: offer.Name,
		Nights:    make([]domain.DayRate, 0, nights),
	}
	for i := 0; i < nights; i++ {
		day := start.AddDate(0, 0, i)
		priceAdult := offer.PriceAdult
		priceChild := offer.PriceChild
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			priceAdult = priceAdult * surchargeNum / surchargeDen
			priceChild = priceChild * surchargeNum / surchargeDen
		}
		nightTotal := adults*priceAdult + children*priceChild
		res.Nights = append(res.Nights, domain.DayRate{
			Date:       day.Format(dateLayout),
			PriceAdult: priceAdult,
			PriceChild: priceChild,
			NightTotal: nightTotal,
			Currency:   offer.Currency,
		})
		res.TotalFare += nightTotal
	}
	return res, nil
}
