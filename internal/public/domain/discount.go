package domain

import "time"

// OfferActive reports whether an offer counts as a live discount at the given
// instant: published, a parseable end date on or after today, and a discount
// greater than zero. An offer expiring today is still active.
func OfferActive(o Offer, now time.Time) bool {
	if !o.Published {
		return false
	}
	if o.Discount == nil || *o.Discount <= 0 {
		return false
	}
	end, ok := ParseOfferDate(o.EndDate)
	if !ok {
		return false
	}
	return !end.Before(StartOfDay(now))
}

// ResolveDiscount returns the highest active discount percentage for the
// nursery, or nil when no offer applies.
func ResolveDiscount(nurseryID string, offers []Offer, now time.Time) *float64 {
	offer := ResolveActiveOffer(nurseryID, offers, now)
	if offer == nil {
		return nil
	}
	value := *offer.Discount
	return &value
}

// ResolveActiveOffer returns the offer that produces the nursery's effective
// discount: the highest active discount, ties broken by the earliest end
// date. Returns nil when the nursery has no active offer.
func ResolveActiveOffer(nurseryID string, offers []Offer, now time.Time) *Offer {
	if nurseryID == "" {
		return nil
	}

	var best *Offer
	var bestEnd time.Time
	for i := range offers {
		o := offers[i]
		if o.NurseryID != nurseryID || !OfferActive(o, now) {
			continue
		}
		end, _ := ParseOfferDate(o.EndDate)
		if best == nil || *o.Discount > *best.Discount ||
			(*o.Discount == *best.Discount && end.Before(bestEnd)) {
			best = &offers[i]
			bestEnd = end
		}
	}
	return best
}
