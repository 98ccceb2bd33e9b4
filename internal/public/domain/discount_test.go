package domain

import (
	"testing"
	"time"
)

func discountOf(v float64) *float64 { return &v }

func TestResolveDiscountPicksMaximum(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	offers := []Offer{
		{ID: "o1", NurseryID: "n1", Published: true, Discount: discountOf(20), EndDate: "2099-01-01"},
		{ID: "o2", NurseryID: "n1", Published: true, Discount: discountOf(0), EndDate: "2099-01-01"},
		{ID: "o3", NurseryID: "n1", Published: true, Discount: discountOf(15), EndDate: "2099-01-01"},
	}

	got := ResolveDiscount("n1", offers, now)
	if got == nil || *got != 20 {
		t.Fatalf("expected discount 20, got %v", got)
	}
}

func TestResolveDiscountIgnoresOtherNurseries(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	offers := []Offer{
		{ID: "o1", NurseryID: "n2", Published: true, Discount: discountOf(50), EndDate: "2099-01-01"},
	}
	if got := ResolveDiscount("n1", offers, now); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestResolveDiscountExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	yesterday := Offer{ID: "o1", NurseryID: "n1", Published: true, Discount: discountOf(30), EndDate: "2026-03-09"}
	today := Offer{ID: "o2", NurseryID: "n1", Published: true, Discount: discountOf(25), EndDate: "2026-03-10"}

	if got := ResolveDiscount("n1", []Offer{yesterday}, now); got != nil {
		t.Fatalf("offer expiring yesterday must be inactive, got %v", *got)
	}
	got := ResolveDiscount("n1", []Offer{today}, now)
	if got == nil || *got != 25 {
		t.Fatalf("offer expiring today must still count, got %v", got)
	}
}

func TestResolveDiscountSkipsUnpublishedAndUnparseable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	offers := []Offer{
		{ID: "o1", NurseryID: "n1", Published: false, Discount: discountOf(40), EndDate: "2099-01-01"},
		{ID: "o2", NurseryID: "n1", Published: true, Discount: discountOf(35), EndDate: "soon"},
		{ID: "o3", NurseryID: "n1", Published: true, Discount: nil, EndDate: "2099-01-01"},
	}
	if got := ResolveDiscount("n1", offers, now); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestResolveActiveOfferTieBreaksByEarliestEnd(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	offers := []Offer{
		{ID: "late", NurseryID: "n1", Published: true, Discount: discountOf(20), EndDate: "2026-06-01"},
		{ID: "early", NurseryID: "n1", Published: true, Discount: discountOf(20), EndDate: "2026-04-01"},
	}

	offer := ResolveActiveOffer("n1", offers, now)
	if offer == nil {
		t.Fatal("expected an active offer")
	}
	if offer.ID != "early" {
		t.Fatalf("expected the offer ending soonest to win the tie, got %q", offer.ID)
	}
}
