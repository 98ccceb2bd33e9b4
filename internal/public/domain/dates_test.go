package domain

import (
	"testing"
	"time"
)

func TestParseOfferDateISO(t *testing.T) {
	parsed, ok := ParseOfferDate("2025-01-15")
	if !ok {
		t.Fatal("expected ISO date to parse")
	}
	want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local)
	if !parsed.Equal(want) {
		t.Fatalf("expected %v, got %v", want, parsed)
	}
}

func TestParseOfferDateISOWithTimeSuffix(t *testing.T) {
	parsed, ok := ParseOfferDate("2025-01-15T10:30:00Z")
	if !ok {
		t.Fatal("expected prefixed ISO date to parse")
	}
	if parsed.Hour() != 0 || parsed.Day() != 15 {
		t.Fatalf("expected midnight on the 15th, got %v", parsed)
	}
}

func TestParseOfferDateArabicRoundTrip(t *testing.T) {
	arabic, ok := ParseOfferDate("15 يناير 2025")
	if !ok {
		t.Fatal("expected Arabic long-form date to parse")
	}
	iso, _ := ParseOfferDate("2025-01-15")
	if !arabic.Equal(iso) {
		t.Fatalf("Arabic form parsed to %v, ISO form to %v", arabic, iso)
	}
}

func TestParseOfferDateArabicMonths(t *testing.T) {
	cases := []struct {
		raw   string
		month time.Month
	}{
		{"1 فبراير 2026", time.February},
		{"30 يونيو 2026", time.June},
		{"10 ديسمبر 2026", time.December},
	}
	for _, tc := range cases {
		parsed, ok := ParseOfferDate(tc.raw)
		if !ok {
			t.Fatalf("expected %q to parse", tc.raw)
		}
		if parsed.Month() != tc.month {
			t.Fatalf("%q: expected month %v, got %v", tc.raw, tc.month, parsed.Month())
		}
	}
}

func TestParseOfferDateUnparseable(t *testing.T) {
	for _, raw := range []string{"", "soon", "15 Januar 2025", "15-01-2025", "قريبا"} {
		if _, ok := ParseOfferDate(raw); ok {
			t.Fatalf("expected %q to be unparseable", raw)
		}
	}
}
