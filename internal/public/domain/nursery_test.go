package domain

import "testing"

func TestParseLocation(t *testing.T) {
	cases := []struct {
		raw  string
		want Location
	}{
		{"الرياض - الرياض - النرجس", Location{Region: "الرياض", City: "الرياض", District: "النرجس"}},
		{"مكة المكرمة - جدة", Location{Region: "مكة المكرمة", City: "جدة"}},
		{"القصيم", Location{Region: "القصيم"}},
		{"", Location{}},
	}
	for _, tc := range cases {
		if got := ParseLocation(tc.raw); got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.raw, tc.want, got)
		}
	}
}

func TestLocationStringSkipsEmptySegments(t *testing.T) {
	loc := Location{Region: "الرياض", District: "النرجس"}
	if got := loc.String(); got != "الرياض - النرجس" {
		t.Fatalf("expected joined non-empty segments, got %q", got)
	}
}

func TestNormalizeSurveyStatus(t *testing.T) {
	cases := map[string]string{
		"":         SurveyStatusActive,
		"ACTIVE":   SurveyStatusActive,
		"inactive": SurveyStatusInactive,
		"Draft":    SurveyStatusDraft,
		"archived": SurveyStatusActive,
	}
	for raw, want := range cases {
		if got := NormalizeSurveyStatus(raw); got != want {
			t.Fatalf("%q: expected %s, got %s", raw, want, got)
		}
	}
}
