package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type flexCarrier struct {
	CreatedAt FlexTime `bson:"createdAt"`
}

func decodeCreatedAt(t *testing.T, value any) time.Time {
	t.Helper()
	raw, err := bson.Marshal(bson.M{"createdAt": value})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var carrier flexCarrier
	if err := bson.Unmarshal(raw, &carrier); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return carrier.CreatedAt.Time
}

func TestFlexTimeNormalizesAllForms(t *testing.T) {
	want := time.Date(2025, time.June, 1, 8, 30, 0, 0, time.UTC)

	native := decodeCreatedAt(t, want)
	iso := decodeCreatedAt(t, want.Format(time.RFC3339))
	seconds := decodeCreatedAt(t, bson.M{"_seconds": want.Unix(), "_nanoseconds": int64(0)})

	if !native.Equal(want) {
		t.Fatalf("native datetime decoded to %v", native)
	}
	if !iso.Equal(want) {
		t.Fatalf("ISO string decoded to %v", iso)
	}
	if !seconds.Equal(want) {
		t.Fatalf("seconds wrapper decoded to %v", seconds)
	}
}

func TestFlexTimeDateOnlyString(t *testing.T) {
	got := decodeCreatedAt(t, "2025-06-01")
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 1 {
		t.Fatalf("date-only string decoded to %v", got)
	}
}

func TestFlexTimeMalformedValuesDecodeToZero(t *testing.T) {
	for _, value := range []any{"not a date", int32(7), bson.M{"other": 1}, nil} {
		if got := decodeCreatedAt(t, value); !got.IsZero() {
			t.Fatalf("%v decoded to %v, expected zero time", value, got)
		}
	}
}
