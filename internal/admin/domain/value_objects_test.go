package domain

import "testing"

func TestNewServiceTypeListCanonicalizesAndDeduplicates(t *testing.T) {
	list, err := NewServiceTypeList([]string{"توصيل", "Delivery", "صيانة"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := list.Strings()
	want := []string{"delivery", "maintenance"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNewServiceTypeRejectsUnknown(t *testing.T) {
	if _, err := NewServiceType("grooming"); err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestNewDiscountBounds(t *testing.T) {
	for _, v := range []float64{-1, 100.5} {
		if _, err := NewDiscount(v); err == nil {
			t.Fatalf("expected error for discount %v", v)
		}
	}
	d, err := NewDiscount(25)
	if err != nil || d.Float64() != 25 {
		t.Fatalf("expected valid discount 25, got %v (%v)", d, err)
	}
}

func TestNewListingKind(t *testing.T) {
	kind, err := NewListingKind(" Banner ")
	if err != nil || kind != ListingBanner {
		t.Fatalf("expected banner kind, got %v (%v)", kind, err)
	}
	if _, err := NewListingKind("popup"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestNewEmailOptional(t *testing.T) {
	if email, err := NewEmail("  "); err != nil || email != "" {
		t.Fatalf("blank email should be accepted as empty, got %q (%v)", email, err)
	}
	if _, err := NewEmail("not-an-email"); err == nil {
		t.Fatal("expected error for malformed email")
	}
}
