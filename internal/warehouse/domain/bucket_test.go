package domain

import (
	"errors"
	"testing"
)

func TestParseCondition(t *testing.T) {
	if c, err := ParseCondition("new"); err != nil || c != ConditionNew {
		t.Fatalf("got %v, %v", c, err)
	}
	if c, err := ParseCondition("used"); err != nil || c != ConditionUsed {
		t.Fatalf("got %v, %v", c, err)
	}
	if _, err := ParseCondition("refurbished"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseLocationShortForms(t *testing.T) {
	for _, in := range []string{"in stock", "stock"} {
		if l, err := ParseLocation(in); err != nil || l != LocationInStock {
			t.Fatalf("%q: got %v, %v", in, l, err)
		}
	}
	for _, in := range []string{"in store", "store"} {
		if l, err := ParseLocation(in); err != nil || l != LocationInStore {
			t.Fatalf("%q: got %v, %v", in, l, err)
		}
	}
	if _, err := ParseLocation("in transit"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWarehouseBucketAccessors(t *testing.T) {
	w := &Warehouse{ProductID: 1, StockNew: 2, StockUsed: 3, StoreNew: 4, StoreUsed: 5}

	cases := []struct {
		condition Condition
		location  Location
		want      int
	}{
		{ConditionNew, LocationInStock, 2},
		{ConditionUsed, LocationInStock, 3},
		{ConditionNew, LocationInStore, 4},
		{ConditionUsed, LocationInStore, 5},
	}
	for _, c := range cases {
		if got := w.Bucket(c.condition, c.location); got != c.want {
			t.Fatalf("bucket (%s/%s): got %d, want %d", c.condition, c.location, got, c.want)
		}
	}

	w.SetBucket(ConditionNew, LocationInStock, -7)
	if w.StockNew != 0 {
		t.Fatalf("SetBucket should clamp negatives, got %d", w.StockNew)
	}
}

func TestBucketKeyValid(t *testing.T) {
	good := BucketKey{ProductID: 1, WarehouseID: 1, Condition: ConditionNew, Location: LocationInStore}
	if !good.Valid() {
		t.Fatalf("expected valid key")
	}
	for _, bad := range []BucketKey{
		{ProductID: 0, WarehouseID: 1, Condition: ConditionNew, Location: LocationInStock},
		{ProductID: 1, WarehouseID: 0, Condition: ConditionNew, Location: LocationInStock},
		{ProductID: 1, WarehouseID: 1, Condition: "mint", Location: LocationInStock},
		{ProductID: 1, WarehouseID: 1, Condition: ConditionNew, Location: "aisle 4"},
	} {
		if bad.Valid() {
			t.Fatalf("expected invalid key: %+v", bad)
		}
	}
}
