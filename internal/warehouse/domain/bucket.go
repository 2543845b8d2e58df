package domain

import "fmt"

// Condition is the physical state of a tracked item.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Location is where a tracked item physically sits.
type Location string

const (
	LocationInStock Location = "in stock"
	LocationInStore Location = "in store"
)

// Conditions lists every valid condition, in counter-column order.
var Conditions = []Condition{ConditionNew, ConditionUsed}

// Locations lists every valid location, in counter-column order.
var Locations = []Location{LocationInStock, LocationInStore}

// ParseCondition validates a condition string.
func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionNew, ConditionUsed:
		return Condition(s), nil
	}
	return "", fmt.Errorf("%w: unknown condition %q", ErrValidation, s)
}

// ParseLocation validates a location string. The short forms "stock" and
// "store" used by the quantity-adjustment API are accepted too.
func ParseLocation(s string) (Location, error) {
	switch s {
	case string(LocationInStock), "stock":
		return LocationInStock, nil
	case string(LocationInStore), "store":
		return LocationInStore, nil
	}
	return "", fmt.Errorf("%w: unknown location %q", ErrValidation, s)
}

// BucketKey addresses one reconciliation bucket: the unit records of a single
// product in a single warehouse entry, narrowed to one condition and one
// location. It is comparable and used as a map key by the per-bucket locks.
type BucketKey struct {
	ProductID   uint
	WarehouseID uint
	Condition   Condition
	Location    Location
}

func (k BucketKey) String() string {
	return fmt.Sprintf("product=%d warehouse=%d condition=%s location=%s",
		k.ProductID, k.WarehouseID, k.Condition, k.Location)
}

// Valid reports whether the key addresses a concrete bucket.
func (k BucketKey) Valid() bool {
	if k.ProductID == 0 || k.WarehouseID == 0 {
		return false
	}
	if k.Condition != ConditionNew && k.Condition != ConditionUsed {
		return false
	}
	return k.Location == LocationInStock || k.Location == LocationInStore
}
