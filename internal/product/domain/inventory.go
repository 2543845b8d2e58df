package domain

import "context"

// InventorySeed carries the initial counters and prices for a product's
// warehouse entry.
type InventorySeed struct {
	StockNew  int
	StockUsed int
	StoreNew  int
	StoreUsed int
	PriceNew  float64
	PriceUsed float64
}

// IsZero reports whether the seed carries no counters at all.
func (s InventorySeed) IsZero() bool {
	return s.StockNew == 0 && s.StockUsed == 0 && s.StoreNew == 0 && s.StoreUsed == 0
}

// InventorySnapshot is the catalog's read view of a product's counters.
type InventorySnapshot struct {
	StockNew  int     `json:"stock_new"`
	StockUsed int     `json:"stock_used"`
	StoreNew  int     `json:"store_new"`
	StoreUsed int     `json:"store_used"`
	PriceNew  float64 `json:"price_new"`
	PriceUsed float64 `json:"price_used"`
}

// Inventory is the catalog's view of the warehouse subsystem. The catalog
// never touches counter or unit tables directly.
type Inventory interface {
	// Seed creates or overwrites the product's counters and materializes
	// matching unit records.
	Seed(ctx context.Context, productID uint, seed InventorySeed) error

	// Snapshot returns the product's counters, or nil when the product has no
	// warehouse entry yet.
	Snapshot(productID uint) (*InventorySnapshot, error)

	// RelabelUnits overwrites the EAN code on every unit record of a product.
	RelabelUnits(ctx context.Context, productID uint, eanCode string) error

	// Purge deletes the product's unit records and counter entry.
	Purge(ctx context.Context, productID uint) error
}
