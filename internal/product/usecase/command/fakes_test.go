package command

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uint]domain.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]domain.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (r *fakeProductRepo) FindByEAN(eanCode string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.EANCode == eanCode {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: ean %s", domain.ErrNotFound, eanCode)
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) SearchByName(name string, limit, offset int) ([]domain.Product, error) {
	return r.FindAll(limit, offset)
}

func (r *fakeProductRepo) Update(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, p.ID)
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) UpdateEAN(id uint, eanCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	p.EANCode = eanCode
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

// fakeInventory records every warehouse interaction for assertions.
type fakeInventory struct {
	mu       sync.Mutex
	seeds    map[uint]domain.InventorySeed
	relabels map[uint]string
	purged   map[uint]bool
	seedErr  error
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		seeds:    map[uint]domain.InventorySeed{},
		relabels: map[uint]string{},
		purged:   map[uint]bool{},
	}
}

func (f *fakeInventory) Seed(ctx context.Context, productID uint, seed domain.InventorySeed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seedErr != nil {
		return f.seedErr
	}
	f.seeds[productID] = seed
	return nil
}

func (f *fakeInventory) Snapshot(productID uint) (*domain.InventorySnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seed, ok := f.seeds[productID]
	if !ok {
		return nil, nil
	}
	return &domain.InventorySnapshot{
		StockNew:  seed.StockNew,
		StockUsed: seed.StockUsed,
		StoreNew:  seed.StoreNew,
		StoreUsed: seed.StoreUsed,
		PriceNew:  seed.PriceNew,
		PriceUsed: seed.PriceUsed,
	}, nil
}

func (f *fakeInventory) RelabelUnits(ctx context.Context, productID uint, eanCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relabels[productID] = eanCode
	return nil
}

func (f *fakeInventory) Purge(ctx context.Context, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged[productID] = true
	return nil
}
