package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// fakeUnitRepo is an in-memory UnitRepository that counts writes so tests can
// assert how much work a reconciliation pass actually did.
type fakeUnitRepo struct {
	mu      sync.Mutex
	nextID  uint
	units   map[uint]domain.WarehouseUnit
	creates int
	deletes int

	failCreateAfter int // when >= 0, creates fail once this many have succeeded
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[uint]domain.WarehouseUnit), failCreateAfter: -1}
}

func (f *fakeUnitRepo) Create(unit *domain.WarehouseUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateAfter >= 0 && f.creates >= f.failCreateAfter {
		return fmt.Errorf("store unavailable")
	}
	f.nextID++
	unit.ID = f.nextID
	f.units[unit.ID] = *unit
	f.creates++
	return nil
}

func (f *fakeUnitRepo) FindByID(id uint) (*domain.WarehouseUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	unit, ok := f.units[id]
	if !ok {
		return nil, fmt.Errorf("%w: unit %d", domain.ErrNotFound, id)
	}
	return &unit, nil
}

func (f *fakeUnitRepo) FindAll(limit, offset int) ([]domain.WarehouseUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(domain.WarehouseUnit) bool { return true }), nil
}

func (f *fakeUnitRepo) FindByProduct(productID uint) ([]domain.WarehouseUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(u domain.WarehouseUnit) bool { return u.ProductID == productID }), nil
}

func (f *fakeUnitRepo) FindByBucket(key domain.BucketKey) ([]domain.WarehouseUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(u domain.WarehouseUnit) bool { return u.Key() == key }), nil
}

func (f *fakeUnitRepo) CountByBucket(key domain.BucketKey) (int64, error) {
	units, _ := f.FindByBucket(key)
	return int64(len(units)), nil
}

func (f *fakeUnitRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.units[id]; !ok {
		return fmt.Errorf("%w: unit %d", domain.ErrNotFound, id)
	}
	delete(f.units, id)
	f.deletes++
	return nil
}

func (f *fakeUnitRepo) DeleteByProduct(productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, u := range f.units {
		if u.ProductID == productID {
			delete(f.units, id)
			f.deletes++
		}
	}
	return nil
}

func (f *fakeUnitRepo) UpdateIdentity(id uint, eanCode, serialNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	unit, ok := f.units[id]
	if !ok {
		return fmt.Errorf("%w: unit %d", domain.ErrNotFound, id)
	}
	unit.EANCode = eanCode
	unit.SerialNumber = serialNumber
	f.units[id] = unit
	return nil
}

func (f *fakeUnitRepo) UpdateEANByProduct(productID uint, eanCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, u := range f.units {
		if u.ProductID == productID {
			u.EANCode = eanCode
			f.units[id] = u
		}
	}
	return nil
}

// sorted returns matching units in primary-key order. Callers hold f.mu.
func (f *fakeUnitRepo) sorted(match func(domain.WarehouseUnit) bool) []domain.WarehouseUnit {
	var out []domain.WarehouseUnit
	for _, u := range f.units {
		if match(u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeWarehouseRepo is an in-memory WarehouseRepository sharing a unit repo
// so RemoveUnitWithCounter can emulate the transactional path.
type fakeWarehouseRepo struct {
	mu      sync.Mutex
	nextID  uint
	entries map[uint]domain.Warehouse // keyed by record id
	units   *fakeUnitRepo
}

func newFakeWarehouseRepo(units *fakeUnitRepo) *fakeWarehouseRepo {
	return &fakeWarehouseRepo{entries: make(map[uint]domain.Warehouse), units: units}
}

func (f *fakeWarehouseRepo) Create(w *domain.Warehouse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	w.ID = f.nextID
	f.entries[w.ID] = *w
	return nil
}

func (f *fakeWarehouseRepo) FindByID(id uint) (*domain.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: warehouse entry %d", domain.ErrNotFound, id)
	}
	return &w, nil
}

func (f *fakeWarehouseRepo) FindByProductID(productID uint) (*domain.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findByProductLocked(productID)
}

func (f *fakeWarehouseRepo) findByProductLocked(productID uint) (*domain.Warehouse, error) {
	for _, w := range f.entries {
		if w.ProductID == productID {
			copied := w
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: no warehouse entry for product %d", domain.ErrNotFound, productID)
}

func (f *fakeWarehouseRepo) FindAll(limit, offset int) ([]domain.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Warehouse
	for _, w := range f.entries {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeWarehouseRepo) Save(w *domain.Warehouse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[w.ID] = *w
	return nil
}

func (f *fakeWarehouseRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	return nil
}

func (f *fakeWarehouseRepo) DeleteByProductID(productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, w := range f.entries {
		if w.ProductID == productID {
			delete(f.entries, id)
		}
	}
	return nil
}

func (f *fakeWarehouseRepo) AdjustBucket(productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, err := f.findByProductLocked(productID)
	if err != nil {
		return nil, err
	}
	w.SetBucket(condition, location, w.Bucket(condition, location)+delta)
	f.entries[w.ID] = *w
	return w, nil
}

func (f *fakeWarehouseRepo) RemoveUnitWithCounter(unitID, productID uint) error {
	unit, err := f.units.FindByID(unitID)
	if err != nil {
		return err
	}
	if unit.ProductID != productID {
		return fmt.Errorf("%w: unit %d for product %d", domain.ErrNotFound, unitID, productID)
	}

	// Counter record must exist before anything is deleted; this mirrors the
	// transactional rollback of the real repository.
	if _, err := f.FindByProductID(productID); err != nil {
		return err
	}
	if err := f.units.Delete(unitID); err != nil {
		return err
	}
	_, err = f.AdjustBucket(productID, unit.Condition, unit.Location, -1)
	return err
}

// fakeCatalog is an in-memory ProductCatalog.
type fakeCatalog struct {
	mu       sync.Mutex
	products map[uint]bool
	eans     map[uint]string
}

func newFakeCatalog(ids ...uint) *fakeCatalog {
	c := &fakeCatalog{products: make(map[uint]bool), eans: make(map[uint]string)}
	for _, id := range ids {
		c.products[id] = true
	}
	return c
}

func (c *fakeCatalog) Exists(productID uint) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products[productID], nil
}

func (c *fakeCatalog) UpdateEAN(productID uint, eanCode string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.products[productID] {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	c.eans[productID] = eanCode
	return nil
}

func (c *fakeCatalog) CategoryOf(productID uint) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.products[productID] {
		return "", "", fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	return "Consoles", "", nil
}

func (c *fakeCatalog) ean(productID uint) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eans[productID]
}
