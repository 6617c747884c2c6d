package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-clinic/internal/domain/inventory"
)

type inventoryRepo struct {
	mu   sync.RWMutex
	byID map[string]inventory.Item
}

func NewInventoryRepo() inventory.Repository {
	return &inventoryRepo{
		byID: make(map[string]inventory.Item),
	}
}

func (r *inventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(it.SKU, it.ID) {
		return inventory.ErrSKUTaken
	}
	r.byID[it.ID] = it
	return nil
}

func (r *inventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[it.ID]; !ok {
		return inventory.ErrNotFound
	}
	if r.skuTaken(it.SKU, it.ID) {
		return inventory.ErrSKUTaken
	}
	r.byID[it.ID] = it
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return it, nil
}

func (r *inventoryRepo) List(ctx context.Context, f inventory.ListFilter) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Item, 0)
	for _, it := range r.byID {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.LowStockOnly && !it.IsLowStock() {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *inventoryRepo) Adjust(ctx context.Context, id string, delta int, at time.Time) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.byID[id]
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	if it.Quantity+delta < 0 {
		return inventory.Item{}, inventory.ErrInsufficientStock
	}
	it.Quantity += delta
	it.UpdatedAt = at
	r.byID[id] = it
	return it, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return inventory.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// skuTaken asume el lock tomado. SKU vacío no es único.
func (r *inventoryRepo) skuTaken(sku, exceptID string) bool {
	if sku == "" {
		return false
	}
	for id, it := range r.byID {
		if id != exceptID && it.SKU == sku {
			return true
		}
	}
	return false
}
