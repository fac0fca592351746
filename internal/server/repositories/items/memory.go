package items

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// MemoryRepository is the in-process inventory store used when no database
// DSN is configured, and by tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.InventoryItem
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[int64]models.InventoryItem{}, nextID: 1}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.InventoryItem, 0, len(r.byID))
	for _, item := range r.byID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (r *MemoryRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()

	r.byID[stored.ID] = stored
	r.nextID++

	created := stored
	return &created, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byID)), nil
}
