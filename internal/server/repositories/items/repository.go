// Package items stores warehouse inventory records.
package items

import (
	"context"
	"errors"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// ErrNotFound is returned when no item matches the lookup.
var ErrNotFound = errors.New("item not found")

type Repository interface {
	// List returns all items ordered by id.
	List(ctx context.Context) ([]models.InventoryItem, error)

	// Create inserts a new item and returns it with store-assigned fields set.
	Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)

	// Delete removes the item with the given id; ErrNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)
}
