package services

import (
	"context"
	"time"

	"github.com/akarpenko/warehouse-api/internal/logging"
	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/items"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

// SystemStats is the admin-only operational summary.
type SystemStats struct {
	TotalItems int64         `json:"totalItems"`
	TotalUsers int64         `json:"totalUsers"`
	Uptime     time.Duration `json:"uptime"`
}

// InventoryService exposes warehouse stock operations. Authorization is the
// boundary layer's concern; by the time these methods run the caller's roles
// have already been checked.
type InventoryService struct {
	items   items.Repository
	users   users.Repository
	logger  logging.Logger
	started time.Time
}

func NewInventoryService(itemsRepo items.Repository, usersRepo users.Repository, logger logging.Logger) *InventoryService {
	return &InventoryService{
		items:   itemsRepo,
		users:   usersRepo,
		logger:  logger.With("module", "inventory_service"),
		started: time.Now(),
	}
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.items.List(ctx)
}

// Add records a new inventory item; createdBy is the authenticated caller's
// email taken from their token claims.
func (s *InventoryService) Add(ctx context.Context, item *models.InventoryItem, createdBy string) (*models.InventoryItem, error) {
	item.CreatedBy = createdBy

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "inventory item added", "id", created.ID, "by", createdBy)
	return created, nil
}

// Remove deletes an item by id; items.ErrNotFound passes through untouched.
func (s *InventoryService) Remove(ctx context.Context, id int64, deletedBy string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn(ctx, "inventory item deleted", "id", id, "by", deletedBy)
	return nil
}

func (s *InventoryService) Stats(ctx context.Context) (*SystemStats, error) {
	totalItems, err := s.items.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &SystemStats{
		TotalItems: totalItems,
		TotalUsers: totalUsers,
		Uptime:     time.Since(s.started),
	}, nil
}
