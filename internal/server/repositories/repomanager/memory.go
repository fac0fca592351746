package repomanager

import (
	"context"
	"fmt"

	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/items"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	items *items.MemoryRepository
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}

// NewMemory builds in-memory stores seeded with the development fixtures:
// two users (admin@warehouse.com/admin123 with roles Admin,User and
// user@warehouse.com/user123 with role User) and three inventory items.
// Password hashes are generated at seed time with the given bcrypt cost.
func NewMemory(ctx context.Context, bcryptCost int) (*MemoryRepositoryManager, error) {
	m := &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		items: items.NewMemoryRepository(),
	}

	seedUsers := []struct {
		email    string
		password string
		roles    []string
	}{
		{email: "admin@warehouse.com", password: "admin123", roles: []string{"Admin", "User"}},
		{email: "user@warehouse.com", password: "user123", roles: []string{"User"}},
	}

	for _, s := range seedUsers {
		hash, err := auth.HashPassword(s.password, bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("seed hash error: %w", err)
		}
		if _, err := m.users.Create(ctx, &models.User{
			Email:        s.email,
			PasswordHash: hash,
			Roles:        s.roles,
		}); err != nil {
			return nil, fmt.Errorf("seed user error: %w", err)
		}
	}

	seedItems := []models.InventoryItem{
		{Name: "Widget A", Quantity: 100, Location: "A1"},
		{Name: "Widget B", Quantity: 50, Location: "B2"},
		{Name: "Widget C", Quantity: 75, Location: "C3"},
	}

	for i := range seedItems {
		if _, err := m.items.Create(ctx, &seedItems[i]); err != nil {
			return nil, fmt.Errorf("seed item error: %w", err)
		}
	}

	return m, nil
}
