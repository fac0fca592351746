package users

import (
	"context"
	"sync"
	"time"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// MemoryRepository is an in-process credential store used when no database
// DSN is configured, and by tests. IDs are assigned sequentially from 1.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*models.User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[int64]*models.User{}, nextID: 1}
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// same uniqueness rule as the users table
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	stored := cloneUser(user)
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = stored
	r.nextID++

	return cloneUser(stored), nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byID)), nil
}

// cloneUser copies the record so callers never share role slices with the
// store.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.Roles = make([]string, len(u.Roles))
	copy(c.Roles, u.Roles)
	return &c
}
