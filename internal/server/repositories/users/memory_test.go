package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Email:        "admin@warehouse.com",
		PasswordHash: "hash",
		Roles:        []string{"Admin", "User"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "ids are assigned from 1")
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "admin@warehouse.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@warehouse.com", byID.Email)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "ghost@warehouse.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Email: "admin@warehouse.com", Roles: []string{"Admin"}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Email: "admin@warehouse.com", Roles: []string{"User"}})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "rejected create must not insert")
}

func TestMemoryRepository_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Email: "Admin@warehouse.com", Roles: []string{"Admin"}})
	require.NoError(t, err)

	_, err = repo.FindByEmail(ctx, "admin@warehouse.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Email: "u@warehouse.com", Roles: []string{"User"}})
	require.NoError(t, err)

	created.Roles[0] = "Admin"

	fresh, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, fresh.Roles, "store must not observe caller mutations")
}
