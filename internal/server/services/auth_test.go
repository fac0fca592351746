package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpenko/warehouse-api/internal/logging"
	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testCodec() *auth.Codec {
	return auth.NewCodec([]byte("test-signing-key"), "WarehouseAPI", "WarehouseAPI", 24*time.Hour)
}

func seedUser(t *testing.T, repo users.Repository, email, password string, roles []string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), &models.User{
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
	})
	require.NoError(t, err)
	return u
}

func newAuthService(t *testing.T) (*AuthService, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository()
	seedUser(t, repo, "admin@warehouse.com", "admin123", []string{"Admin", "User"})
	seedUser(t, repo, "user@warehouse.com", "user123", []string{"User"})
	return NewAuthService(repo, testCodec(), discardLogger()), repo
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@warehouse.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(1), res.User.ID)
	assert.Equal(t, "admin@warehouse.com", res.User.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), res.ExpiresAt, 5*time.Second)

	claims, err := testCodec().Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, []string{"Admin", "User"}, claims.Roles)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	wrongPw, errWrongPw := svc.Login(ctx, "user@warehouse.com", "wrongpassword")
	unknown, errUnknown := svc.Login(ctx, "ghost@warehouse.com", "whatever")

	assert.Nil(t, wrongPw)
	assert.Nil(t, unknown)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	// Nothing in the returned values may differ between the two cases.
	assert.Equal(t, errWrongPw, errUnknown)
}

func TestLogin_TokenSnapshotsRolesAtLoginTime(t *testing.T) {
	t.Parallel()

	repo := users.NewMemoryRepository()
	seedUser(t, repo, "user@warehouse.com", "user123", []string{"User"})
	svc := NewAuthService(repo, testCodec(), discardLogger())
	ctx := context.Background()

	res, err := svc.Login(ctx, "user@warehouse.com", "user123")
	require.NoError(t, err)

	claims, err := testCodec().Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, claims.Roles)
}

type faultyUsersRepo struct{}

func (faultyUsersRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("connection refused")
}
func (faultyUsersRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return nil, errors.New("connection refused")
}
func (faultyUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return nil, errors.New("connection refused")
}
func (faultyUsersRepo) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestLogin_StoreFaultLooksLikeBadCredentials(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(faultyUsersRepo{}, testCodec(), discardLogger())

	res, err := svc.Login(context.Background(), "admin@warehouse.com", "admin123")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@warehouse.com", profile.Email)
	assert.Equal(t, []string{"Admin", "User"}, profile.Roles)

	_, err = svc.GetProfile(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_StoreFault(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(faultyUsersRepo{}, testCodec(), discardLogger())

	_, err := svc.GetProfile(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
