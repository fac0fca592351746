package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akarpenko/warehouse-api/internal/dbx"
	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// PostgresRepository stores users in the `users` table. Roles are persisted
// as a comma-delimited text column; the delimited form is a storage concern
// and never leaves this package.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, roles, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, roles, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, password_hash, roles)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, joinRoles(user.Roles)).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var roles string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &roles,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Roles = splitRoles(roles)
	return user, nil
}

// splitRoles converts the stored comma-delimited form into a role slice,
// dropping empty entries and surrounding whitespace.
func splitRoles(stored string) []string {
	parts := strings.Split(stored, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			roles = append(roles, s)
		}
	}
	return roles
}

func joinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
