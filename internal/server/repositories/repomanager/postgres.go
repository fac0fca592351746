package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/akarpenko/warehouse-api/internal/server/migrations"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/items"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	items items.Repository
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// Conn exposes the raw handle for tooling (cmd/seed).
func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgres opens the database, applies pending migrations and returns the
// ready manager.
func NewPostgres(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return newPostgres(ctx, db)
}

func newPostgres(ctx context.Context, db *sql.DB) (*PostgresRepositoryManager, error) {
	m := &PostgresRepositoryManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		items: items.NewPostgresRepository(db),
	}

	if err := m.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
