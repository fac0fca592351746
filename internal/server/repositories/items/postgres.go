package items

import (
	"context"
	"fmt"

	"github.com/akarpenko/warehouse-api/internal/dbx"
	"github.com/akarpenko/warehouse-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	query :=
		`SELECT id, name, quantity, location, created_at, created_by FROM inventory_items
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Location,
			&item.CreatedAt, &item.CreatedBy); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	query :=
		`INSERT INTO inventory_items (name, quantity, location, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Quantity, item.Location, item.CreatedBy).
		Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM inventory_items WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM inventory_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
