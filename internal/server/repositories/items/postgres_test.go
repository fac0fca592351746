package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "quantity", "location", "created_at", "created_by"}).
		AddRow(int64(1), "Widget A", 100, "A1", now, "").
		AddRow(int64(2), "Widget B", 50, "B2", now, "admin@warehouse.com")
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*quantity,\s*location`).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Widget A" || got[1].CreatedBy != "admin@warehouse.com" {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestCreate_AssignsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT\s+INTO\s+inventory_items`).
		WithArgs("Widget D", 25, "D4", "user@warehouse.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	item := &models.InventoryItem{Name: "Widget D", Quantity: 25, Location: "D4", CreatedBy: "user@warehouse.com"}
	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("expected id 4, got %d", got.ID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+inventory_items`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(225)))

	got, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if got != 225 {
		t.Fatalf("expected 225, got %d", got)
	}
}
