// Package users implements the credential store: user records looked up by
// email at login and by id for profile resolution.
package users

import (
	"context"
	"errors"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

// Sentinel errors matched with errors.Is; both are ordinary control flow,
// not faults.
var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned by Create when the email is taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

type Repository interface {
	// FindByEmail looks a user up by exact, case-sensitive email equality.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID looks a user up by primary key.
	FindByID(ctx context.Context, id int64) (*models.User, error)

	// Create inserts a new user and returns it with store-assigned fields
	// set; ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)
}
