// Package repomanager wires concrete repositories behind one construction
// point: a postgres-backed manager that runs migrations at startup, and a
// seeded in-memory manager for DSN-less development and tests.
package repomanager

import (
	"github.com/akarpenko/warehouse-api/internal/server/repositories/items"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository
	Close() error
}
