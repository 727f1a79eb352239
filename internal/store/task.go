package store

import (
	"context"

	"github.com/mhalvorsen/taskdesk/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Each method executes exactly one statement; the store's autocommit
// behavior provides all isolation between concurrent requests.
type TaskStore interface {
	// Create inserts a new task with the given description and returns
	// the store-assigned id. The id is monotonically increasing and is
	// never reused, even after the row is deleted.
	// Returns domain validation errors if the description is invalid.
	Create(ctx context.Context, description string) (int64, error)

	// List returns every stored task in insertion order.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Task, error)

	// DeleteByID removes at most one row matching the id. It succeeds
	// even when no row matched; callers cannot distinguish "removed one
	// row" from "not found".
	DeleteByID(ctx context.Context, id int64) error
}
