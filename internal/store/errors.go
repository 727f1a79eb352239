package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrConnection is returned when the database is unreachable or
	// rejects the configured credentials. The wrapped cause carries the
	// driver's own message.
	ErrConnection = errors.New("database connection failed")

	// ErrStatement is returned when a statement fails after a connection
	// was successfully acquired. It shares the same server-error surface
	// as ErrConnection in API responses.
	ErrStatement = errors.New("statement execution failed")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsUnavailableError checks if the error represents any kind of store
// failure that should surface to clients as a server error.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrStatement)
}
