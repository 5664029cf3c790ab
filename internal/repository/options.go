package repository

import (
	"context"
	"errors"
)

// ErrNoSchema is returned by stores that need a bootstrap step before use.
var ErrNoSchema = errors.New("option table missing")

// OptionStore is a named-slot key-value store with last-write-wins
// semantics. SetOptions must apply every value in one atomic step.
type OptionStore interface {
	// GetOptions returns the stored value for each name that exists;
	// missing names are absent from the map.
	GetOptions(ctx context.Context, names ...string) (map[string][]byte, error)
	SetOptions(ctx context.Context, values map[string][]byte) error
}
