package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	// Upsert inserts the match or refreshes every normalized column when the
	// id already exists.
	Upsert(ctx context.Context, m Match) error
	GetByID(ctx context.Context, id string) (*Match, error)
}
