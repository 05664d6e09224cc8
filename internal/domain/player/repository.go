package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Upsert inserts the player or, on a name collision, keeps the row and
	// fills its registry id when the incoming one is non-empty. It returns the
	// row id either way.
	Upsert(ctx context.Context, name, registryID string) (int64, error)
	GetByName(ctx context.Context, name string) (*Player, error)
}
