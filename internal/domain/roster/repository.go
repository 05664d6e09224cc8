package roster

import "context"

// Repository describes match squad persistence needs from use cases.
type Repository interface {
	// UpsertLink inserts the link or refreshes team and registry name when the
	// (match, player) pair already exists.
	UpsertLink(ctx context.Context, l Link) error
	// EnsureLink inserts the link only when the (match, player) pair is new.
	// Used for players first seen on a delivery rather than a squad list.
	EnsureLink(ctx context.Context, l Link) error
}
