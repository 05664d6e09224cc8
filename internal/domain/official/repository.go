package official

import "context"

// Repository describes match official persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, o Official) error
	ListByMatch(ctx context.Context, matchID string) ([]Official, error)
}
