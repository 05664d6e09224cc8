package innings

import "context"

// Repository describes innings persistence needs from use cases.
type Repository interface {
	// Upsert inserts the innings or refreshes its aggregates when the
	// (match, number) pair already exists.
	Upsert(ctx context.Context, i Innings) error
	ListByMatch(ctx context.Context, matchID string) ([]Innings, error)
}
