package delivery

import "context"

// Repository describes delivery persistence needs from use cases.
type Repository interface {
	// ReplaceByMatch deletes every delivery stored for the match and inserts
	// the given set in one transaction, so re-ingesting a file never leaves
	// duplicate balls behind.
	ReplaceByMatch(ctx context.Context, matchID string, deliveries []Delivery) error
	CountByMatch(ctx context.Context, matchID string) (int64, error)
}
