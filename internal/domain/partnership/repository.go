package partnership

import "context"

// Repository describes partnership persistence needs from use cases.
type Repository interface {
	// ReplaceByMatch deletes every partnership stored for the match and
	// inserts the given set in one transaction.
	ReplaceByMatch(ctx context.Context, matchID string, partnerships []Partnership) error
	ListByMatch(ctx context.Context, matchID string) ([]Partnership, error)
}
