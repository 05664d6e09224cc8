package summary

import "context"

// Repository describes read-side reporting queries over ingested data.
type Repository interface {
	MatchSummaries(ctx context.Context, limit int) ([]MatchSummary, error)
	TeamStats(ctx context.Context) ([]TeamStats, error)
	CountTable(ctx context.Context, table string) (int64, error)
}
