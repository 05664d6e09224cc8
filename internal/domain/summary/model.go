package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchSummary is one row of the match_summary view: the match header joined
// with first and second innings totals.
type MatchSummary struct {
	MatchID       string
	StartDate     *time.Time
	SeasonYear    *int
	Team1         string
	Team2         string
	Venue         string
	City          string
	Winner        string
	Margin        string
	PlayerOfMatch string
	Team1Runs     int
	Team1Wickets  int
	Team1Overs    decimal.Decimal
	Team2Runs     int
	Team2Wickets  int
	Team2Overs    decimal.Decimal
}

// TeamStats is one row of the team_stats view: win/loss record per team over
// every ingested match.
type TeamStats struct {
	Team          string
	MatchesPlayed int
	Wins          int
	Losses        int
	WinPercentage decimal.Decimal
}

// TableCount is a row count for one ingest table, used by the post-batch
// verification pass.
type TableCount struct {
	Table string
	Count int64
}
