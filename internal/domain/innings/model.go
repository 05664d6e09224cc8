package innings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Innings aggregates one innings of a match: counters accumulated over its
// deliveries plus the derived overs and run rate.
//
// Overs uses cricket notation, whole overs plus balls-in-progress after the
// decimal point, so 17 balls at 6 balls per over is 2.5, not 2.83.
type Innings struct {
	MatchID     string
	Number      int
	Team        string
	BattingTeam string
	BowlingTeam string
	TotalRuns   int
	TotalBalls  int
	Wickets     int
	Overs       decimal.Decimal
	RunRate     decimal.Decimal
}

func (i Innings) Validate() error {
	if i.MatchID == "" {
		return fmt.Errorf("innings match id is required")
	}
	if i.Number <= 0 {
		return fmt.Errorf("innings number must be greater than zero")
	}

	return nil
}
