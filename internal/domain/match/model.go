package match

import (
	"fmt"
	"time"
)

// Match is the normalized header row for one scorecard file. The ID is the
// Cricsheet file stem, e.g. "980961".
type Match struct {
	ID            string
	StartDate     *time.Time
	TeamType      string
	MatchType     string
	MatchNumber   *int
	Gender        string
	Competition   string
	Season        string
	SeasonYear    *int
	Team1         string
	Team2         string
	Venue         string
	City          string
	TossWinner    string
	TossDecision  string
	Winner        string
	Margin        string
	Overs         *int
	BallsPerOver  int
	PlayerOfMatch string
	DataVersion   string
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.BallsPerOver <= 0 {
		return fmt.Errorf("match balls per over must be greater than zero")
	}

	return nil
}
