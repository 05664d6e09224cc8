package postgres

import "time"

type matchTableModel struct {
	MatchID       string     `db:"match_id"`
	StartDate     *time.Time `db:"start_date"`
	TeamType      *string    `db:"team_type"`
	MatchType     *string    `db:"match_type"`
	MatchNumber   *int       `db:"match_type_number"`
	Gender        *string    `db:"gender"`
	Competition   *string    `db:"competition"`
	Season        *string    `db:"season"`
	SeasonYear    *int       `db:"season_year"`
	Team1         *string    `db:"team1"`
	Team2         *string    `db:"team2"`
	Venue         *string    `db:"venue"`
	City          *string    `db:"city"`
	TossWinner    *string    `db:"toss_winner"`
	TossDecision  *string    `db:"toss_decision"`
	Winner        *string    `db:"winner"`
	Margin        *string    `db:"margin"`
	Overs         *int       `db:"overs"`
	BallsPerOver  int        `db:"balls_per_over"`
	PlayerOfMatch *string    `db:"player_of_match"`
	DataVersion   *string    `db:"data_version"`
}

var matchSelectColumns = []string{
	"match_id",
	"start_date",
	"team_type",
	"match_type",
	"match_type_number",
	"gender",
	"competition",
	"season",
	"season_year",
	"team1",
	"team2",
	"venue",
	"city",
	"toss_winner",
	"toss_decision",
	"winner",
	"margin",
	"overs",
	"balls_per_over",
	"player_of_match",
	"data_version",
}
