package postgres

type deliveryTableModel struct {
	MatchID        string  `db:"match_id"`
	InningsNumber  int     `db:"innings_number"`
	OverNumber     int     `db:"over_number"`
	BallInOver     int     `db:"ball_in_over"`
	BallSequence   int     `db:"ball_sequence"`
	Batsman        *string `db:"batsman"`
	BatsmanID      *int64  `db:"batsman_id"`
	NonStriker     *string `db:"non_striker"`
	NonStrikerID   *int64  `db:"non_striker_id"`
	Bowler         *string `db:"bowler"`
	BowlerID       *int64  `db:"bowler_id"`
	RunsBatsman    int     `db:"runs_batsman"`
	RunsExtras     int     `db:"runs_extras"`
	RunsTotal      int     `db:"runs_total"`
	ExtraType      *string `db:"extra_type"`
	ExtraValue     int     `db:"extra_value"`
	IsWicket       bool    `db:"is_wicket"`
	WicketKind     *string `db:"wicket_kind"`
	WicketPlayer   *string `db:"wicket_player"`
	WicketPlayerID *int64  `db:"wicket_player_id"`
	Fielder        *string `db:"fielder"`
	FielderID      *int64  `db:"fielder_id"`
	ReviewType     *string `db:"review_type"`
	ReviewBy       *string `db:"review_by"`
	ReviewUmpire   *string `db:"review_umpire"`
	ReviewBatter   *string `db:"review_batter"`
	ReviewDecision *string `db:"review_decision"`
}
