package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/match"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	insertModel := matchTableModel{
		MatchID:       m.ID,
		StartDate:     m.StartDate,
		TeamType:      nullableString(m.TeamType),
		MatchType:     nullableString(m.MatchType),
		MatchNumber:   m.MatchNumber,
		Gender:        nullableString(m.Gender),
		Competition:   nullableString(m.Competition),
		Season:        nullableString(m.Season),
		SeasonYear:    m.SeasonYear,
		Team1:         nullableString(m.Team1),
		Team2:         nullableString(m.Team2),
		Venue:         nullableString(m.Venue),
		City:          nullableString(m.City),
		TossWinner:    nullableString(m.TossWinner),
		TossDecision:  nullableString(m.TossDecision),
		Winner:        nullableString(m.Winner),
		Margin:        nullableString(m.Margin),
		Overs:         m.Overs,
		BallsPerOver:  m.BallsPerOver,
		PlayerOfMatch: nullableString(m.PlayerOfMatch),
		DataVersion:   nullableString(m.DataVersion),
	}

	query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (match_id)
DO UPDATE SET
    start_date = EXCLUDED.start_date,
    team_type = EXCLUDED.team_type,
    match_type = EXCLUDED.match_type,
    match_type_number = EXCLUDED.match_type_number,
    gender = EXCLUDED.gender,
    competition = EXCLUDED.competition,
    season = EXCLUDED.season,
    season_year = EXCLUDED.season_year,
    team1 = EXCLUDED.team1,
    team2 = EXCLUDED.team2,
    venue = EXCLUDED.venue,
    city = EXCLUDED.city,
    toss_winner = EXCLUDED.toss_winner,
    toss_decision = EXCLUDED.toss_decision,
    winner = EXCLUDED.winner,
    margin = EXCLUDED.margin,
    overs = EXCLUDED.overs,
    balls_per_over = EXCLUDED.balls_per_over,
    player_of_match = EXCLUDED.player_of_match,
    data_version = EXCLUDED.data_version,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match %s: %w", m.ID, err)
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("match_id", id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select match %s: %w", id, err)
	}

	out := match.Match{
		ID:            row.MatchID,
		StartDate:     row.StartDate,
		TeamType:      stringValue(row.TeamType),
		MatchType:     stringValue(row.MatchType),
		MatchNumber:   row.MatchNumber,
		Gender:        stringValue(row.Gender),
		Competition:   stringValue(row.Competition),
		Season:        stringValue(row.Season),
		SeasonYear:    row.SeasonYear,
		Team1:         stringValue(row.Team1),
		Team2:         stringValue(row.Team2),
		Venue:         stringValue(row.Venue),
		City:          stringValue(row.City),
		TossWinner:    stringValue(row.TossWinner),
		TossDecision:  stringValue(row.TossDecision),
		Winner:        stringValue(row.Winner),
		Margin:        stringValue(row.Margin),
		Overs:         row.Overs,
		BallsPerOver:  row.BallsPerOver,
		PlayerOfMatch: stringValue(row.PlayerOfMatch),
		DataVersion:   stringValue(row.DataVersion),
	}

	return &out, nil
}
