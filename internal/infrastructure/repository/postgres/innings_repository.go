package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/innings"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
	"github.com/shopspring/decimal"
)

type InningsRepository struct {
	db *sqlx.DB
}

func NewInningsRepository(db *sqlx.DB) *InningsRepository {
	return &InningsRepository{db: db}
}

func (r *InningsRepository) Upsert(ctx context.Context, i innings.Innings) error {
	insertModel := inningsTableModel{
		MatchID:       i.MatchID,
		InningsNumber: i.Number,
		Team:          nullableString(i.Team),
		BattingTeam:   nullableString(i.BattingTeam),
		BowlingTeam:   nullableString(i.BowlingTeam),
		TotalRuns:     i.TotalRuns,
		TotalBalls:    i.TotalBalls,
		Wickets:       i.Wickets,
		Overs:         i.Overs,
		RunRate:       i.RunRate,
	}

	query, args, err := qb.InsertModel("innings", insertModel, `ON CONFLICT (match_id, innings_number)
DO UPDATE SET
    team = EXCLUDED.team,
    batting_team = EXCLUDED.batting_team,
    bowling_team = EXCLUDED.bowling_team,
    total_runs = EXCLUDED.total_runs,
    total_balls = EXCLUDED.total_balls,
    wickets = EXCLUDED.wickets,
    overs = EXCLUDED.overs,
    run_rate = EXCLUDED.run_rate`)
	if err != nil {
		return fmt.Errorf("build upsert innings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert innings match=%s number=%d: %w", i.MatchID, i.Number, err)
	}

	return nil
}

func (r *InningsRepository) ListByMatch(ctx context.Context, matchID string) ([]innings.Innings, error) {
	query, args, err := qb.Select(
		"match_id", "innings_number", "team", "batting_team", "bowling_team",
		"total_runs", "total_balls", "wickets", "overs", "run_rate",
	).From("innings").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("innings_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select innings query: %w", err)
	}

	var rows []inningsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select innings match=%s: %w", matchID, err)
	}

	out := make([]innings.Innings, 0, len(rows))
	for _, row := range rows {
		out = append(out, innings.Innings{
			MatchID:     row.MatchID,
			Number:      row.InningsNumber,
			Team:        stringValue(row.Team),
			BattingTeam: stringValue(row.BattingTeam),
			BowlingTeam: stringValue(row.BowlingTeam),
			TotalRuns:   row.TotalRuns,
			TotalBalls:  row.TotalBalls,
			Wickets:     row.Wickets,
			Overs:       row.Overs,
			RunRate:     row.RunRate,
		})
	}

	return out, nil
}

type inningsTableModel struct {
	MatchID       string          `db:"match_id"`
	InningsNumber int             `db:"innings_number"`
	Team          *string         `db:"team"`
	BattingTeam   *string         `db:"batting_team"`
	BowlingTeam   *string         `db:"bowling_team"`
	TotalRuns     int             `db:"total_runs"`
	TotalBalls    int             `db:"total_balls"`
	Wickets       int             `db:"wickets"`
	Overs         decimal.Decimal `db:"overs"`
	RunRate       decimal.Decimal `db:"run_rate"`
}
