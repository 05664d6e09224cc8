package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/partnership"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type PartnershipRepository struct {
	db *sqlx.DB
}

func NewPartnershipRepository(db *sqlx.DB) *PartnershipRepository {
	return &PartnershipRepository{db: db}
}

func (r *PartnershipRepository) ReplaceByMatch(ctx context.Context, matchID string, partnerships []partnership.Partnership) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace partnerships: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteSQL, deleteArgs, err := qb.DeleteFrom("partnerships").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete partnerships query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete partnerships match=%s: %w", matchID, err)
	}

	for _, p := range partnerships {
		insertModel := partnershipTableModel{
			MatchID:       matchID,
			InningsNumber: p.InningsNumber,
			WicketNumber:  p.WicketNumber,
			Batsman1:      nullableString(p.Batter1),
			Batsman1ID:    p.Batter1ID,
			Batsman2:      nullableString(p.Batter2),
			Batsman2ID:    p.Batter2ID,
			Runs:          p.Runs,
			Balls:         p.Balls,
		}

		query, args, err := qb.InsertModel("partnerships", insertModel)
		if err != nil {
			return fmt.Errorf("build insert partnership query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert partnership match=%s innings=%d stand=%d: %w",
				matchID, p.InningsNumber, p.WicketNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace partnerships tx: %w", err)
	}

	return nil
}

func (r *PartnershipRepository) ListByMatch(ctx context.Context, matchID string) ([]partnership.Partnership, error) {
	query, args, err := qb.Select(
		"match_id", "innings_number", "wicket_number",
		"batsman1", "batsman1_id", "batsman2", "batsman2_id", "runs", "balls",
	).From("partnerships").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("innings_number", "wicket_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select partnerships query: %w", err)
	}

	var rows []partnershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select partnerships match=%s: %w", matchID, err)
	}

	out := make([]partnership.Partnership, 0, len(rows))
	for _, row := range rows {
		out = append(out, partnership.Partnership{
			MatchID:       row.MatchID,
			InningsNumber: row.InningsNumber,
			WicketNumber:  row.WicketNumber,
			Batter1:       stringValue(row.Batsman1),
			Batter1ID:     row.Batsman1ID,
			Batter2:       stringValue(row.Batsman2),
			Batter2ID:     row.Batsman2ID,
			Runs:          row.Runs,
			Balls:         row.Balls,
		})
	}

	return out, nil
}

type partnershipTableModel struct {
	MatchID       string  `db:"match_id"`
	InningsNumber int     `db:"innings_number"`
	WicketNumber  int     `db:"wicket_number"`
	Batsman1      *string `db:"batsman1"`
	Batsman1ID    *int64  `db:"batsman1_id"`
	Batsman2      *string `db:"batsman2"`
	Batsman2ID    *int64  `db:"batsman2_id"`
	Runs          int     `db:"runs"`
	Balls         int     `db:"balls"`
}
