package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/official"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type OfficialRepository struct {
	db *sqlx.DB
}

func NewOfficialRepository(db *sqlx.DB) *OfficialRepository {
	return &OfficialRepository{db: db}
}

func (r *OfficialRepository) Insert(ctx context.Context, o official.Official) error {
	insertModel := officialTableModel{
		MatchID: o.MatchID,
		Role:    string(o.Role),
		Name:    o.Name,
	}

	query, args, err := qb.InsertModel("match_officials", insertModel)
	if err != nil {
		return fmt.Errorf("build insert official query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert official match=%s role=%s: %w", o.MatchID, o.Role, err)
	}

	return nil
}

func (r *OfficialRepository) ListByMatch(ctx context.Context, matchID string) ([]official.Official, error) {
	query, args, err := qb.Select("match_id", "role", "name").From("match_officials").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("official_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select officials query: %w", err)
	}

	var rows []officialTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select officials match=%s: %w", matchID, err)
	}

	out := make([]official.Official, 0, len(rows))
	for _, row := range rows {
		out = append(out, official.Official{
			MatchID: row.MatchID,
			Role:    official.Role(row.Role),
			Name:    row.Name,
		})
	}

	return out, nil
}

type officialTableModel struct {
	MatchID string `db:"match_id"`
	Role    string `db:"role"`
	Name    string `db:"name"`
}
