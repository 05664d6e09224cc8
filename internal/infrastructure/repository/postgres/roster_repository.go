package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/roster"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) UpsertLink(ctx context.Context, l roster.Link) error {
	insertModel := rosterTableModel{
		MatchID:      l.MatchID,
		PlayerID:     l.PlayerID,
		Team:         nullableString(l.Team),
		Role:         nullableString(l.Role),
		RegistryName: nullableString(l.RegistryName),
	}

	query, args, err := qb.InsertModel("match_players", insertModel, `ON CONFLICT (match_id, player_id)
DO UPDATE SET
    team = EXCLUDED.team,
    role = EXCLUDED.role,
    registry_name = EXCLUDED.registry_name`)
	if err != nil {
		return fmt.Errorf("build upsert roster link query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert roster link match=%s player=%d: %w", l.MatchID, l.PlayerID, err)
	}

	return nil
}

func (r *RosterRepository) EnsureLink(ctx context.Context, l roster.Link) error {
	insertModel := rosterTableModel{
		MatchID:  l.MatchID,
		PlayerID: l.PlayerID,
		Team:     nullableString(l.Team),
	}

	query, args, err := qb.InsertModel("match_players", insertModel,
		"ON CONFLICT (match_id, player_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build ensure roster link query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure roster link match=%s player=%d: %w", l.MatchID, l.PlayerID, err)
	}

	return nil
}

type rosterTableModel struct {
	MatchID      string  `db:"match_id"`
	PlayerID     int64   `db:"player_id"`
	Team         *string `db:"team"`
	Role         *string `db:"role"`
	RegistryName *string `db:"registry_name"`
}
