package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/player"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Upsert keeps players unique by name. A conflicting insert reuses the
// existing row; a non-null incoming registry_id replaces the stored value,
// and a null one leaves it untouched.
func (r *PlayerRepository) Upsert(ctx context.Context, name, registryID string) (int64, error) {
	query := `INSERT INTO players (player_name, registry_id) VALUES ($1, $2)
ON CONFLICT (player_name)
DO UPDATE SET registry_id = COALESCE(EXCLUDED.registry_id, players.registry_id)
RETURNING player_id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, nullableString(registryID))
	if isUniqueViolation(err) {
		// Concurrent first inserts of the same name can still trip the
		// constraint before the conflict target is visible. One retry lands
		// on the DO UPDATE arm.
		err = r.db.GetContext(ctx, &id, query, name, nullableString(registryID))
	}
	if err != nil {
		return 0, fmt.Errorf("upsert player %q: %w", name, err)
	}

	return id, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*player.Player, error) {
	query, args, err := qb.Select("player_id", "player_name", "registry_id").From("players").
		Where(qb.Eq("player_name", name)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select player by name %q: %w", name, err)
	}

	return &player.Player{
		ID:         row.PlayerID,
		Name:       row.PlayerName,
		RegistryID: row.RegistryID.String,
	}, nil
}

type playerTableModel struct {
	PlayerID   int64          `db:"player_id"`
	PlayerName string         `db:"player_name"`
	RegistryID sql.NullString `db:"registry_id"`
}
