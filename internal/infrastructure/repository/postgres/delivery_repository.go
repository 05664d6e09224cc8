package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-ingest/internal/domain/delivery"
	qb "github.com/riskibarqy/cricket-ingest/internal/platform/querybuilder"
)

type DeliveryRepository struct {
	db *sqlx.DB
}

func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// ReplaceByMatch clears and rewrites the match's deliveries in one
// transaction. A partially failed rewrite rolls back to the previous state.
func (r *DeliveryRepository) ReplaceByMatch(ctx context.Context, matchID string, deliveries []delivery.Delivery) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace deliveries: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteSQL, deleteArgs, err := qb.DeleteFrom("deliveries").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete deliveries query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete deliveries match=%s: %w", matchID, err)
	}

	for _, d := range deliveries {
		insertModel := deliveryTableModel{
			MatchID:        matchID,
			InningsNumber:  d.InningsNumber,
			OverNumber:     d.OverNumber,
			BallInOver:     d.BallInOver,
			BallSequence:   d.BallSequence,
			Batsman:        nullableString(d.Batter),
			BatsmanID:      d.BatterID,
			NonStriker:     nullableString(d.NonStriker),
			NonStrikerID:   d.NonStrikerID,
			Bowler:         nullableString(d.Bowler),
			BowlerID:       d.BowlerID,
			RunsBatsman:    d.RunsBatter,
			RunsExtras:     d.RunsExtras,
			RunsTotal:      d.RunsTotal,
			ExtraType:      nullableString(d.ExtraType),
			ExtraValue:     d.ExtraValue,
			IsWicket:       d.IsWicket,
			WicketKind:     nullableString(d.WicketKind),
			WicketPlayer:   nullableString(d.WicketPlayer),
			WicketPlayerID: d.WicketPlayerID,
			Fielder:        nullableString(d.Fielder),
			FielderID:      d.FielderID,
			ReviewType:     nullableString(d.ReviewType),
			ReviewBy:       nullableString(d.ReviewBy),
			ReviewUmpire:   nullableString(d.ReviewUmpire),
			ReviewBatter:   nullableString(d.ReviewBatter),
			ReviewDecision: nullableString(d.ReviewDecision),
		}

		query, args, err := qb.InsertModel("deliveries", insertModel)
		if err != nil {
			return fmt.Errorf("build insert delivery query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert delivery match=%s innings=%d seq=%d: %w",
				matchID, d.InningsNumber, d.BallSequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace deliveries tx: %w", err)
	}

	return nil
}

func (r *DeliveryRepository) CountByMatch(ctx context.Context, matchID string) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From("deliveries").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count deliveries query: %w", err)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count deliveries match=%s: %w", matchID, err)
	}

	return count, nil
}
