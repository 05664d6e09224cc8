package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/cricket-ingest/internal/domain/player"
	"github.com/riskibarqy/cricket-ingest/internal/platform/cache"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/riskibarqy/cricket-ingest/internal/platform/resilience"
)

// PlayerResolver maps raw scorecard names to player row ids. Concurrent
// lookups for the same name are collapsed to one database round trip, and
// resolved ids are cached when a store is configured.
type PlayerResolver struct {
	players player.Repository
	store   *cache.Store
	flight  resilience.SingleFlight
	logger  *logging.Logger
}

// NewPlayerResolver builds a resolver. A nil store disables caching; lookups
// are still deduplicated in flight.
func NewPlayerResolver(players player.Repository, store *cache.Store, logger *logging.Logger) *PlayerResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerResolver{players: players, store: store, logger: logger}
}

// Resolve returns the player row id for the given name, creating the row on
// first sight. Empty names and names that cannot be stored resolve to nil
// rather than an error, so one bad name never sinks the delivery it appears
// on.
func (r *PlayerResolver) Resolve(ctx context.Context, name, registryID string) *int64 {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if utf8.RuneCountInString(name) > player.NameMaxLen {
		name = string([]rune(name)[:player.NameMaxLen])
	}

	load := func(ctx context.Context) (any, error) {
		id, err := r.players.Upsert(ctx, name, registryID)
		if err == nil {
			return id, nil
		}

		// The insert can lose a race or hit a transient failure while the row
		// already exists; fall back to reading it by name.
		existing, getErr := r.players.GetByName(ctx, name)
		if getErr == nil && existing != nil {
			return existing.ID, nil
		}

		return nil, err
	}

	var value any
	var err error
	if r.store != nil {
		value, err = r.store.GetOrLoad(ctx, name, load)
	} else {
		value, err, _ = r.flight.Do(name, func() (any, error) {
			return load(ctx)
		})
	}
	if err != nil {
		r.logger.WarnContext(ctx, "player resolution failed", "player", name, "error", err.Error())
		return nil
	}

	id, ok := value.(int64)
	if !ok {
		return nil
	}

	return &id
}
