package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.Mutex
	links map[string]roster.Link
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{links: make(map[string]roster.Link)}
}

func linkKey(matchID string, playerID int64) string {
	return fmt.Sprintf("%s|%d", matchID, playerID)
}

func (r *RosterRepository) UpsertLink(_ context.Context, l roster.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links[linkKey(l.MatchID, l.PlayerID)] = l

	return nil
}

func (r *RosterRepository) EnsureLink(_ context.Context, l roster.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := linkKey(l.MatchID, l.PlayerID)
	if _, ok := r.links[key]; !ok {
		r.links[key] = l
	}

	return nil
}

func (r *RosterRepository) GetLink(matchID string, playerID int64) (roster.Link, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.links[linkKey(matchID, playerID)]
	return l, ok
}

func (r *RosterRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.links)
}
