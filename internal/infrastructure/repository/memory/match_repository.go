package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{matches: make(map[string]match.Match)}
}

func (r *MatchRepository) Upsert(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[m.ID] = m

	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (*match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return nil, nil
	}

	return &m, nil
}

func (r *MatchRepository) All() []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, m)
	}

	return out
}

func (r *MatchRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.matches)
}
