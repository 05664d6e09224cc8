package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/innings"
)

type InningsRepository struct {
	mu      sync.Mutex
	innings map[string]innings.Innings
}

func NewInningsRepository() *InningsRepository {
	return &InningsRepository{innings: make(map[string]innings.Innings)}
}

func inningsKey(matchID string, number int) string {
	return fmt.Sprintf("%s|%d", matchID, number)
}

func (r *InningsRepository) Upsert(_ context.Context, i innings.Innings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.innings[inningsKey(i.MatchID, i.Number)] = i

	return nil
}

func (r *InningsRepository) ListByMatch(_ context.Context, matchID string) ([]innings.Innings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]innings.Innings, 0)
	for _, i := range r.innings {
		if i.MatchID == matchID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Number < out[b].Number })

	return out, nil
}

func (r *InningsRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.innings)
}
