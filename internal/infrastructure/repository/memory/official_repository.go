package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/official"
)

type OfficialRepository struct {
	mu        sync.Mutex
	officials []official.Official
}

func NewOfficialRepository() *OfficialRepository {
	return &OfficialRepository{}
}

func (r *OfficialRepository) Insert(_ context.Context, o official.Official) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.officials = append(r.officials, o)

	return nil
}

func (r *OfficialRepository) ListByMatch(_ context.Context, matchID string) ([]official.Official, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]official.Official, 0)
	for _, o := range r.officials {
		if o.MatchID == matchID {
			out = append(out, o)
		}
	}

	return out, nil
}

func (r *OfficialRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.officials)
}
