package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-ingest/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.Mutex
	byName map[string]player.Player
	nextID int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{byName: make(map[string]player.Player), nextID: 1}
}

func (r *PlayerRepository) Upsert(_ context.Context, name, registryID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		if registryID != "" {
			existing.RegistryID = registryID
			r.byName[name] = existing
		}
		return existing.ID, nil
	}

	p := player.Player{ID: r.nextID, Name: name, RegistryID: registryID}
	r.byName[name] = p
	r.nextID++

	return p.ID, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (*player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byName[name]
	if !ok {
		return nil, nil
	}

	return &p, nil
}

func (r *PlayerRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byName)
}
