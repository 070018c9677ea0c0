package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/idilsaglam/todolists/internal/metrics"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/jonboulle/clockwork"
)

type memoryEntry struct {
	store     model.Store
	expiresAt time.Time
}

// MemoryRepository keeps sessions in process memory for single-instance mode.
// Entries expire ttl after their last save and are dropped lazily on access or by Prune.
type MemoryRepository struct {
	clock   clockwork.Clock
	ttl     time.Duration
	metrics *metrics.StoreMetrics

	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
}

func NewMemoryRepository(clock clockwork.Clock, ttl time.Duration, m *metrics.StoreMetrics) *MemoryRepository {
	return &MemoryRepository{
		clock:    clock,
		ttl:      ttl,
		metrics:  m,
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

func (r *MemoryRepository) Load(_ context.Context, id uuid.UUID) (model.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return emptyStore(), nil
	}
	if !r.clock.Now().Before(e.expiresAt) {
		delete(r.sessions, id)
		r.metrics.SetSessions(len(r.sessions))
		return emptyStore(), nil
	}
	return e.store.Clone(), nil
}

func (r *MemoryRepository) Save(_ context.Context, id uuid.UUID, s model.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[id] = memoryEntry{
		store:     s.Clone(),
		expiresAt: r.clock.Now().Add(r.ttl),
	}
	r.metrics.SetSessions(len(r.sessions))
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	r.metrics.SetSessions(len(r.sessions))
	return nil
}

func (r *MemoryRepository) Ping(context.Context) error {
	return nil
}

// Prune drops expired sessions and returns how many were removed.
func (r *MemoryRepository) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	removed := 0
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	r.metrics.SetSessions(len(r.sessions))
	return removed
}

// StartPruning runs Prune every interval until the returned stop func is called.
func (r *MemoryRepository) StartPruning(interval time.Duration) (stop func()) {
	ticker := r.clock.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				r.Prune()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
