package registry

import (
	"context"
	"sync"
	"time"

	"imposter_server/internal/domain"
	"imposter_server/internal/game"
	"imposter_server/internal/logger"
)

const sweepInterval = 5 * time.Minute

// Memory is the single-instance registry: a map guarded by an RWMutex plus
// a background sweep that evicts games past their TTL. Get also checks the
// TTL itself, so eviction does not depend on sweep timing.
type Memory struct {
	ttl   time.Duration
	mu    sync.RWMutex
	games map[string]*game.Game
	stop  chan struct{}
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:   ttl,
		games: make(map[string]*game.Game),
		stop:  make(chan struct{}),
	}
}

func (m *Memory) Put(_ context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()

	if !ok || g.ExpiredAt(time.Now(), m.ttl) {
		return nil, domain.ErrGameNotFound
	}
	return g, nil
}

// Update is a no-op: Get hands out the live pointer, so reveal bookkeeping
// is already visible.
func (m *Memory) Update(_ context.Context, _ *game.Game) error {
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// Len returns the number of stored games, expired ones included until the
// next sweep.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// StartSweeper launches the background eviction loop.
func (m *Memory) StartSweeper() {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep(time.Now())
			case <-m.stop:
				return
			}
		}
	}()
}

// StopSweeper stops the eviction loop.
func (m *Memory) StopSweeper() {
	close(m.stop)
}

func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, g := range m.games {
		if g.ExpiredAt(now, m.ttl) {
			delete(m.games, id)
			evicted++
		}
	}
	if evicted > 0 {
		logger.Info("evicted expired games", "count", evicted, "remaining", len(m.games))
	}
}
