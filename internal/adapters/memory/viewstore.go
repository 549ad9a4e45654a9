// Package memory is the in-process page view store used when Redis is not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"valk_landing/internal/adapters/observability"
	"valk_landing/internal/domain"
)

type entry struct {
	st      domain.ViewState
	expires time.Time
}

type ViewStore struct {
	mu    sync.Mutex
	views map[string]entry
	now   func() time.Time
}

func New() *ViewStore {
	return &ViewStore{views: make(map[string]entry), now: time.Now}
}

func (s *ViewStore) Load(ctx context.Context, id string) (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.views[id]
	if !ok || !s.now().Before(e.expires) {
		delete(s.views, id)
		observability.ObserveStore("memory", "miss")
		return domain.ViewState{}, domain.ErrViewNotFound
	}
	observability.ObserveStore("memory", "hit")
	return e.st, nil
}

func (s *ViewStore) Save(ctx context.Context, st domain.ViewState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[st.ID] = entry{st: st, expires: s.now().Add(ttl)}
	observability.ObserveStore("memory", "set")
	return nil
}

func (s *ViewStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, id)
	observability.ObserveStore("memory", "del")
	return nil
}

// Sweep drops expired views and returns how many were removed.
func (s *ViewStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.views {
		if !now.Before(e.expires) {
			delete(s.views, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *ViewStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.Sweep()
		}
	}
}
