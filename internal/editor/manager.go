package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/store"
)

// Manager keeps one live session per slug so concurrent editors of the same
// page share a draft.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closing  map[string]chan struct{}

	store store.Businesses
	delay time.Duration
	log   logger.Logger
	now   func() time.Time
}

func NewManager(s store.Businesses, delay time.Duration, log logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		closing:  make(map[string]chan struct{}),
		store:    s,
		delay:    delay,
		log:      log,
		now:      time.Now,
	}
}

// Open authorizes token against slug and returns its session, starting one
// from the stored record when none is live. A session being reaped is waited
// out so the new one loads its last save.
func (m *Manager) Open(ctx context.Context, slug, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}

	for {
		m.mu.Lock()
		s, ok := m.sessions[slug]
		if ok && !s.isClosed() {
			if !store.TokenMatches(s.token, token) {
				m.mu.Unlock()
				return nil, domain.ErrUnauthorized
			}
			s.touch()
			m.mu.Unlock()
			return s, nil
		}
		if ok {
			delete(m.sessions, slug)
		}
		wait := m.closing[slug]
		m.mu.Unlock()

		if wait == nil {
			break
		}
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	b, err := m.store.GetForEdit(ctx, slug, token)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[slug]; ok && !s.isClosed() {
		s.touch()
		return s, nil
	}
	s := newSession(b, b.EditToken, m.store, m.delay, m.log, m.now)
	m.sessions[slug] = s
	m.log.Debug("edit session opened", logger.String("slug", slug))
	return s, nil
}

// Lookup returns the live session for slug, if any, after checking token.
func (m *Manager) Lookup(slug, token string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[slug]
	m.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !store.TokenMatches(s.token, token) {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// Reap closes sessions untouched for idle and returns how many were removed.
// Sessions leave the map before they are saved. One whose save fails is put
// back for the next pass.
func (m *Manager) Reap(ctx context.Context, idle time.Duration) (int, error) {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []*Session
	for slug, s := range m.sessions {
		if _, busy := m.closing[slug]; busy || !s.idleSince(cutoff) {
			continue
		}
		delete(m.sessions, slug)
		m.closing[slug] = make(chan struct{})
		stale = append(stale, s)
	}
	m.mu.Unlock()

	var errs []error
	removed := 0
	for _, s := range stale {
		err := s.Close(ctx)
		failed := err != nil && !errors.Is(err, domain.ErrStaleVersion)

		m.mu.Lock()
		if failed {
			s.reopen()
			if _, taken := m.sessions[s.slug]; !taken {
				m.sessions[s.slug] = s
			}
			errs = append(errs, err)
		} else {
			removed++
		}
		close(m.closing[s.slug])
		delete(m.closing, s.slug)
		m.mu.Unlock()
	}
	return removed, errors.Join(errs...)
}

// CloseAll saves and drops every session. Used on shutdown.
func (m *Manager) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var errs []error
	for _, s := range all {
		if err := s.Close(ctx); err != nil && !errors.Is(err, domain.ErrStaleVersion) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
