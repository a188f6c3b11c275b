// Package memory is the in-process business store used in development and
// tests. Records are cloned on the way in and out.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/store"
)

// Store keeps businesses in a map keyed by slug.
type Store struct {
	mu         sync.RWMutex
	businesses map[string]*domain.Business
	now        func() time.Time
}

var _ store.Businesses = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		businesses: make(map[string]*domain.Business),
		now:        time.Now,
	}
}

func (s *Store) Get(_ context.Context, slug string) (*domain.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.businesses[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b.Clone(), nil
}

func (s *Store) GetForEdit(_ context.Context, slug, token string) (*domain.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.businesses[slug]
	if err := store.Authorize(b, token); err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (s *Store) Exists(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.businesses[slug]
	return ok, nil
}

func (s *Store) Insert(_ context.Context, b *domain.Business) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.businesses[b.Slug]; ok {
		return domain.ErrSlugTaken
	}
	s.businesses[b.Slug] = b.Clone()
	return nil
}

func (s *Store) Update(_ context.Context, slug, token string, b *domain.Business) (*domain.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := store.ApplyUpdate(s.businesses[slug], b, token, s.now())
	if err != nil {
		return nil, err
	}
	s.businesses[slug] = next
	return next.Clone(), nil
}

// Count returns the number of stored businesses.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.businesses), nil
}

func (s *Store) Ping(context.Context) error { return nil }
