// Package redis stores businesses as JSON documents, one key per slug, with
// a set indexing every slug.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/store"
	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic retries when a watched key changes mid-update.
const maxTxRetries = 5

// Store implements store.Businesses on Redis.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

var _ store.Businesses = (*Store)(nil)

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

func decode(data []byte) (*domain.Business, error) {
	var b domain.Business
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business: %w", err)
	}
	return &b, nil
}

func (s *Store) Get(ctx context.Context, slug string) (*domain.Business, error) {
	data, err := s.client.Get(ctx, BusinessKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business %s: %w", slug, err)
	}
	return decode(data)
}

func (s *Store) GetForEdit(ctx context.Context, slug, token string) (*domain.Business, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	b, err := s.Get(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if err := store.Authorize(b, token); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	n, err := s.client.Exists(ctx, BusinessKey(slug)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check business %s: %w", slug, err)
	}
	return n > 0, nil
}

// Insert claims the slug with SETNX so concurrent creators cannot overwrite
// each other.
func (s *Store) Insert(ctx context.Context, b *domain.Business) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal business: %w", err)
	}

	ok, err := s.client.SetNX(ctx, BusinessKey(b.Slug), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save business: %w", err)
	}
	if !ok {
		return domain.ErrSlugTaken
	}

	if err := s.client.SAdd(ctx, KeyAllBusinesses, b.Slug).Err(); err != nil {
		return fmt.Errorf("failed to add business to set: %w", err)
	}
	return nil
}

// Update runs the read-check-write under WATCH and retries when another
// writer got in between.
func (s *Store) Update(ctx context.Context, slug, token string, b *domain.Business) (*domain.Business, error) {
	key := BusinessKey(slug)
	var next *domain.Business

	txf := func(tx *redis.Tx) error {
		var current *domain.Business
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("failed to get business %s: %w", slug, err)
		default:
			if current, err = decode(data); err != nil {
				return err
			}
		}

		next, err = store.ApplyUpdate(current, b, token, s.now())
		if err != nil {
			return err
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal business: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return next, nil
	}
	return nil, fmt.Errorf("failed to update business %s: too much contention", slug)
}

// Count returns the size of the slug index.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, KeyAllBusinesses).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return int(n), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
