// Package store defines persistence for businesses. Reads by slug are public;
// every write other than the first insert is gated by the edit token.
package store

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

// Businesses is implemented by every storage driver.
type Businesses interface {
	// Get returns the stored record, edit token included. Callers rendering
	// public output must use Business.Public.
	Get(ctx context.Context, slug string) (*domain.Business, error)
	// GetForEdit returns the record only when token matches.
	GetForEdit(ctx context.Context, slug, token string) (*domain.Business, error)
	Exists(ctx context.Context, slug string) (bool, error)
	// Insert stores b if its slug is free, ErrSlugTaken otherwise.
	Insert(ctx context.Context, b *domain.Business) error
	// Update replaces the editable content of slug when token matches and
	// b.Version is not older than the stored one.
	Update(ctx context.Context, slug, token string, b *domain.Business) (*domain.Business, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// TokenMatches compares tokens in constant time. An empty stored token never
// matches.
func TokenMatches(stored, given string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// Authorize checks token against the stored record.
func Authorize(current *domain.Business, token string) error {
	if token == "" {
		return domain.ErrTokenRequired
	}
	if current == nil || !TokenMatches(current.EditToken, token) {
		return domain.ErrUnauthorized
	}
	return nil
}

// ApplyUpdate merges incoming into current under the write rules: the token
// must match, the version must not go backwards, and slug, token and creation
// time are never taken from the caller.
func ApplyUpdate(current, incoming *domain.Business, token string, now time.Time) (*domain.Business, error) {
	if err := Authorize(current, token); err != nil {
		return nil, err
	}
	if incoming.Version < current.Version {
		return nil, domain.ErrStaleVersion
	}

	next := incoming.Clone()
	next.Slug = current.Slug
	next.EditToken = current.EditToken
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = now.UTC()
	return next, nil
}
