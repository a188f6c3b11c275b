// Package ident generates the identifiers a business page is addressed by:
// URL slugs, edit tokens and link ids.
package ident

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// maxSlugAttempts bounds the suffix search in UniqueSlug.
const maxSlugAttempts = 1000

var (
	ErrEmptySlug     = errors.New("name produces an empty slug")
	ErrSlugExhausted = errors.New("no free slug suffix")

	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// ExistsFunc reports whether a record already uses slug.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// CreateSlug lowercases name and collapses each run of characters outside
// [a-z0-9] into a single dash, trimming dashes at both ends.
func CreateSlug(name string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// UniqueSlug returns the first of base, base-1, base-2, ... for which exists
// reports false. The check and the later insert are not atomic; callers
// insert-if-absent and retry on conflict.
func UniqueSlug(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := CreateSlug(name)
	if base == "" {
		return "", ErrEmptySlug
	}

	candidate := base
	for counter := 1; counter <= maxSlugAttempts; counter++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return "", fmt.Errorf("%w for %q", ErrSlugExhausted, base)
}
