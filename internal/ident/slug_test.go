package ident

import (
	"context"
	"errors"
	"testing"
)

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "apostrophe", input: "Joe's Cafe", expected: "joe-s-cafe"},
		{name: "already slug", input: "bella", expected: "bella"},
		{name: "leading and trailing punctuation", input: "  --Tony's Barbershop!! ", expected: "tony-s-barbershop"},
		{name: "digits kept", input: "Studio 54", expected: "studio-54"},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "non ascii letters", input: "Café Crème", expected: "caf-cr-me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateSlug(tt.input)
			if got != tt.expected {
				t.Errorf("CreateSlug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if again := CreateSlug(got); again != got {
				t.Errorf("CreateSlug is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func existsIn(taken ...string) ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestUniqueSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		taken    []string
		expected string
	}{
		{name: "free base", input: "Bella", expected: "bella"},
		{name: "base taken", input: "Bella", taken: []string{"bella"}, expected: "bella-1"},
		{name: "first suffixes taken", input: "Bella", taken: []string{"bella", "bella-1", "bella-2"}, expected: "bella-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UniqueSlug(context.Background(), tt.input, existsIn(tt.taken...))
			if err != nil {
				t.Fatalf("UniqueSlug() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("UniqueSlug() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUniqueSlugErrors(t *testing.T) {
	if _, err := UniqueSlug(context.Background(), "???", existsIn()); !errors.Is(err, ErrEmptySlug) {
		t.Errorf("UniqueSlug() error = %v, want ErrEmptySlug", err)
	}

	boom := errors.New("store down")
	failing := func(context.Context, string) (bool, error) { return false, boom }
	if _, err := UniqueSlug(context.Background(), "bella", failing); !errors.Is(err, boom) {
		t.Errorf("UniqueSlug() error = %v, want wrapped store error", err)
	}

	always := func(context.Context, string) (bool, error) { return true, nil }
	if _, err := UniqueSlug(context.Background(), "bella", always); !errors.Is(err, ErrSlugExhausted) {
		t.Errorf("UniqueSlug() error = %v, want ErrSlugExhausted", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := UniqueSlug(ctx, "bella", existsIn()); !errors.Is(err, context.Canceled) {
		t.Errorf("UniqueSlug() error = %v, want context.Canceled", err)
	}
}
