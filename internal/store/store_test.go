package store

import (
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

func stored() *domain.Business {
	return &domain.Business{
		Slug:      "joe-s-cafe",
		Name:      "Joe's Cafe",
		WhatsApp:  "12345678901",
		EditToken: "secret",
		Version:   3,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyUpdate(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  *domain.Business
		incoming func() *domain.Business
		token    string
		wantErr  error
	}{
		{
			name:     "missing token",
			current:  stored(),
			incoming: stored,
			wantErr:  domain.ErrTokenRequired,
		},
		{
			name:     "wrong token",
			current:  stored(),
			incoming: stored,
			token:    "guess",
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:     "unknown business",
			incoming: stored,
			token:    "secret",
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:    "older version",
			current: stored(),
			incoming: func() *domain.Business {
				b := stored()
				b.Version = 2
				return b
			},
			token:   "secret",
			wantErr: domain.ErrStaleVersion,
		},
		{
			name:     "same version accepted",
			current:  stored(),
			incoming: stored,
			token:    "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyUpdate(tt.current, tt.incoming(), tt.token, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyUpdate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !got.UpdatedAt.Equal(now) {
				t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
			}
		})
	}
}

func TestApplyUpdateKeepsIdentity(t *testing.T) {
	incoming := stored()
	incoming.Slug = "hijacked"
	incoming.EditToken = "new-token"
	incoming.CreatedAt = time.Time{}
	incoming.Name = "Joe's Bistro"
	incoming.Version = 7

	got, err := ApplyUpdate(stored(), incoming, "secret", time.Now())
	if err != nil {
		t.Fatalf("ApplyUpdate() error = %v", err)
	}
	if got.Slug != "joe-s-cafe" || got.EditToken != "secret" || got.CreatedAt.IsZero() {
		t.Errorf("identity fields overwritten: %+v", got)
	}
	if got.Name != "Joe's Bistro" || got.Version != 7 {
		t.Errorf("content not applied: %+v", got)
	}
	if incoming.Slug != "hijacked" {
		t.Error("ApplyUpdate() mutated its input")
	}
}

func TestTokenMatches(t *testing.T) {
	if TokenMatches("", "") {
		t.Error("empty stored token matched")
	}
	if !TokenMatches("abc", "abc") || TokenMatches("abc", "abd") {
		t.Error("TokenMatches() compared incorrectly")
	}
}
