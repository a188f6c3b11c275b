// Package catalog holds the business-type starters offered by the create
// wizard. The registry is replaced wholesale on every catalog reload.
package catalog

import (
	"slices"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

// Starter seeds a new business of a given type.
type Starter struct {
	Type      string           `json:"type"`
	Label     string           `json:"label"`
	Example   string           `json:"example,omitempty"`
	Tagline   string           `json:"tagline,omitempty"`
	Preset    string           `json:"preset"`
	Platforms []string         `json:"platforms"`
	Services  []domain.Service `json:"services"`
}

func (s Starter) clone() Starter {
	s.Platforms = slices.Clone(s.Platforms)
	s.Services = slices.Clone(s.Services)
	return s
}

// Registry is a concurrency-safe, ordered set of starters.
type Registry struct {
	mu         sync.RWMutex
	starters   map[string]Starter
	order      []string
	lastReload time.Time
}

func NewRegistry() *Registry {
	return &Registry{starters: make(map[string]Starter)}
}

// Replace swaps in a new catalog, keeping the given order.
func (r *Registry) Replace(starters []Starter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.starters = make(map[string]Starter, len(starters))
	r.order = r.order[:0]
	for _, s := range starters {
		if _, dup := r.starters[s.Type]; !dup {
			r.order = append(r.order, s.Type)
		}
		r.starters[s.Type] = s.clone()
	}
	r.lastReload = time.Now()
}

// Starter returns the starter for a business type.
func (r *Registry) Starter(typ string) (Starter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.starters[typ]
	if !ok {
		return Starter{}, false
	}
	return s.clone(), true
}

// Starters returns every starter in catalog order.
func (r *Registry) Starters() []Starter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Starter, 0, len(r.order))
	for _, typ := range r.order {
		out = append(out, r.starters[typ].clone())
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.starters)
}

// LastReload is the time of the last Replace.
func (r *Registry) LastReload() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lastReload
}
