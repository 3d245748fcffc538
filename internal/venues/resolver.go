// Package venues maps (provider, venue display name) pairs to the
// provider-internal site codes the scrapers need.
package venues

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tubone24/eiga-miyou/internal/model"
)

// ErrNotFound is returned when no mapping matches. A normal outcome for
// new or unmapped venues; callers skip the venue and record a note.
var ErrNotFound = errors.New("venue mapping not found")

// Resolver looks up and maintains venue site mappings.
type Resolver interface {
	// Resolve tries an exact (provider, name) match first, then a partial
	// match where either name contains the other, scanning same-provider
	// rows in insertion order. First match wins.
	Resolve(ctx context.Context, provider, venueName string) (*model.VenueSiteMapping, error)
	// Upsert inserts or corrects a mapping keyed by (provider, site code).
	Upsert(ctx context.Context, m model.VenueSiteMapping) error
	// List returns all mappings for one provider in insertion order.
	List(ctx context.Context, provider string) ([]model.VenueSiteMapping, error)
	// Seed loads the reference mapping table. No-op when rows already
	// exist; individual rows use insert-if-absent on (provider, site code)
	// so re-seeding never overwrites manual corrections.
	Seed(ctx context.Context) error
}

// Memory is the Resolver backing used when no database is configured, and
// in tests. Mappings survive only for the process lifetime.
type Memory struct {
	mu   sync.RWMutex
	rows []model.VenueSiteMapping
}

func NewMemory() *Memory { return &Memory{} }

func (r *Memory) Resolve(_ context.Context, provider, venueName string) (*model.VenueSiteMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rows {
		if r.rows[i].Provider == provider && r.rows[i].VenueName == venueName {
			m := r.rows[i]
			return &m, nil
		}
	}
	for i := range r.rows {
		if r.rows[i].Provider != provider {
			continue
		}
		name := r.rows[i].VenueName
		if strings.Contains(name, venueName) || strings.Contains(venueName, name) {
			m := r.rows[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Memory) Upsert(_ context.Context, m model.VenueSiteMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Provider == m.Provider && r.rows[i].SiteCode == m.SiteCode {
			r.rows[i].VenueName = m.VenueName
			r.rows[i].SiteURL = m.SiteURL
			return nil
		}
	}
	r.rows = append(r.rows, m)
	return nil
}

func (r *Memory) List(_ context.Context, provider string) ([]model.VenueSiteMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.VenueSiteMapping, 0)
	for _, m := range r.rows {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Memory) Seed(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) > 0 {
		return nil
	}
	for _, m := range seedMappings {
		if r.containsLocked(m.Provider, m.SiteCode) {
			continue
		}
		r.rows = append(r.rows, m)
	}
	return nil
}

func (r *Memory) containsLocked(provider, siteCode string) bool {
	for _, m := range r.rows {
		if m.Provider == provider && m.SiteCode == siteCode {
			return true
		}
	}
	return false
}
