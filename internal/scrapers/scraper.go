// Package scrapers retrieves raw showtimes from the three supported
// theater chains. Each provider has its own integration style (JSON API,
// static HTML, browser automation) behind one Scraper interface; adding a
// chain is one file plus one registry entry.
package scrapers

import (
	"context"
	"strings"

	"github.com/tubone24/eiga-miyou/internal/model"
)

// Scraper fetches the showtimes of one venue-day. Failures are encoded in
// the ScrapeResult, never raised: a scraper must not panic or return a Go
// error for malformed upstream data.
type Scraper interface {
	Provider() string
	// Exclusive reports whether this scraper holds an exclusive upstream
	// session. Exclusive scrapers are dispatched strictly sequentially by
	// the orchestrator; concurrent use corrupts the session.
	Exclusive() bool
	Scrape(ctx context.Context, siteCode, date, titleHint string) model.ScrapeResult
}

// Registry selects a Scraper by provider identifier.
type Registry struct {
	byProvider map[string]Scraper
}

func NewRegistry(ss ...Scraper) *Registry {
	r := &Registry{byProvider: make(map[string]Scraper, len(ss))}
	for _, s := range ss {
		r.byProvider[s.Provider()] = s
	}
	return r
}

func (r *Registry) For(provider string) (Scraper, bool) {
	s, ok := r.byProvider[provider]
	return s, ok
}

// padTime zero-pads "9:05" to "09:05". Times already in HH:MM pass through.
func padTime(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	if len(parts[0]) == 1 {
		return "0" + t
	}
	return t
}

// compactDate turns "2025-06-01" into the "20250601" form the upstream
// sites expect.
func compactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

func boolPtr(b bool) *bool { return &b }
