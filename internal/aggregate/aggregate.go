// Package aggregate combines per-venue scraping into one schedule search.
// Reliable providers are scraped in parallel; the browser-automation
// provider is serialized onto its own lane because the underlying session
// is exclusive. Per-venue failures become notes, never hard errors.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/scrapers"
	"github.com/tubone24/eiga-miyou/internal/title"
	"github.com/tubone24/eiga-miyou/internal/venues"
	"github.com/tubone24/eiga-miyou/pkg/cache"
)

// notePrefix heads the advisory string when some venues failed.
const notePrefix = "Some venues could not be fetched:"

// MovieSearcher is the metadata-lookup collaborator (pkg/tmdb in
// production). Nil means the lookup is not configured.
type MovieSearcher interface {
	SearchMovie(ctx context.Context, query string) (*model.MovieInfo, error)
}

// Aggregator is the engine's sole entry point.
type Aggregator struct {
	Resolver venues.Resolver
	Cache    cache.ResultCache
	Scrapers *scrapers.Registry
	Movies   MovieSearcher

	// FetchTimeout bounds one parallel-lane scrape; BrowserTimeout bounds
	// one browser-lane scrape including the open/settle/snapshot/close
	// cycle. Zero values fall back to the defaults.
	FetchTimeout   time.Duration
	BrowserTimeout time.Duration

	// browserMu serializes the browser lane across concurrent requests.
	// The underlying session tolerates exactly one cycle at a time, and
	// the HTTP surface handles requests concurrently.
	browserMu sync.Mutex
}

const (
	defaultFetchTimeout   = 15 * time.Second
	defaultBrowserTimeout = 90 * time.Second
)

// outcome is one venue's terminal state: a schedule or a failure note.
type outcome struct {
	schedule *model.AggregatedSchedule
	note     string
}

// Search aggregates showtimes for movieTitle on date across the candidate
// venues. Always returns a response; the Error field is set only for
// request-fatal conditions (missing TMDb configuration), everything else
// degrades to partial results plus a note.
func (a *Aggregator) Search(ctx context.Context, movieTitle, date string, vs []model.Venue) *model.SearchResponse {
	if a.Movies == nil {
		return &model.SearchResponse{
			Schedules: []model.AggregatedSchedule{},
			Error:     "TMDB_API_KEY environment variable is not set",
		}
	}

	// Both are best-effort housekeeping, not request preconditions.
	if err := a.Resolver.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("venue mapping seed failed")
	}
	a.Cache.SweepExpired(ctx)

	movie, err := a.Movies.SearchMovie(ctx, movieTitle)
	if err != nil {
		// Metadata enrichment failing must not abort the aggregation.
		log.Warn().Err(err).Str("title", movieTitle).Msg("movie metadata lookup failed")
		movie = &model.MovieInfo{Title: movieTitle}
	}

	var parallel, browser []model.Venue
	for _, v := range vs {
		if s, ok := a.Scrapers.For(v.Provider); ok && s.Exclusive() {
			browser = append(browser, v)
			continue
		}
		parallel = append(parallel, v)
	}

	parallelOut := make([]outcome, len(parallel))
	var wg sync.WaitGroup
	for i, v := range parallel {
		wg.Add(1)
		go func(i int, v model.Venue) {
			defer wg.Done()
			parallelOut[i] = a.scrapeOne(ctx, movieTitle, date, v, a.fetchTimeout())
		}(i, v)
	}

	// Single worker per request, with browserMu extending the guarantee
	// process-wide: one venue's browser cycle fully completes before the
	// next begins, no matter which request it belongs to.
	browserOut := make([]outcome, len(browser))
	browserDone := make(chan struct{})
	go func() {
		defer close(browserDone)
		for i, v := range browser {
			a.browserMu.Lock()
			browserOut[i] = a.scrapeOne(ctx, movieTitle, date, v, a.browserTimeout())
			a.browserMu.Unlock()
		}
	}()

	wg.Wait()
	<-browserDone

	schedules := []model.AggregatedSchedule{}
	var notes []string
	for _, out := range append(parallelOut, browserOut...) {
		switch {
		case out.schedule != nil:
			schedules = append(schedules, *out.schedule)
		case out.note != "":
			notes = append(notes, out.note)
		}
	}

	resp := &model.SearchResponse{Movie: movie, Schedules: schedules}
	if len(notes) > 0 {
		resp.Note = notePrefix + "\n" + strings.Join(notes, "\n")
	}
	return resp
}

// scrapeOne takes one venue from resolution through cache and scraping to
// its outcome. Every failure mode is caught here and converted to a note.
func (a *Aggregator) scrapeOne(ctx context.Context, movieTitle, date string, v model.Venue, timeout time.Duration) outcome {
	scraper, ok := a.Scrapers.For(v.Provider)
	if !ok {
		return outcome{note: fmt.Sprintf("%s: no scraper for provider %q", v.Name, v.Provider)}
	}

	mapping, err := a.Resolver.Resolve(ctx, v.Provider, v.Name)
	if err != nil {
		if errors.Is(err, venues.ErrNotFound) {
			return outcome{note: fmt.Sprintf("%s: venue mapping not found", v.Name)}
		}
		return outcome{note: fmt.Sprintf("%s: venue lookup failed: %v", v.Name, err)}
	}

	key := cache.Key(v.Provider, mapping.SiteCode, date)
	if cached, hit := a.Cache.Get(ctx, key); hit && cached.Success {
		// Cached failures are not trusted: they only dampen retries until
		// the TTL lets a fresh scrape through.
		return outcome{schedule: &model.AggregatedSchedule{
			VenueID:   v.ID,
			VenueName: v.Name,
			Showtimes: filterByTitle(cached.Showtimes, movieTitle),
		}}
	}

	log.Info().Str("provider", v.Provider).Str("site_code", mapping.SiteCode).Str("date", date).Msg("scraping venue")
	scrapeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	result := scraper.Scrape(scrapeCtx, mapping.SiteCode, date, movieTitle)

	if err := a.Cache.Set(ctx, key, result); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	if !result.Success {
		reason := result.Error
		if reason == "" {
			reason = "scrape failed"
		}
		return outcome{note: fmt.Sprintf("%s: %s", v.Name, reason)}
	}
	return outcome{schedule: &model.AggregatedSchedule{
		VenueID:   v.ID,
		VenueName: v.Name,
		Showtimes: result.Showtimes,
	}}
}

// filterByTitle narrows cached showtimes to the requested movie. Fresh
// scrapes filter at parse time; cached entries may hold a different
// request's view of the same venue-day.
func filterByTitle(sts []model.Showtime, movieTitle string) []model.Showtime {
	if movieTitle == "" {
		return sts
	}
	out := make([]model.Showtime, 0, len(sts))
	for _, st := range sts {
		if title.Matches(st.MovieTitle, movieTitle) {
			out = append(out, st)
		}
	}
	return out
}

func (a *Aggregator) fetchTimeout() time.Duration {
	if a.FetchTimeout > 0 {
		return a.FetchTimeout
	}
	return defaultFetchTimeout
}

func (a *Aggregator) browserTimeout() time.Duration {
	if a.BrowserTimeout > 0 {
		return a.BrowserTimeout
	}
	return defaultBrowserTimeout
}
