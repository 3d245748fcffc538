package deps

import (
	"context"
	"time"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/venues"
)

// Searcher is what the schedule-search handler needs from the aggregation
// engine. aggregate.Aggregator satisfies it.
type Searcher interface {
	Search(ctx context.Context, movieTitle, date string, vs []model.Venue) *model.SearchResponse
}

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Aggregator Searcher
	Resolver   venues.Resolver
	Name       string
	StartedAt  time.Time
}
