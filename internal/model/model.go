package model

import "time"

// Provider identifiers. Each one maps to a distinct scraping strategy.
const (
	ProviderToho      = "toho"
	ProviderCinema109 = "cinema109"
	ProviderAeon      = "aeon"
)

// Showtime is a single screening as reported by an upstream source.
// Immutable once produced; filtering copies, never mutates.
type Showtime struct {
	MovieTitle string `json:"movie_title"`
	StartTime  string `json:"start_time"` // "HH:MM"
	EndTime    string `json:"end_time,omitempty"`
	Screen     string `json:"screen,omitempty"`
	Format     string `json:"format,omitempty"` // "IMAX", "4DX", ...
	TicketURL  string `json:"ticket_url,omitempty"`
	// Available is nil when the source reports nothing; absent means assume available.
	Available *bool `json:"available,omitempty"`
}

// ScrapeResult is the unit a scraper returns and the unit the cache stores.
// Success means the source was reachable and parseable, not that showtimes
// were found: an empty Showtimes slice with Success=true is a valid
// "nothing playing" state.
type ScrapeResult struct {
	Success   bool       `json:"success"`
	Showtimes []Showtime `json:"showtimes"`
	ScrapedAt time.Time  `json:"scraped_at"`
	Error     string     `json:"error,omitempty"`
}

// Failure builds a failed result stamped now.
func Failure(reason string) ScrapeResult {
	return ScrapeResult{Success: false, Showtimes: []Showtime{}, ScrapedAt: time.Now().UTC(), Error: reason}
}

// VenueSiteMapping ties a human-readable venue name to a provider-internal
// site code. Seeded once at startup, upsertable for live corrections.
type VenueSiteMapping struct {
	Provider  string `json:"provider"`
	VenueName string `json:"venue_name"`
	SiteCode  string `json:"site_code"`
	SiteURL   string `json:"site_url,omitempty"`
}

// Venue is a caller-supplied candidate venue for one search request.
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url,omitempty"`
}

// AggregatedSchedule is the per-venue slice of the final response.
type AggregatedSchedule struct {
	VenueID   string     `json:"venue_id"`
	VenueName string     `json:"venue_name"`
	Showtimes []Showtime `json:"showtimes"`
}

// Genre is a TMDb genre tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieInfo is the metadata enrichment attached to a search response.
type MovieInfo struct {
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path,omitempty"`
	Runtime       int     `json:"runtime,omitempty"` // minutes
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	Genres        []Genre `json:"genres,omitempty"`
}

// SearchResponse is the aggregate call's result. Error is set only for
// request-fatal conditions (missing configuration, no movie match); partial
// per-venue failures land in Note instead.
type SearchResponse struct {
	Movie     *MovieInfo           `json:"movie"`
	Schedules []AggregatedSchedule `json:"schedules"`
	Note      string               `json:"note,omitempty"`
	Error     string               `json:"error,omitempty"`
}
