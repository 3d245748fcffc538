package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/server"
	"github.com/tubone24/eiga-miyou/internal/venues"
)

type stubAggregator struct {
	lastTitle string
	lastDate  string
}

func (s *stubAggregator) Search(_ context.Context, movieTitle, date string, vs []model.Venue) *model.SearchResponse {
	s.lastTitle = movieTitle
	s.lastDate = date
	return &model.SearchResponse{
		Movie: &model.MovieInfo{Title: movieTitle},
		Schedules: []model.AggregatedSchedule{
			{VenueID: vs[0].ID, VenueName: vs[0].Name, Showtimes: []model.Showtime{{MovieTitle: movieTitle, StartTime: "10:00"}}},
		},
	}
}

func newTestRouter() (http.Handler, *stubAggregator, *venues.Memory) {
	agg := &stubAggregator{}
	r := venues.NewMemory()
	return server.New(agg, r).Router(), agg, r
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}
}

func TestSchedulesSearch(t *testing.T) {
	router, agg, _ := newTestRouter()
	body := `{"title":"Example Film","date":"2025-06-01","venues":[{"id":"A","name":"Venue A","provider":"toho"}]}`
	req := httptest.NewRequest(http.MethodPost, "/schedules/search", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if agg.lastTitle != "Example Film" || agg.lastDate != "2025-06-01" {
		t.Fatalf("aggregator got %q %q", agg.lastTitle, agg.lastDate)
	}
	var resp model.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Schedules) != 1 || resp.Schedules[0].VenueID != "A" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSchedulesSearchValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing title", `{"date":"2025-06-01","venues":[{"id":"A","name":"V","provider":"toho"}]}`},
		{"bad date", `{"title":"x","date":"06/01/2025","venues":[{"id":"A","name":"V","provider":"toho"}]}`},
		{"no venues", `{"title":"x","date":"2025-06-01","venues":[]}`},
		{"venue missing provider", `{"title":"x","date":"2025-06-01","venues":[{"id":"A","name":"V"}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router, _, _ := newTestRouter()
			req := httptest.NewRequest(http.MethodPost, "/schedules/search", strings.NewReader(c.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestMappingsRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter()

	put := httptest.NewRequest(http.MethodPut, "/venues/mappings",
		strings.NewReader(`{"provider":"toho","venue_name":"TOHOシネマズ新宿","site_code":"076"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, put)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/venues/mappings?provider=toho", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, get)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var resp struct {
		Items []model.VenueSiteMapping `json:"items"`
		Count int                      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Items[0].SiteCode != "076" {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestMappingsListRequiresProvider(t *testing.T) {
	router, _, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/venues/mappings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCorrelationIDHeader(t *testing.T) {
	router, _, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("X-Correlation-Id") == "" {
		t.Fatal("expected a generated correlation id")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-Id", "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get("X-Correlation-Id"); got != "fixed-id" {
		t.Fatalf("expected echoed correlation id, got %s", got)
	}
}
