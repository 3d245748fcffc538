package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search/movie":
			if got := r.URL.Query().Get("query"); got != "Example Film" {
				t.Errorf("unexpected query: %s", got)
			}
			_, _ = w.Write([]byte(`{"results":[{"id":42,"title":"Example Film","original_title":"Example Film","overview":"o","poster_path":"/p.jpg","release_date":"2025-05-01","vote_average":7.5}]}`))
		case strings.HasPrefix(r.URL.Path, "/movie/"):
			_, _ = w.Write([]byte(`{"id":42,"title":"Example Film","original_title":"Example Film","overview":"detailed","release_date":"2025-05-01","vote_average":7.5,"runtime":128,"genres":[{"id":28,"name":"Action"}]}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New("test-key", "ja-JP")
	c.BaseURL = server.URL
	c.Client = server.Client()

	info, err := c.SearchMovie(context.Background(), "Example Film")
	if err != nil {
		t.Fatal(err)
	}
	if info.Runtime != 128 || len(info.Genres) != 1 {
		t.Fatalf("detail fields not applied: %+v", info)
	}
	if info.Overview != "detailed" {
		t.Fatalf("detail overview not applied: %s", info.Overview)
	}
}

func TestSearchMovieDetailFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search/movie" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[{"id":42,"title":"Example Film","overview":"search-level","release_date":"2025-05-01"}]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New("test-key", "")
	c.BaseURL = server.URL
	c.Client = server.Client()

	info, err := c.SearchMovie(context.Background(), "Example Film")
	if err != nil {
		t.Fatalf("detail failure must not fail the lookup: %v", err)
	}
	if info.Overview != "search-level" || info.Runtime != 0 {
		t.Fatalf("expected minimal record from the search hit, got %+v", info)
	}
}

func TestSearchMovieNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	c := New("test-key", "")
	c.BaseURL = server.URL
	c.Client = server.Client()

	if _, err := c.SearchMovie(context.Background(), "no such film"); err == nil {
		t.Fatal("expected error for zero search hits")
	}
}

func TestSearchMovieMissingKey(t *testing.T) {
	c := New("", "")
	if _, err := c.SearchMovie(context.Background(), "anything"); err == nil {
		t.Fatal("expected error without API key")
	}
}
