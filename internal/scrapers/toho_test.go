package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const tohoFixture = `{
  "status": "0",
  "data": [{
    "list": [{
      "name": "TOHOシネマズ新宿", "code": "076",
      "list": [
        {
          "name": "Example Film", "ename": "Example Film",
          "list": [{
            "name": "スクリーン7", "iconNm2": "IMAX", "facilities": ["レーザー"],
            "list": [
              {"showingStart": "9:00", "showingEnd": "11:10", "unsoldSeatInfo": {"unsoldSeatStatus": "A"}},
              {"showingStart": "13:30", "showingEnd": "15:40", "unsoldSeatInfo": {"unsoldSeatStatus": "D"}},
              {"showingStart": "18:00", "showingEnd": "20:10", "unsoldSeatInfo": {"unsoldSeatStatus": "G"}}
            ]
          }]
        },
        {
          "name": "Another Movie", "ename": "Another Movie",
          "list": [{
            "name": "スクリーン2", "facilities": [],
            "list": [{"showingStart": "10:15", "showingEnd": "12:00", "unsoldSeatInfo": {"unsoldSeatStatus": "B"}}]
          }]
        }
      ]
    }]
  }]
}`

func tohoTestServer(t *testing.T, body string, status int) (*Toho, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("show_day"); got != "20250601" {
			t.Errorf("unexpected show_day: %s", got)
		}
		if origin := r.Header.Get("Origin"); origin == "" {
			t.Error("missing Origin header")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	s := NewToho(server.Client())
	s.baseURL = server.URL
	return s, server
}

func TestTohoScrape(t *testing.T) {
	s, server := tohoTestServer(t, tohoFixture, http.StatusOK)
	defer server.Close()

	res := s.Scrape(context.Background(), "076", "2025-06-01", "")
	if !res.Success {
		t.Fatalf("expected success: %s", res.Error)
	}
	if len(res.Showtimes) != 4 {
		t.Fatalf("expected 4 showtimes, got %d", len(res.Showtimes))
	}

	first := res.Showtimes[0]
	if first.StartTime != "09:00" || first.EndTime != "11:10" {
		t.Errorf("times not zero-padded: %s-%s", first.StartTime, first.EndTime)
	}
	if first.Format != "IMAX / レーザー" {
		t.Errorf("unexpected format: %s", first.Format)
	}
	if first.Available == nil || !*first.Available {
		t.Error("status A should be available")
	}
	if soldOut := res.Showtimes[1]; soldOut.Available == nil || *soldOut.Available {
		t.Error("status D should be unavailable")
	}
	if notForSale := res.Showtimes[2]; notForSale.Available == nil || *notForSale.Available {
		t.Error("status G should be unavailable")
	}
}

func TestTohoScrapeTitleFilter(t *testing.T) {
	s, server := tohoTestServer(t, tohoFixture, http.StatusOK)
	defer server.Close()

	res := s.Scrape(context.Background(), "076", "2025-06-01", "ＥＸＡＭＰＬＥ Film")
	if !res.Success {
		t.Fatalf("expected success: %s", res.Error)
	}
	for _, st := range res.Showtimes {
		if st.MovieTitle != "Example Film" {
			t.Errorf("filter let through %q", st.MovieTitle)
		}
	}
	if len(res.Showtimes) != 3 {
		t.Fatalf("expected 3 filtered showtimes, got %d", len(res.Showtimes))
	}
}

func TestTohoScrapeAPIErrorStatus(t *testing.T) {
	s, server := tohoTestServer(t, `{"status":"9","data":[]}`, http.StatusOK)
	defer server.Close()

	res := s.Scrape(context.Background(), "076", "2025-06-01", "")
	if res.Success {
		t.Fatal("expected failure for API error status")
	}
	if res.Error == "" {
		t.Fatal("expected error description")
	}
}

func TestTohoScrapeHTTPError(t *testing.T) {
	s, server := tohoTestServer(t, "oops", http.StatusBadGateway)
	defer server.Close()

	res := s.Scrape(context.Background(), "076", "2025-06-01", "")
	if res.Success {
		t.Fatal("expected failure for HTTP 502")
	}
	if len(res.Showtimes) != 0 {
		t.Fatal("failed scrape must carry zero showtimes")
	}
}

func TestTohoScrapeMalformedJSON(t *testing.T) {
	s, server := tohoTestServer(t, `{"status": "0", "data": [{`, http.StatusOK)
	defer server.Close()

	res := s.Scrape(context.Background(), "076", "2025-06-01", "")
	if res.Success {
		t.Fatal("expected soft failure on malformed payload")
	}
}
