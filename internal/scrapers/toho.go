package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/title"
)

const tohoAPIBase = "https://api2.tohotheater.jp/api/schedule/v1/schedule"

// Toho reads the schedule JSON API that TOHO Cinemas exposes; the only
// provider with a stable structured upstream. Site codes are theater codes
// ("076" = Shinjuku).
type Toho struct {
	client  *http.Client
	baseURL string
}

func NewToho(client *http.Client) *Toho {
	if client == nil {
		client = &http.Client{Timeout: 12 * time.Second}
	}
	return &Toho{client: client, baseURL: tohoAPIBase}
}

func (s *Toho) Provider() string { return model.ProviderToho }
func (s *Toho) Exclusive() bool  { return false }

// Nested response shape: data → theater list → movie list → screen list →
// showings.
type tohoResponse struct {
	Status string             `json:"status"`
	Data   []tohoScheduleData `json:"data"`
}

type tohoScheduleData struct {
	List []tohoTheater `json:"list"`
}

type tohoTheater struct {
	Name string      `json:"name"`
	Code string      `json:"code"`
	List []tohoMovie `json:"list"`
}

type tohoMovie struct {
	Name  string       `json:"name"`
	EName string       `json:"ename"`
	List  []tohoScreen `json:"list"`
}

type tohoScreen struct {
	Name       string        `json:"name"`
	IconNm2    string        `json:"iconNm2"`
	Facilities []string      `json:"facilities"`
	List       []tohoShowing `json:"list"`
}

type tohoShowing struct {
	ShowingStart   string `json:"showingStart"`
	ShowingEnd     string `json:"showingEnd"`
	UnsoldSeatInfo struct {
		// A=plenty B=half C=few D=sold out G=not for sale
		UnsoldSeatStatus string `json:"unsoldSeatStatus"`
	} `json:"unsoldSeatInfo"`
}

func (s *Toho) Scrape(ctx context.Context, siteCode, date, titleHint string) model.ScrapeResult {
	u, err := url.Parse(fmt.Sprintf("%s/%s/TNPI3050J02", s.baseURL, siteCode))
	if err != nil {
		return model.Failure(fmt.Sprintf("toho: bad site code %q", siteCode))
	}
	q := u.Query()
	q.Set("__type__", "json")
	q.Set("__useResultInfo__", "no")
	q.Set("vg_cd", siteCode)
	q.Set("show_day", compactDate(date))
	q.Set("term", "99")
	q.Set("isMember", "0")
	q.Set("enter_kbn", "0")
	q.Set("_dc", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.Failure(fmt.Sprintf("toho: build request: %v", err))
	}
	// The API refuses requests without the ticketing site's origin.
	req.Header.Set("Origin", "https://hlo.tohotheater.jp")
	req.Header.Set("Referer", fmt.Sprintf("https://hlo.tohotheater.jp/net/schedule/%s/TNPI2000J01.do", siteCode))

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Failure(fmt.Sprintf("toho: fetch failed: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Failure(fmt.Sprintf("toho: HTTP %d", resp.StatusCode))
	}

	var payload tohoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Failure(fmt.Sprintf("toho: decode response: %v", err))
	}
	if payload.Status != "0" {
		return model.Failure(fmt.Sprintf("toho: API error status=%s", payload.Status))
	}

	showtimes := parseTohoSchedule(payload, titleHint)
	if len(showtimes) == 0 {
		return model.Failure("toho: no schedule found for the requested day")
	}
	return model.ScrapeResult{Success: true, Showtimes: showtimes, ScrapedAt: time.Now().UTC()}
}

func parseTohoSchedule(payload tohoResponse, titleHint string) []model.Showtime {
	showtimes := []model.Showtime{}
	for _, data := range payload.Data {
		for _, theater := range data.List {
			for _, movie := range theater.List {
				if titleHint != "" && !title.Matches(movie.Name, titleHint) {
					continue
				}
				for _, screen := range movie.List {
					formats := make([]string, 0, 1+len(screen.Facilities))
					if screen.IconNm2 != "" {
						formats = append(formats, screen.IconNm2)
					}
					formats = append(formats, screen.Facilities...)
					for _, showing := range screen.List {
						status := showing.UnsoldSeatInfo.UnsoldSeatStatus
						available := status != "D" && status != "G"
						showtimes = append(showtimes, model.Showtime{
							MovieTitle: movie.Name,
							StartTime:  padTime(showing.ShowingStart),
							EndTime:    padTime(showing.ShowingEnd),
							Screen:     screen.Name,
							Format:     strings.Join(formats, " / "),
							Available:  boolPtr(available),
						})
					}
				}
			}
		}
	}
	return showtimes
}
