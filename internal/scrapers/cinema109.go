package scrapers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/title"
)

const (
	cinema109Base = "https://109cinemas.net"
	browserUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	// Upstream marks a movie it cannot name; kept verbatim so callers see
	// the same label the site shows.
	unknownTitle = "不明"
)

var (
	bracketFormatRe   = regexp.MustCompile(`\[([^\]]+)\]`)
	cinema109FormatRe = regexp.MustCompile(`(?i)(IMAXレーザー|IMAX|4DX|2D|3D|ドルビーアトモス|Dolby Atmos|★7\.1ch★)`)
)

// Cinema109 scrapes the server-rendered schedule pages of 109 Cinemas.
// Site codes are "slug:theaterCode" ("futakotamagawa:T1"); the theater code
// may be empty.
type Cinema109 struct {
	client  *http.Client
	baseURL string
}

func NewCinema109(client *http.Client) *Cinema109 {
	if client == nil {
		client = &http.Client{Timeout: 12 * time.Second}
	}
	return &Cinema109{client: client, baseURL: cinema109Base}
}

func (s *Cinema109) Provider() string { return model.ProviderCinema109 }
func (s *Cinema109) Exclusive() bool  { return false }

func (s *Cinema109) Scrape(ctx context.Context, siteCode, date, titleHint string) model.ScrapeResult {
	slug, theaterCode, _ := strings.Cut(siteCode, ":")
	pageURL := fmt.Sprintf("%s/%s/schedules/%s.html", s.baseURL, slug, compactDate(date))
	if theaterCode != "" {
		pageURL += "?theater_code=" + theaterCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return model.Failure(fmt.Sprintf("cinema109: build request: %v", err))
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Failure(fmt.Sprintf("cinema109: fetch failed: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Failure(fmt.Sprintf("cinema109: HTTP %d", resp.StatusCode))
	}

	showtimes, err := parseCinema109HTML(resp.Body, titleHint)
	if err != nil {
		return model.Failure(fmt.Sprintf("cinema109: parse failed: %v", err))
	}
	if len(showtimes) == 0 {
		return model.Failure("cinema109: no schedule found for the requested day")
	}
	return model.ScrapeResult{Success: true, Showtimes: showtimes, ScrapedAt: time.Now().UTC()}
}

// parseCinema109HTML extracts showtimes from a schedule page. Primary pass:
// group by movie-title anchors and read sibling screen/showing nodes from
// the enclosing block. When markup drift breaks that grouping and yields
// zero results, a flatter scan over the showing list items runs instead.
func parseCinema109HTML(r io.Reader, titleHint string) ([]model.Showtime, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	showtimes := []model.Showtime{}
	doc.Find(`a[href*="/movies/"]`).Each(func(_ int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		if text == "" || strings.Contains(text, "作品詳細") {
			return
		}
		format := ""
		if m := bracketFormatRe.FindStringSubmatch(text); m != nil {
			format = m[1]
		}
		cleanTitle := strings.TrimSpace(bracketFormatRe.ReplaceAllString(text, ""))
		if titleHint != "" && !title.Matches(cleanTitle, titleHint) {
			return
		}

		block := link.Closest("div, section, table, tr")
		screen := ""
		if seatLink := block.Find(`a[href*="/seat/theater-"]`).First(); seatLink.Length() > 0 {
			screen = strings.TrimSpace(seatLink.Text())
			if format == "" {
				if li := seatLink.Closest("li"); li.Length() > 0 {
					if m := cinema109FormatRe.FindStringSubmatch(li.Text()); m != nil {
						format = m[1]
					}
				}
			}
		}

		block.Find("li.check_date").Each(func(_ int, item *goquery.Selection) {
			if st, ok := cinema109Showing(item, cleanTitle, screen, format); ok {
				showtimes = append(showtimes, st)
			}
		})
	})

	if len(showtimes) > 0 {
		return showtimes, nil
	}

	// Fallback: ignore movie grouping, walk every showing item directly.
	doc.Find("li.check_date").Each(func(_ int, item *goquery.Selection) {
		movieTitle := unknownTitle
		block := item.Closest("div, section, table, tr")
		if link := block.Find(`a[href*="/movies/"]`).First(); link.Length() > 0 {
			movieTitle = strings.TrimSpace(bracketFormatRe.ReplaceAllString(link.Text(), ""))
		}
		if titleHint != "" && movieTitle != unknownTitle && !title.Matches(movieTitle, titleHint) {
			return
		}
		if st, ok := cinema109Showing(item, movieTitle, "", ""); ok {
			showtimes = append(showtimes, st)
		}
	})
	return showtimes, nil
}

func cinema109Showing(item *goquery.Selection, movieTitle, screen, format string) (model.Showtime, bool) {
	startEl := item.Find("time.start")
	if startEl.Length() == 0 {
		return model.Showtime{}, false
	}
	st := model.Showtime{
		MovieTitle: movieTitle,
		StartTime:  padTime(strings.TrimSpace(startEl.First().Text())),
		Screen:     screen,
		Format:     format,
	}
	if endEl := item.Find("time.end"); endEl.Length() > 0 {
		st.EndTime = padTime(strings.TrimSpace(endEl.First().Text()))
	}
	hasAvailable := item.Find("div.available").Length() > 0
	hasClosed := item.Find("div.close").Length() > 0
	st.Available = boolPtr(hasAvailable || !hasClosed)
	if href, ok := item.Find("a").First().Attr("href"); ok {
		st.TicketURL = href
	}
	return st, true
}
