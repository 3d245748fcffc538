package scrapers

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/title"
)

const aeonTheaterBase = "https://theater.aeoncinema.com/theaters"

var (
	aeonSiteCodeRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// Schedules render as "10:00 ～ 12:15" with several dash variants.
	aeonTimeRangeRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[～〜~ー-]\s*(\d{1,2}:\d{2})`)
	aeonScreenRe    = regexp.MustCompile(`(?i)(?:シアター|スクリーン|SCREEN)\s*\d+`)
	aeonFormatRe    = regexp.MustCompile(`(?i)(IMAX|4DX|2D|3D|ドルビーアトモス|Dolby Atmos|字幕|吹替)`)
)

// Site chrome that must not be mistaken for a movie title.
var aeonExcludedKeywords = []string{
	"イオンシネマ", "公開中", "席種選択", "お知らせ", "ログイン", "メニュー",
	"チケット", "割引", "料金", "アクセス", "上映中", "近日公開", "会員",
	"ポイント", "購入", "予約",
}

// Aeon scrapes Aeon Cinema's schedule SPA. The page is client-rendered, so
// a plain fetch returns no data; a browser session renders it and the
// accessibility snapshot is parsed with line-oriented heuristics. The most
// failure-prone of the three providers, which is why the orchestrator
// serializes this lane.
type Aeon struct {
	browser BrowserController
	baseURL string
	settle  time.Duration // wait after open for client-side rendering
	now     func() time.Time
}

func NewAeon(browser BrowserController, settle time.Duration) *Aeon {
	if settle <= 0 {
		settle = 5 * time.Second
	}
	return &Aeon{browser: browser, baseURL: aeonTheaterBase, settle: settle, now: time.Now}
}

func (s *Aeon) Provider() string { return model.ProviderAeon }
func (s *Aeon) Exclusive() bool  { return true }

func (s *Aeon) Scrape(ctx context.Context, siteCode, date, titleHint string) model.ScrapeResult {
	if !aeonSiteCodeRe.MatchString(siteCode) {
		return model.Failure(fmt.Sprintf("aeon: invalid site code %q", siteCode))
	}

	pageURL := fmt.Sprintf("%s/%s", s.baseURL, siteCode)
	if d := compactDate(date); d != s.now().Format("20060102") {
		pageURL += "?date=" + d
	}

	if err := s.browser.Open(ctx, pageURL); err != nil {
		return model.Failure(fmt.Sprintf("aeon: browser open failed: %v", err))
	}
	if err := sleepCtx(ctx, s.settle); err != nil {
		return model.Failure(fmt.Sprintf("aeon: cancelled while waiting for render: %v", err))
	}
	snapshot, err := s.browser.Snapshot(ctx)
	// Close before inspecting the snapshot. Close failures are tolerated;
	// the next open recycles the session.
	if closeErr := s.browser.Close(context.WithoutCancel(ctx)); closeErr != nil {
		log.Warn().Err(closeErr).Msg("aeon browser close failed")
	}
	if err != nil {
		return model.Failure(fmt.Sprintf("aeon: browser snapshot failed: %v", err))
	}

	showtimes := parseAeonSnapshot(snapshot, titleHint)
	if len(showtimes) == 0 {
		return model.Failure("aeon: could not parse schedule data from the page")
	}
	return model.ScrapeResult{Success: true, Showtimes: showtimes, ScrapedAt: time.Now().UTC()}
}

// parseAeonSnapshot reconstructs showtimes from the rendered page's textual
// snapshot. State machine over lines: a screen-pattern line sets the
// current screen/format, a time-range line emits a showtime under the
// current movie, and any other line that survives the exclusion list
// becomes the current movie title.
func parseAeonSnapshot(text, titleHint string) []model.Showtime {
	showtimes := []model.Showtime{}
	var currentMovie, currentScreen, currentFormat string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := aeonScreenRe.FindString(trimmed); m != "" {
			currentScreen = m
			if f := aeonFormatRe.FindString(trimmed); f != "" {
				currentFormat = f
			}
			continue
		}

		if m := aeonTimeRangeRe.FindStringSubmatch(trimmed); m != nil {
			available := strings.Contains(trimmed, "○") ||
				strings.Contains(trimmed, "購入") ||
				!strings.Contains(trimmed, "×")
			if titleHint == "" || currentMovie == "" || title.Matches(currentMovie, titleHint) {
				movieTitle := currentMovie
				if movieTitle == "" {
					movieTitle = unknownTitle
				}
				showtimes = append(showtimes, model.Showtime{
					MovieTitle: movieTitle,
					StartTime:  padTime(m[1]),
					EndTime:    padTime(m[2]),
					Screen:     currentScreen,
					Format:     currentFormat,
					Available:  boolPtr(available),
				})
			}
			continue
		}

		if looksLikeMovieTitle(trimmed) {
			currentMovie = trimmed
			currentScreen = ""
			currentFormat = ""
		}
	}
	return showtimes
}

func looksLikeMovieTitle(line string) bool {
	if len([]rune(line)) <= 2 || strings.HasPrefix(line, "http") {
		return false
	}
	if r := []rune(line)[0]; r >= '0' && r <= '9' {
		return false
	}
	// Exact keyword or keyword followed by a space only; a bare prefix
	// test would drop real titles that happen to start with one.
	for _, kw := range aeonExcludedKeywords {
		if line == kw || strings.HasPrefix(line, kw+" ") {
			return false
		}
	}
	return true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
