// Package tmdb is a minimal client for the TMDb endpoints the schedule
// search needs: title search plus a detail fetch for runtime and genres.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tubone24/eiga-miyou/internal/model"
)

type Client struct {
	APIKey   string
	BaseURL  string
	Language string
	Client   *http.Client
}

func New(apiKey, language string) *Client {
	if language == "" {
		language = "ja-JP"
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  "https://api.themoviedb.org/3",
		Language: language,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResp struct {
	Results []searchItem `json:"results"`
}

type searchItem struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
}

type detailResp struct {
	searchItem
	Runtime int           `json:"runtime"`
	Genres  []model.Genre `json:"genres"`
}

// SearchMovie returns metadata for the best title match. The detail fetch
// enriches the top search hit with runtime and genres; when it fails, the
// search hit alone is returned instead of an error. A zero-hit search is
// the only error condition besides transport failure.
func (c *Client) SearchMovie(ctx context.Context, query string) (*model.MovieInfo, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("missing TMDb API key")
	}

	var sr searchResp
	if err := c.getJSON(ctx, "/search/movie", url.Values{"query": {query}}, &sr); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	if len(sr.Results) == 0 {
		return nil, fmt.Errorf("no movie found for title: %s", query)
	}
	top := sr.Results[0]

	info := &model.MovieInfo{
		Title:         top.Title,
		OriginalTitle: top.OriginalTitle,
		Overview:      top.Overview,
		PosterPath:    top.PosterPath,
		ReleaseDate:   top.ReleaseDate,
		VoteAverage:   top.VoteAverage,
	}

	var dr detailResp
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", top.ID), nil, &dr); err == nil {
		info.Title = dr.Title
		info.OriginalTitle = dr.OriginalTitle
		info.Overview = dr.Overview
		info.PosterPath = dr.PosterPath
		info.ReleaseDate = dr.ReleaseDate
		info.VoteAverage = dr.VoteAverage
		info.Runtime = dr.Runtime
		info.Genres = dr.Genres
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.APIKey)
	q.Set("language", c.Language)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
