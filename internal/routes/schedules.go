package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tubone24/eiga-miyou/internal/deps"
	"github.com/tubone24/eiga-miyou/internal/model"
	pkghttpx "github.com/tubone24/eiga-miyou/pkg/httpx"
)

type searchRequest struct {
	Title  string        `json:"title"`
	Date   string        `json:"date"` // YYYY-MM-DD
	Venues []model.Venue `json:"venues"`
}

// SchedulesSearch registers POST /schedules/search. The response is always
// 200 once the request validates; per-venue failures surface in the body's
// note field, configuration problems in its error field.
func SchedulesSearch(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid request body", err))
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("title is required", nil))
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("date must be YYYY-MM-DD", err))
			return
		}
		if len(req.Venues) == 0 {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("at least one venue is required", nil))
			return
		}
		for _, v := range req.Venues {
			if v.ID == "" || v.Name == "" || v.Provider == "" {
				pkghttpx.WriteError(w, r, pkghttpx.BadRequest("each venue needs id, name and provider", nil))
				return
			}
		}

		resp := d.Aggregator.Search(r.Context(), req.Title, req.Date, req.Venues)
		pkghttpx.WriteJSON(w, http.StatusOK, resp)
	}
}
