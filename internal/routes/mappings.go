package routes

import (
	"encoding/json"
	"net/http"

	"github.com/tubone24/eiga-miyou/internal/deps"
	"github.com/tubone24/eiga-miyou/internal/model"
	pkghttpx "github.com/tubone24/eiga-miyou/pkg/httpx"
)

// MappingsList registers GET /venues/mappings.
func MappingsList(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := r.URL.Query().Get("provider")
		if provider == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("provider query parameter is required", nil))
			return
		}
		items, err := d.Resolver.List(r.Context(), provider)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to list venue mappings", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"items": items,
			"count": len(items),
		})
	}
}

// MappingsUpsert registers PUT /venues/mappings: live corrections to the
// seeded reference table, keyed by (provider, site code).
func MappingsUpsert(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m model.VenueSiteMapping
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid request body", err))
			return
		}
		if m.Provider == "" || m.VenueName == "" || m.SiteCode == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("provider, venue_name and site_code are required", nil))
			return
		}
		if err := d.Resolver.Upsert(r.Context(), m); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to upsert venue mapping", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, m)
	}
}
