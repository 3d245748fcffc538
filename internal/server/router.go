package server

import (
	"net/http"
	"time"

	"github.com/tubone24/eiga-miyou/internal/deps"
	"github.com/tubone24/eiga-miyou/internal/routes"
	"github.com/tubone24/eiga-miyou/internal/venues"
)

type Server struct {
	deps.ServerDeps
}

func New(agg deps.Searcher, resolver venues.Resolver) *Server {
	return &Server{ServerDeps: deps.ServerDeps{
		Aggregator: agg,
		Resolver:   resolver,
		Name:       "eiga-miyou",
		StartedAt:  time.Now(),
	}}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.HandleFunc("POST /schedules/search", routes.SchedulesSearch(sd))
	mux.HandleFunc("GET /venues/mappings", routes.MappingsList(sd))
	mux.HandleFunc("PUT /venues/mappings", routes.MappingsUpsert(sd))

	return withCorrelationID(withLogging(mux))
}
