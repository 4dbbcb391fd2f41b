package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/pkg/models"
)

// Server hosts the websocket hub plus small JSON endpoints for health checks
// and catalog discovery.
type Server struct {
	hub *Hub
	srv *http.Server
	log *log.Logger
}

type catalogEntry struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// NewServer wires the hub and registry into an HTTP server listening on addr.
// Routes: /ws for the frame stream, /healthz and /catalog for JSON reads.
func NewServer(addr string, hub *Hub, registry events.Registry, logger *log.Logger) *Server {
	entries := catalogEntries(registry)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"status":  "ok",
			"clients": hub.ClientCount(),
		})
	})
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, entries)
	})

	return &Server{
		hub: hub,
		srv: &http.Server{Addr: addr, Handler: mux},
		log: logger,
	}
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Printf("listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown disconnects all stream clients and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.srv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// catalogEntries flattens the registry into name-sorted entries with each
// event's types in canonical order.
func catalogEntries(registry events.Registry) []catalogEntry {
	entries := make([]catalogEntry, 0, len(registry))
	for id, specs := range registry {
		types := make([]string, 0, len(specs))
		for _, typ := range models.AllEventTypes {
			if _, ok := specs[typ]; ok {
				types = append(types, string(typ))
			}
		}
		entries = append(entries, catalogEntry{Name: id.String(), Types: types})
	}
	slices.SortFunc(entries, func(a, b catalogEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}
