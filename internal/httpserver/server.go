// internal/httpserver/server.go
//
// HTTP wiring for the multiplayer room backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery,
//     timeouts, JSON content type, CORS).
//   - Diagnostics: "/", "/health", "/api/words".
//   - Room/game API mounted under /api (see routes_rooms.go).
//   - Leaderboard read endpoint.
//
// Domain errors from internal/game are mapped to JSON error responses
// here; the engine itself never sees HTTP.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-rooms/internal/config"
	"github.com/robalobadob/wordle-rooms/internal/game"
	"github.com/robalobadob/wordle-rooms/internal/store"
	"github.com/robalobadob/wordle-rooms/internal/token"
	"github.com/robalobadob/wordle-rooms/internal/words"
)

// Server bundles the router, the room registry, and its collaborators.
type Server struct {
	r        *chi.Mux
	registry *game.Registry
	tokens   *token.Issuer
	results  store.ResultStore
	cfg      *config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(reg *game.Registry, tokens *token.Issuer, results store.ResultStore, cfg *config.Config) *Server {
	s := &Server{r: chi.NewRouter(), registry: reg, tokens: tokens, results: results, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsOrigin(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-rooms","endpoints":["/health","POST /api/join","POST /api/guess","GET /api/state/{roomID}","POST /api/reveal","GET /api/leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(api chi.Router) {
		api.Post("/join", s.handleJoin)
		api.Post("/guess", s.handleGuess)
		api.Get("/state/{roomID}", s.handleState)
		api.Post("/reveal", s.handleReveal)

		api.Get("/words", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]int{"count": words.Count()})
		})
		api.Get("/leaderboard", s.handleLeaderboard)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsOrigin enables CORS for the configured client origin.
func corsOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ leaderboard --------------------------------

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	lb, err := s.results.TopLeaderboard(r.Context(), 10)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"leaderboard": lb})
}
