// internal/httpserver/server.go
//
// HTTP server wiring for the kelime backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/alphabet", "/debug/words".
//   - Game endpoints (optional auth): mounted under /game.
//   - Account endpoints: mounted under /auth.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with the account when a valid token is
//     present; guests are identified by an anonymous cookie instead.
//   - Game sessions live only in memory (see internal/store).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/kelime/internal/alphabet"
	"github.com/robalobadob/kelime/internal/auth"
	"github.com/robalobadob/kelime/internal/game"
	"github.com/robalobadob/kelime/internal/store"
	"github.com/robalobadob/kelime/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Store    store.Store
	Lexicon  *words.Lexicon
	Auth     *auth.Service // nil disables /auth routes
	GameOpts []game.Option

	ClientOrigin string
	CookieName   string
	Production   bool
}

// Server bundles router and dependencies.
type Server struct {
	r     *chi.Mux
	store store.Store
	lex   *words.Lexicon
	alpha *alphabet.Alphabet
	auth  *auth.Service
	opts  []game.Option

	origin     string
	cookieName string
	production bool
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		store:      d.Store,
		lex:        d.Lexicon,
		alpha:      d.Lexicon.Alphabet(),
		auth:       d.Auth,
		opts:       d.GameOpts,
		origin:     d.ClientOrigin,
		cookieName: d.CookieName,
		production: d.Production,
	}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}
	if s.cookieName == "" {
		s.cookieName = "kelime_token"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"kelime","endpoints":["/health","/alphabet","POST /game/new","/game/{id}/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lex.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "accepted": g, "live": s.store.Len()})
	})
	s.r.Get("/alphabet", s.handleAlphabet)

	// Game endpoints: optional auth, guests can play.
	s.r.With(s.withOptionalAuth).Route("/game", s.mountGame)

	if s.auth != nil {
		s.r.Route("/auth", s.mountAuth)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

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

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one structured line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}

// ------------------------------- helpers -----------------------------------

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error":code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// handleAlphabet describes the accepted letters and keyboard layout.
func (s *Server) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	rows := [][]string{}
	for _, row := range s.alpha.Rows() {
		keys := make([]string, len(row))
		for i, k := range row {
			keys[i] = string(k)
		}
		rows = append(rows, keys)
	}
	letters := []string{}
	for _, l := range s.alpha.Letters() {
		letters = append(letters, string(l))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"letters":    letters,
		"rows":       rows,
		"wordLength": s.lex.WordLength(),
		"enter":      keyEnter,
		"backspace":  keyBackspace,
	})
}
