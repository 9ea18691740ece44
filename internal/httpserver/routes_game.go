// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game. The server is a thin collaborator: it
// translates requests into engine calls and answers with the full snapshot.
//
//   - POST /game/new          → start a game for the caller
//   - GET  /game/{id}         → current snapshot
//   - POST /game/{id}/letter  → append one letter   {"key":"a"}
//   - POST /game/{id}/delete  → delete last letter
//   - POST /game/{id}/submit  → submit the current guess
//   - POST /game/{id}/keys    → replay raw key events {"keys":["k","Backspace","Enter"]}
//   - POST /game/{id}/restart → start a new game in the same session
//
// Validation failures are not HTTP errors: the snapshot carries lastError
// and errorCode. Games are only visible to their owner.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/kelime/internal/game"
	"github.com/robalobadob/kelime/internal/store"
)

// Raw key names translated into engine operations.
const (
	keyEnter     = "Enter"
	keyBackspace = "Backspace"
)

// maxKeysPerRequest bounds /keys batches.
const maxKeysPerRequest = 64

func (s *Server) mountGame(r chi.Router) {
	r.Post("/new", s.handleNewGame)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", s.withSession(s.handleGet))
		r.Post("/letter", s.withSession(s.handleLetter))
		r.Post("/delete", s.withSession(s.handleDelete))
		r.Post("/submit", s.withSession(s.handleSubmit))
		r.Post("/keys", s.withSession(s.handleKeys))
		r.Post("/restart", s.withSession(s.handleRestart))
	})
}

// sessionHandler is a handler bound to the caller's game session.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *store.Session)

// withSession resolves {id} to a session owned by the caller.
// Sessions of other owners are reported as not found.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil || sess.Owner != s.owner(w, r) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		h(w, r, sess)
	}
}

// handleNewGame creates a game with a fresh target and stores its session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := game.New(s.lex, s.opts...)
	sess := store.NewSession(g, s.owner(w, r))
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Msg("game started")
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

type letterReq struct {
	Key string `json:"key"`
}

// handleLetter appends one letter. Keys outside the alphabet are ignored,
// like the on-screen keyboard would never send them.
func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var snap game.Snapshot
	sess.Do(func(g *game.Game) {
		if l, ok := s.alpha.Accept(req.Key); ok {
			g.Append(l)
		}
		snap = g.Snapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var snap game.Snapshot
	sess.Do(func(g *game.Game) {
		g.Delete()
		snap = g.Snapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

// handleSubmit submits the current guess. Only a finished game is an HTTP error.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var (
		snap game.Snapshot
		err  error
	)
	sess.Do(func(g *game.Game) {
		err = s.submit(g)
		snap = g.Snapshot()
	})
	if errors.Is(err, game.ErrGameOver) {
		writeError(w, http.StatusConflict, game.Code(err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type keysReq struct {
	Keys []string `json:"keys"`
}

// handleKeys replays raw key events in order, the way a keyboard listener
// would: Enter submits, Backspace deletes, letters are appended and
// anything else is dropped. Key names match case-insensitively. Events
// after the game ends are ignored.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Keys) > maxKeysPerRequest {
		writeError(w, http.StatusBadRequest, "too_many_keys")
		return
	}

	var snap game.Snapshot
	sess.Do(func(g *game.Game) {
		for _, k := range req.Keys {
			if g.Status().Terminal() {
				break
			}
			switch {
			case strings.EqualFold(k, keyEnter):
				_ = s.submit(g)
			case strings.EqualFold(k, keyBackspace):
				g.Delete()
			default:
				if l, ok := s.alpha.Accept(k); ok {
					g.Append(l)
				}
			}
		}
		snap = g.Snapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	var snap game.Snapshot
	sess.Do(func(g *game.Game) {
		g.StartNewGame()
		snap = g.Snapshot()
	})
	log.Info().Str("gameId", sess.ID()).Msg("game restarted")
	writeJSON(w, http.StatusOK, snap)
}

// submit runs Submit and logs finished games.
func (s *Server) submit(g *game.Game) error {
	_, err := g.Submit()
	if err == nil && g.Status().Terminal() {
		log.Info().
			Str("gameId", g.ID).
			Str("status", string(g.Status())).
			Int("attempts", len(g.Attempts())).
			Msg("game finished")
	}
	return err
}
