// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Start games with a target drawn from the Lexicon.
//   - Edit the in-progress guess (append / delete one letter).
//   - Validate and apply submitted guesses (length, lexicon, repetition).
//   - Score guesses with the two-pass algorithm and aggregate keyboard knowledge.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The engine is synchronous and holds no locks; callers serialize
//     operations on one Game.
//   - Validation failures never abort: they are returned and kept as the
//     game's last error until the next successful change.
//   - Once won or lost, only StartNewGame changes the game.
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/kelime/internal/alphabet"
)

const (
	DefaultMaxAttempts = 6
	DefaultWordLength  = 5
)

// Game holds the state of a single game session.
type Game struct {
	ID        string    // Session identifier, stable across restarts.
	StartedAt time.Time // When the current target was drawn.

	lex         Lexicon
	fold        func(rune) rune
	messages    Messages
	wordLength  int
	maxAttempts int

	target    []rune
	guess     []rune
	attempts  []Attempt
	knowledge Knowledge
	status    Status
	lastError error
}

// Option configures a Game.
type Option func(*Game)

// WithWordLength sets the number of letters per word.
func WithWordLength(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.wordLength = n
		}
	}
}

// WithMaxAttempts sets how many guesses may be submitted.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithFold sets the letter case-folding rule. The default is the lexicon's
// own rule when it has one, else Turkish folding.
func WithFold(fold func(rune) rune) Option {
	return func(g *Game) {
		if fold != nil {
			g.fold = fold
		}
	}
}

// WithMessages sets the user-facing validation messages.
func WithMessages(m Messages) Option {
	return func(g *Game) { g.messages = m }
}

// New constructs a game and starts it with a target from lex.
func New(lex Lexicon, opts ...Option) *Game {
	g := &Game{
		ID:          uuid.NewString(),
		lex:         lex,
		fold:        alphabet.Default().FoldRune,
		messages:    TurkishMessages,
		wordLength:  DefaultWordLength,
		maxAttempts: DefaultMaxAttempts,
	}
	if f, ok := lex.(runeFolder); ok {
		g.fold = f.FoldRune
	}
	for _, opt := range opts {
		opt(g)
	}
	g.StartNewGame()
	return g
}

// StartNewGame draws a new target and clears all progress.
// It is allowed in any status.
func (g *Game) StartNewGame() {
	g.target = g.foldWord(g.lex.PickRandomTarget())
	g.guess = make([]rune, 0, g.wordLength)
	g.attempts = nil
	g.knowledge = Knowledge{}
	g.status = StatusPlaying
	g.lastError = nil
	g.StartedAt = time.Now().UTC()
}

// Append adds one letter to the in-progress guess.
// It reports whether the guess changed; a full guess or a finished game
// leaves everything untouched.
func (g *Game) Append(r rune) bool {
	if g.status != StatusPlaying || len(g.guess) >= g.wordLength {
		return false
	}
	g.guess = append(g.guess, g.fold(r))
	g.lastError = nil
	return true
}

// Delete removes the last letter of the in-progress guess.
// It reports whether the guess changed.
func (g *Game) Delete() bool {
	if g.status != StatusPlaying || len(g.guess) == 0 {
		return false
	}
	g.guess = g.guess[:len(g.guess)-1]
	g.lastError = nil
	return true
}

// Submit validates the in-progress guess and, if it passes, records it as
// an attempt and updates the status.
//
// Validation order (first failure wins):
//   - exactly wordLength letters  → ErrWrongLength
//   - accepted by the Lexicon     → ErrNotInLexicon
//   - not submitted before        → ErrAlreadyGuessed
//
// A failure is stored as the last error and nothing else changes.
// Submitting to a finished game returns ErrGameOver and changes nothing.
func (g *Game) Submit() (Attempt, error) {
	if g.status != StatusPlaying {
		return Attempt{}, ErrGameOver
	}

	word := string(g.guess)
	switch {
	case len(g.guess) != g.wordLength:
		return Attempt{}, g.fail(ErrWrongLength)
	case !g.lex.IsAccepted(word):
		return Attempt{}, g.fail(ErrNotInLexicon)
	case g.guessedBefore(word):
		return Attempt{}, g.fail(ErrAlreadyGuessed)
	}

	a := Attempt{Word: word, Evaluation: Score(g.guess, g.target)}
	g.attempts = append(g.attempts, a)
	g.knowledge.Merge(g.guess, a.Evaluation)
	g.guess = make([]rune, 0, g.wordLength)
	g.lastError = nil

	// A correct final guess is a win, not a loss.
	if word == string(g.target) {
		g.status = StatusWon
	} else if len(g.attempts) >= g.maxAttempts {
		g.status = StatusLost
	}
	return a.clone(), nil
}

func (g *Game) fail(err error) error {
	g.lastError = err
	return err
}

// guessedBefore compares case-insensitively; stored words are already folded.
func (g *Game) guessedBefore(word string) bool {
	for _, a := range g.attempts {
		if a.Word == word {
			return true
		}
	}
	return false
}

func (g *Game) foldWord(s string) []rune {
	rs := []rune(strings.TrimSpace(s))
	for i, r := range rs {
		rs[i] = g.fold(r)
	}
	return rs
}

// Status returns the current status.
func (g *Game) Status() Status { return g.status }

// Guess returns the in-progress guess.
func (g *Game) Guess() string { return string(g.guess) }

// LastError returns the most recent validation failure, or nil.
func (g *Game) LastError() error { return g.lastError }

// Attempts returns a copy of the submitted attempts in order.
func (g *Game) Attempts() []Attempt {
	out := make([]Attempt, len(g.attempts))
	for i, a := range g.attempts {
		out[i] = a.clone()
	}
	return out
}

// Knowledge returns the best known state for r.
func (g *Game) Knowledge(r rune) LetterState { return g.knowledge.Get(r) }

// WordLength returns the configured word length.
func (g *Game) WordLength() int { return g.wordLength }

// MaxAttempts returns the configured attempt limit.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Target returns the hidden word once the game is over, and "" before.
func (g *Game) Target() string {
	if !g.status.Terminal() {
		return ""
	}
	return string(g.target)
}
