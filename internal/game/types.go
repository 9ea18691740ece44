// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterState: per-letter evaluation, ordered empty < absent < present < correct.
//   - Status: playing / won / lost.
//   - Attempt: a submitted word plus its evaluation.
//   - Lexicon: the word source the engine depends on.

package game

import "fmt"

// LetterState is the evaluation of a single letter. The numeric value is
// the information rank, so the best of two states is simply the larger.
type LetterState uint8

const (
	Empty LetterState = iota
	Absent
	Present
	Correct
)

var letterStateNames = [...]string{
	Empty:   "empty",
	Absent:  "absent",
	Present: "present",
	Correct: "correct",
}

// String returns the lower-case name of the state.
func (s LetterState) String() string {
	if int(s) < len(letterStateNames) {
		return letterStateNames[s]
	}
	return fmt.Sprintf("LetterState(%d)", uint8(s))
}

// MarshalText encodes the state by name.
func (s LetterState) MarshalText() ([]byte, error) {
	if int(s) >= len(letterStateNames) {
		return nil, fmt.Errorf("game: invalid letter state %d", uint8(s))
	}
	return []byte(letterStateNames[s]), nil
}

// UnmarshalText decodes a state name.
func (s *LetterState) UnmarshalText(b []byte) error {
	for i, name := range letterStateNames {
		if name == string(b) {
			*s = LetterState(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown letter state %q", b)
}

// Max returns the more informative of s and o.
func (s LetterState) Max(o LetterState) LetterState {
	if o > s {
		return o
	}
	return s
}

// Status is the coarse game state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further input is accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Attempt is one submitted guess with its per-position evaluation.
type Attempt struct {
	Word       string        `json:"word"`
	Evaluation []LetterState `json:"evaluation"`
}

func (a Attempt) clone() Attempt {
	return Attempt{Word: a.Word, Evaluation: append([]LetterState(nil), a.Evaluation...)}
}

// Lexicon supplies targets and validates guesses.
// *words.Lexicon implements it.
type Lexicon interface {
	PickRandomTarget() string
	IsAccepted(candidate string) bool
}

// runeFolder is implemented by lexicons that fold letters themselves, so
// typed letters match the lexicon's entries.
type runeFolder interface {
	FoldRune(r rune) rune
}
