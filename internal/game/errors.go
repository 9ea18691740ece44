package game

import (
	"errors"
	"fmt"
)

// Validation failures reported by Submit. They are recoverable: the game
// keeps its state and records the failure as its last error.
var (
	ErrWrongLength    = errors.New("wrong length")
	ErrNotInLexicon   = errors.New("not a valid word")
	ErrAlreadyGuessed = errors.New("already guessed")
)

// ErrGameOver is returned by Submit once the game is won or lost.
var ErrGameOver = errors.New("game finished")

// Code returns a stable identifier for err, or "" for unknown errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrWrongLength):
		return "wrong_length"
	case errors.Is(err, ErrNotInLexicon):
		return "not_in_lexicon"
	case errors.Is(err, ErrAlreadyGuessed):
		return "already_guessed"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	}
	return ""
}

// Messages holds the user-facing text for validation failures.
// WrongLength is a format string receiving the word length.
type Messages struct {
	WrongLength    string
	NotInLexicon   string
	AlreadyGuessed string
	GameOver       string
}

// TurkishMessages are the default messages.
var TurkishMessages = Messages{
	WrongLength:    "Kelime %d harfli olmalıdır!",
	NotInLexicon:   "Geçerli bir kelime değil!",
	AlreadyGuessed: "Bu kelimeyi zaten denediniz!",
	GameOver:       "Oyun bitti!",
}

// EnglishMessages mirror TurkishMessages.
var EnglishMessages = Messages{
	WrongLength:    "The word must have %d letters!",
	NotInLexicon:   "Not a valid word!",
	AlreadyGuessed: "You already tried this word!",
	GameOver:       "The game is over!",
}

// Text renders err for a player. Unknown errors fall back to err.Error().
func (m Messages) Text(err error, wordLength int) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongLength):
		return fmt.Sprintf(m.WrongLength, wordLength)
	case errors.Is(err, ErrNotInLexicon):
		return m.NotInLexicon
	case errors.Is(err, ErrAlreadyGuessed):
		return m.AlreadyGuessed
	case errors.Is(err, ErrGameOver):
		return m.GameOver
	}
	return err.Error()
}
