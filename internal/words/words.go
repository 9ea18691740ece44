// internal/words/words.go
//
// Provides the Lexicon used by the game engine.
//
// Responsibilities:
//   - Hold the accepted word set (answers ∪ allowed guesses) and the answers list.
//   - Pick a uniformly random target from the answers.
//   - Case-insensitive membership test for submitted guesses.
//
// Word Lists:
//   - "answers": words that can be drawn as a target.
//   - "allowed": extra valid guesses (answers are always accepted too).
//
// Constraints:
//   • Words must be exactly WordLength letters of the alphabet.
//   • Lists are folded with the alphabet's case rules (Turkish by default).
//   • A Lexicon never changes after New returns.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/kelime/internal/alphabet"
)

// DefaultWordLength is the canonical number of letters per word.
const DefaultWordLength = 5

// ErrNoAnswers is returned when no answer survives normalization.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Source supplies randomness for target selection.
// *math/rand.Rand satisfies it, which keeps tests deterministic.
type Source interface {
	Intn(n int) int
}

// cryptoSource draws indexes from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Lexicon is an immutable set of accepted fixed-length words.
type Lexicon struct {
	wordLength int
	alpha      *alphabet.Alphabet
	src        Source
	answers    []string
	accepted   map[string]struct{}
}

// Option configures a Lexicon.
type Option func(*Lexicon)

// WithWordLength sets the fixed word length.
func WithWordLength(n int) Option {
	return func(l *Lexicon) {
		if n > 0 {
			l.wordLength = n
		}
	}
}

// WithAlphabet sets the alphabet used to fold and validate words.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(l *Lexicon) {
		if a != nil {
			l.alpha = a
		}
	}
}

// WithSource injects the random source used by PickRandomTarget.
func WithSource(src Source) Option {
	return func(l *Lexicon) {
		if src != nil {
			l.src = src
		}
	}
}

// New builds a Lexicon from answer and allowed-guess lists.
// Entries are folded and trimmed; entries of the wrong length or with
// letters outside the alphabet are dropped. Answers are always accepted.
func New(answers, allowed []string, opts ...Option) (*Lexicon, error) {
	l := &Lexicon{
		wordLength: DefaultWordLength,
		alpha:      alphabet.Default(),
		src:        cryptoSource{},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.answers = lo.Uniq(l.normalize(answers))
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}

	l.accepted = make(map[string]struct{}, len(l.answers)+len(allowed))
	for _, w := range l.answers {
		l.accepted[w] = struct{}{}
	}
	for _, w := range l.normalize(allowed) {
		l.accepted[w] = struct{}{}
	}
	return l, nil
}

// normalize folds every entry and keeps only well-formed words.
func (l *Lexicon) normalize(list []string) []string {
	folded := lo.Map(list, func(w string, _ int) string { return l.alpha.Fold(w) })
	return lo.Filter(folded, func(w string, _ int) bool { return l.wellFormed(w) })
}

// wellFormed reports whether a folded word has the right length and letters.
func (l *Lexicon) wellFormed(w string) bool {
	return utf8.RuneCountInString(w) == l.wordLength && l.alpha.Valid(w)
}

// PickRandomTarget returns a uniformly random answer.
func (l *Lexicon) PickRandomTarget() string {
	return l.answers[l.src.Intn(len(l.answers))]
}

// IsAccepted reports whether candidate is an accepted word, ignoring case.
// Surrounding whitespace is not trimmed, so padded words are rejected.
func (l *Lexicon) IsAccepted(candidate string) bool {
	w := l.alpha.Lower(candidate)
	if !l.wellFormed(w) {
		return false
	}
	_, ok := l.accepted[w]
	return ok
}

// IsAnswer reports whether w could be drawn as a target.
func (l *Lexicon) IsAnswer(w string) bool {
	return lo.Contains(l.answers, l.alpha.Lower(w))
}

// FoldRune folds one typed letter with the lexicon's alphabet rules.
func (l *Lexicon) FoldRune(r rune) rune { return l.alpha.FoldRune(r) }

// WordLength returns the fixed word length.
func (l *Lexicon) WordLength() int { return l.wordLength }

// Alphabet returns the alphabet the lexicon folds with.
func (l *Lexicon) Alphabet() *alphabet.Alphabet { return l.alpha }

// Stats returns counts of loaded words: (answers, accepted).
func (l *Lexicon) Stats() (answersCount int, acceptedCount int) {
	return len(l.answers), len(l.accepted)
}
