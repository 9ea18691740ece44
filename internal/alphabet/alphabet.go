// internal/alphabet/alphabet.go
//
// Accepted alphabet and input normalization for front ends.
// Responsibilities:
//   - Case-fold letters with the language's rules (Turkish by default:
//     "I" → "ı", "İ" → "i").
//   - Filter raw key input down to letters of the alphabet.
//   - Describe the on-screen keyboard layout.
//
// The game engine never filters input itself; collaborators call Accept
// before handing a letter to the engine.

package alphabet

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Turkish is the default set of letters (29 letters, no q/w/x).
const Turkish = "abcçdefgğhıijklmnoöprsştuüvyz"

// turkishRows is the Turkish Q keyboard layout used by the on-screen keyboard.
var turkishRows = [][]rune{
	[]rune("ertyuıopğü"),
	[]rune("asdfghjklşi"),
	[]rune("zcvbnmöç"),
}

// Alphabet is an immutable set of accepted letters plus a folding rule.
type Alphabet struct {
	letters []rune
	set     map[rune]struct{}
	tag     language.Tag
	rows    [][]rune
}

// New builds an alphabet from its letters, folded with the rules of tag.
// Duplicate letters are ignored.
func New(letters string, tag language.Tag) *Alphabet {
	a := &Alphabet{set: make(map[rune]struct{}), tag: tag}
	for _, r := range a.Fold(letters) {
		if _, dup := a.set[r]; dup {
			continue
		}
		a.set[r] = struct{}{}
		a.letters = append(a.letters, r)
	}
	return a
}

// Default returns the Turkish alphabet with the Turkish Q keyboard.
func Default() *Alphabet {
	a := New(Turkish, language.Turkish)
	a.rows = turkishRows
	return a
}

// Fold lower-cases s using the alphabet's language rules and trims spaces.
// A new Caser is built per call since Casers hold state.
func (a *Alphabet) Fold(s string) string {
	return cases.Lower(a.tag).String(strings.TrimSpace(s))
}

// Lower lower-cases s using the alphabet's language rules. Unlike Fold it
// keeps surrounding whitespace.
func (a *Alphabet) Lower(s string) string {
	return cases.Lower(a.tag).String(s)
}

// Upper upper-cases s for display ("ı" → "I", "i" → "İ" in Turkish).
func (a *Alphabet) Upper(s string) string {
	return cases.Upper(a.tag).String(s)
}

// Tag returns the language whose case rules the alphabet uses.
func (a *Alphabet) Tag() language.Tag { return a.tag }

// FoldRune folds a single letter. Letters whose lower-case form is not a
// single rune are returned unchanged.
func (a *Alphabet) FoldRune(r rune) rune {
	f := cases.Lower(a.tag).String(string(r))
	if utf8.RuneCountInString(f) != 1 {
		return r
	}
	out, _ := utf8.DecodeRuneInString(f)
	return out
}

// Contains reports whether r (already folded) is a letter of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.set[r]
	return ok
}

// Valid reports whether every rune of the lower-cased word is in the
// alphabet. Whitespace is not a letter.
func (a *Alphabet) Valid(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range a.Lower(word) {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

// Accept maps a raw key name (as delivered by a keyboard event) to a
// letter. Key names longer than one rune ("Enter", "Shift") are rejected.
func (a *Alphabet) Accept(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	r = a.FoldRune(r)
	if !a.Contains(r) {
		return 0, false
	}
	return r, true
}

// Letters returns the letters in declaration order.
func (a *Alphabet) Letters() []rune {
	return append([]rune(nil), a.letters...)
}

// Rows returns the keyboard layout. Alphabets without an explicit layout
// get a single row with every letter.
func (a *Alphabet) Rows() [][]rune {
	if len(a.rows) == 0 {
		return [][]rune{a.Letters()}
	}
	out := make([][]rune, len(a.rows))
	for i, row := range a.rows {
		out[i] = append([]rune(nil), row...)
	}
	return out
}
