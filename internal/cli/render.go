package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/robalobadob/kelime/internal/alphabet"
	"github.com/robalobadob/kelime/internal/game"
)

// playText is the non-error text shown by the terminal front end.
type playText struct {
	Won     string // format: target
	Lost    string // format: target
	Prompt  string // format: attempt number, max attempts
	Help    string
	NewGame string
}

var turkishText = playText{
	Won:     "Tebrikler! Doğru kelimeyi buldunuz: %s",
	Lost:    "Üzgünüz! Doğru kelime: %s idi.",
	Prompt:  "Tahmin %d/%d> ",
	Help:    "Bir kelime yazıp Enter'a basın. !new yeni oyun, !quit çıkış.",
	NewGame: "Yeni oyun başladı.",
}

var englishText = playText{
	Won:     "Congratulations! You found the word: %s",
	Lost:    "Sorry! The word was %s.",
	Prompt:  "Guess %d/%d> ",
	Help:    "Type a word and press Enter. !new starts over, !quit exits.",
	NewGame: "New game started.",
}

var tileColors = map[game.LetterState]string{
	game.Empty:   "[_white_][black]",
	game.Absent:  "[_dark_gray_][white]",
	game.Present: "[_yellow_][black]",
	game.Correct: "[_green_][black]",
}

// renderer draws the board and keyboard with ANSI colors.
type renderer struct {
	w     io.Writer
	alpha *alphabet.Alphabet
	color colorstring.Colorize
}

func newRenderer(w io.Writer, alpha *alphabet.Alphabet, noColor bool) *renderer {
	return &renderer{
		w:     w,
		alpha: alpha,
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: noColor,
			Reset:   true,
		},
	}
}

// tile renders one letter. Without colors the state is shown by brackets:
// [K] correct, (K) present, plain otherwise.
func (r *renderer) tile(letter string, state game.LetterState) string {
	up := r.alpha.Upper(letter)
	if r.color.Disable {
		switch state {
		case game.Correct:
			return "[" + up + "]"
		case game.Present:
			return "(" + up + ")"
		}
		return " " + up + " "
	}
	return r.color.Color(tileColors[state] + " " + up + " ")
}

func (r *renderer) word(word string, evaluation []game.LetterState) string {
	var b strings.Builder
	for i, l := range []rune(word) {
		state := game.Empty
		if i < len(evaluation) {
			state = evaluation[i]
		}
		b.WriteString(r.tile(string(l), state))
	}
	return b.String()
}

// Board prints every attempt row, the in-progress guess, and blank rows.
func (r *renderer) Board(g *game.Game) {
	attempts := g.Attempts()
	for _, a := range attempts {
		fmt.Fprintln(r.w, r.word(a.Word, a.Evaluation))
	}

	rows := len(attempts)
	if g.Status() == game.StatusPlaying {
		guess := []rune(g.Guess())
		padded := string(guess) + strings.Repeat("·", max(0, g.WordLength()-len(guess)))
		fmt.Fprintln(r.w, r.word(padded, nil))
		rows++
	}
	for ; rows < g.MaxAttempts(); rows++ {
		fmt.Fprintln(r.w, r.word(strings.Repeat("·", g.WordLength()), nil))
	}
}

// Keyboard prints the keyboard rows colored by what is known about each letter.
func (r *renderer) Keyboard(g *game.Game) {
	for i, row := range r.alpha.Rows() {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i))
		for _, l := range row {
			b.WriteString(r.tile(string(l), g.Knowledge(l)))
		}
		fmt.Fprintln(r.w, b.String())
	}
}

// Evaluation prints a scored word followed by the state names.
func (r *renderer) Evaluation(word string, evaluation []game.LetterState) {
	names := make([]string, len(evaluation))
	for i, s := range evaluation {
		names[i] = s.String()
	}
	fmt.Fprintln(r.w, r.word(word, evaluation))
	fmt.Fprintln(r.w, strings.Join(names, " "))
}
