package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/robalobadob/kelime/internal/alphabet"
)

func TestNew_Normalizes(t *testing.T) {
	lex, err := New(
		[]string{"TAVAN", " kitap ", "tavan", "uzun", "ağaçlar", "ALTIN"},
		[]string{"Takım", "x"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	answers, accepted := lex.Stats()
	// tavan (deduplicated), kitap, altın
	if answers != 3 {
		t.Errorf("answers = %d, want 3", answers)
	}
	if accepted != 4 {
		t.Errorf("accepted = %d, want 4", accepted)
	}
	if !lex.IsAnswer("ALTIN") {
		t.Error("expected ALTIN to be an answer after Turkish folding")
	}
}

func TestNew_NoAnswers(t *testing.T) {
	_, err := New([]string{"abc", "toolong"}, []string{"tavan"})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("New() error = %v, want ErrNoAnswers", err)
	}
}

func TestLexicon_IsAccepted(t *testing.T) {
	lex, err := New([]string{"tavan"}, []string{"takım"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "answer", candidate: "tavan", want: true},
		{name: "allowed guess", candidate: "takım", want: true},
		{name: "upper case turkish", candidate: "TAKIM", want: true},
		{name: "unknown word", candidate: "kalem", want: false},
		{name: "too short", candidate: "tav", want: false},
		{name: "too long", candidate: "tavanı", want: false},
		{name: "empty", candidate: "", want: false},
		{name: "non letters", candidate: "tav4n", want: false},
		{name: "leading space", candidate: " tavan", want: false},
		{name: "trailing newline", candidate: "tavan\n", want: false},
		{name: "padded both sides", candidate: "\ttavan ", want: false},
		{name: "inner space", candidate: "tav n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.IsAccepted(tt.candidate); got != tt.want {
				t.Errorf("IsAccepted(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestLexicon_FoldRune(t *testing.T) {
	lex, err := New([]string{"tavan"}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := lex.FoldRune('I'); got != 'ı' {
		t.Errorf("FoldRune('I') = %q, want 'ı'", got)
	}

	en, err := New([]string{"timer"}, nil, WithAlphabet(alphabet.New("abcdefghijklmnopqrstuvwxyz", language.English)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := en.FoldRune('I'); got != 'i' {
		t.Errorf("english FoldRune('I') = %q, want 'i'", got)
	}
}

func TestLexicon_PickRandomTarget(t *testing.T) {
	answers := []string{"tavan", "kitap", "dolap", "teker"}
	lex, err := New(answers, nil, WithSource(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	seen := map[string]int{}
	for i := 0; i < 400; i++ {
		w := lex.PickRandomTarget()
		if !lex.IsAnswer(w) {
			t.Fatalf("PickRandomTarget() = %q, not an answer", w)
		}
		seen[w]++
	}
	if len(seen) != len(answers) {
		t.Errorf("picked %d distinct answers, want %d", len(seen), len(answers))
	}
}

func TestLexicon_Deterministic(t *testing.T) {
	answers := []string{"tavan", "kitap", "dolap", "teker"}
	a, _ := New(answers, nil, WithSource(rand.New(rand.NewSource(42))))
	b, _ := New(answers, nil, WithSource(rand.New(rand.NewSource(42))))

	for i := 0; i < 10; i++ {
		if x, y := a.PickRandomTarget(), b.PickRandomTarget(); x != y {
			t.Fatalf("draw %d: %q != %q with identical seeds", i, x, y)
		}
	}
}

func TestLexicon_CustomLength(t *testing.T) {
	lex, err := New(
		[]string{"cat", "dogs"},
		nil,
		WithWordLength(3),
		WithAlphabet(alphabet.New("abcdefghijklmnopqrstuvwxyz", language.English)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if lex.WordLength() != 3 {
		t.Errorf("WordLength() = %d, want 3", lex.WordLength())
	}
	if !lex.IsAccepted("CAT") {
		t.Error("expected CAT to be accepted")
	}
	if lex.IsAccepted("dogs") {
		t.Error("expected dogs to be rejected")
	}
}

func TestLoad_Embedded(t *testing.T) {
	lex, err := Load(Files{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	answers, accepted := lex.Stats()
	if answers == 0 || accepted < answers {
		t.Errorf("Stats() = (%d, %d), want answers > 0 and accepted >= answers", answers, accepted)
	}
	if !lex.IsAccepted("tavan") {
		t.Error("expected embedded list to contain tavan")
	}
	if !lex.IsAccepted("takım") {
		t.Error("expected embedded allowed list to contain takım")
	}
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.txt")
	allowedPath := filepath.Join(dir, "allowed.txt")
	if err := os.WriteFile(answersPath, []byte("# answers\nkalem\n\nLIMON\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(allowedPath, []byte("sabah\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("both files", func(t *testing.T) {
		lex, err := Load(Files{AnswersFile: answersPath, AllowedFile: allowedPath})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if a, g := lex.Stats(); a != 2 || g != 3 {
			t.Errorf("Stats() = (%d, %d), want (2, 3)", a, g)
		}
	})

	t.Run("allowed only", func(t *testing.T) {
		lex, err := Load(Files{AllowedFile: allowedPath})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := lex.PickRandomTarget(); got != "sabah" {
			t.Errorf("PickRandomTarget() = %q, want sabah", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(Files{AnswersFile: filepath.Join(dir, "nope.txt")}); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
