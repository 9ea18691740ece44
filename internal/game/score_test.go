package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	const (
		C = Correct
		P = Present
		A = Absent
	)

	tests := []struct {
		name   string
		guess  string
		target string
		want   []LetterState
	}{
		{
			name:   "no repeated letters",
			guess:  "takım",
			target: "tavan",
			want:   []LetterState{C, C, A, A, A},
		},
		{
			name:   "all correct",
			guess:  "kitap",
			target: "kitap",
			want:   []LetterState{C, C, C, C, C},
		},
		{
			name:   "repeated guess letter, target has two",
			guess:  "alaca",
			target: "tabak",
			want:   []LetterState{P, A, P, A, A},
		},
		{
			name:   "second copy of a single target letter is absent",
			guess:  "tatlı",
			target: "tavan",
			want:   []LetterState{C, C, A, A, A},
		},
		{
			name:   "exact match consumes before an earlier displaced copy",
			guess:  "tutar",
			target: "kitap",
			want:   []LetterState{A, A, C, C, A},
		},
		{
			name:   "earliest displaced copy is credited first",
			guess:  "speed",
			target: "abide",
			want:   []LetterState{A, A, P, A, P},
		},
		{
			name:   "anagram",
			guess:  "lamba",
			target: "balam",
			want:   []LetterState{P, C, P, P, P},
		},
		{
			name:   "length mismatch",
			guess:  "tav",
			target: "tavan",
			want:   []LetterState{A, A, A},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score([]rune(tt.guess), []rune(tt.target))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.guess, tt.target, got, tt.want)
			}
		})
	}
}

// TestScore_Properties checks position and letter-count rules over random
// words drawn from a small alphabet, so repeated letters are common.
func TestScore_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	letters := []rune("aıbç")
	word := func() []rune {
		w := make([]rune, 5)
		for i := range w {
			w[i] = letters[rng.Intn(len(letters))]
		}
		return w
	}

	for n := 0; n < 2000; n++ {
		guess, target := word(), word()
		got := Score(guess, target)

		credited := map[rune]int{}
		for i, s := range got {
			if (s == Correct) != (guess[i] == target[i]) {
				t.Fatalf("Score(%q, %q)[%d] = %v, exact match = %v",
					string(guess), string(target), i, s, guess[i] == target[i])
			}
			if s == Correct || s == Present {
				credited[guess[i]]++
			}
		}

		for _, l := range letters {
			want := min(count(guess, l), count(target, l))
			if credited[l] != want {
				t.Fatalf("Score(%q, %q): letter %q credited %d times, want %d",
					string(guess), string(target), l, credited[l], want)
			}
		}
	}
}

func count(w []rune, r rune) int {
	n := 0
	for _, x := range w {
		if x == r {
			n++
		}
	}
	return n
}

func TestLetterState_Order(t *testing.T) {
	if !(Empty < Absent && Absent < Present && Present < Correct) {
		t.Fatal("letter states are not ordered empty < absent < present < correct")
	}
	if got := Present.Max(Absent); got != Present {
		t.Errorf("Present.Max(Absent) = %v, want present", got)
	}
	if got := Absent.Max(Correct); got != Correct {
		t.Errorf("Absent.Max(Correct) = %v, want correct", got)
	}
}

func TestLetterState_Text(t *testing.T) {
	for _, s := range []LetterState{Empty, Absent, Present, Correct} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", s, err)
		}
		var back LetterState
		if err := back.UnmarshalText(b); err != nil || back != s {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, back, err, s)
		}
	}

	var s LetterState
	if err := s.UnmarshalText([]byte("green")); err == nil {
		t.Error("expected error for unknown state name")
	}
	if _, err := LetterState(9).MarshalText(); err == nil {
		t.Error("expected error for out-of-range state")
	}
}

func TestKnowledge_Merge(t *testing.T) {
	k := Knowledge{}

	k.Merge([]rune("alaca"), Score([]rune("alaca"), []rune("tabak")))
	if got := k.Get('a'); got != Present {
		t.Errorf("after alaca: a = %v, want present", got)
	}
	if got := k.Get('l'); got != Absent {
		t.Errorf("after alaca: l = %v, want absent", got)
	}

	k.Merge([]rune("tabak"), Score([]rune("tabak"), []rune("tabak")))
	if got := k.Get('a'); got != Correct {
		t.Errorf("after tabak: a = %v, want correct", got)
	}

	// A later absent mark must not downgrade.
	k.Merge([]rune("aaaaa"), []LetterState{Absent, Absent, Absent, Absent, Absent})
	if got := k.Get('a'); got != Correct {
		t.Errorf("after absent merge: a = %v, want correct", got)
	}

	if got := k.Get('z'); got != Empty {
		t.Errorf("unseen letter = %v, want empty", got)
	}
}

func TestKnowledge_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	letters := []rune("abcde")
	word := func() []rune {
		w := make([]rune, 5)
		for i := range w {
			w[i] = letters[rng.Intn(len(letters))]
		}
		return w
	}

	for game := 0; game < 100; game++ {
		target := word()
		k := Knowledge{}
		for n := 0; n < 6; n++ {
			before := map[rune]LetterState{}
			for _, l := range letters {
				before[l] = k.Get(l)
			}
			guess := word()
			k.Merge(guess, Score(guess, target))
			for _, l := range letters {
				if k.Get(l) < before[l] {
					t.Fatalf("letter %q went from %v to %v", l, before[l], k.Get(l))
				}
			}
		}
	}
}
