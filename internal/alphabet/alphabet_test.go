package alphabet

import (
	"testing"

	"golang.org/x/text/language"
)

func TestAlphabet_FoldRune(t *testing.T) {
	a := Default()

	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{name: "dotless capital I", in: 'I', want: 'ı'},
		{name: "dotted capital I", in: 'İ', want: 'i'},
		{name: "cedilla", in: 'Ç', want: 'ç'},
		{name: "already lower", in: 'ş', want: 'ş'},
		{name: "ascii", in: 'K', want: 'k'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.FoldRune(tt.in); got != tt.want {
				t.Errorf("FoldRune(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlphabet_Accept(t *testing.T) {
	a := Default()

	tests := []struct {
		key    string
		want   rune
		wantOK bool
	}{
		{key: "a", want: 'a', wantOK: true},
		{key: "Ğ", want: 'ğ', wantOK: true},
		{key: "I", want: 'ı', wantOK: true},
		{key: "q", wantOK: false},
		{key: "x", wantOK: false},
		{key: "1", wantOK: false},
		{key: "Enter", wantOK: false},
		{key: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := a.Accept(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Accept(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Accept(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestAlphabet_Valid(t *testing.T) {
	a := Default()

	if !a.Valid("IŞIK") {
		t.Error("expected IŞIK to be valid")
	}
	if a.Valid("quartz") {
		t.Error("expected quartz to be invalid")
	}
	if a.Valid("") {
		t.Error("expected empty word to be invalid")
	}
	if a.Valid(" ışık") || a.Valid("ışık\n") {
		t.Error("expected padded word to be invalid")
	}
}

func TestAlphabet_Rows(t *testing.T) {
	a := Default()

	seen := map[rune]bool{}
	for _, row := range a.Rows() {
		for _, r := range row {
			if !a.Contains(r) {
				t.Errorf("keyboard key %q not in alphabet", r)
			}
			seen[r] = true
		}
	}
	if len(seen) != len(a.Letters()) {
		t.Errorf("keyboard covers %d letters, alphabet has %d", len(seen), len(a.Letters()))
	}

	plain := New("abc", language.English)
	rows := plain.Rows()
	if len(rows) != 1 || string(rows[0]) != "abc" {
		t.Errorf("Rows() = %q, want single row abc", rows)
	}
}

func TestAlphabet_Upper(t *testing.T) {
	a := Default()
	if got := a.Upper("ışık"); got != "IŞIK" {
		t.Errorf("Upper(ışık) = %q, want IŞIK", got)
	}
	if got := a.Upper("iyi"); got != "İYİ" {
		t.Errorf("Upper(iyi) = %q, want İYİ", got)
	}
}
