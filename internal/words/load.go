// internal/words/load.go
//
// Loading word lists from files or the embedded defaults.
//
// Initialization behavior (Load):
//   1. If both AnswersFile and AllowedFile are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If only AnswersFile is set, it is used for both as well.
//   4. If neither is set, fall back to the embedded Turkish defaults.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// Files names optional word list files on disk.
type Files struct {
	AnswersFile string
	AllowedFile string
}

// Load reads word lists according to files and builds a Lexicon.
func Load(files Files, opts ...Option) (*Lexicon, error) {
	var ansList, allowList []string
	var err error

	switch {
	case files.AnswersFile != "" && files.AllowedFile != "":
		if ansList, err = readWordFile(files.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(files.AllowedFile); err != nil {
			return nil, err
		}

	case files.AllowedFile != "":
		if allowList, err = readWordFile(files.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case files.AnswersFile != "":
		if ansList, err = readWordFile(files.AnswersFile); err != nil {
			return nil, err
		}
		allowList = ansList

	default:
		ansList, _ = readLines(strings.NewReader(embeddedAnswers))
		allowList, _ = readLines(strings.NewReader(embeddedAllowed))
	}

	return New(ansList, allowList, opts...)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	out, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return out, nil
}

// readLines splits text into entries, skipping blanks and "#" comments.
// Folding and length filtering happen in New.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
