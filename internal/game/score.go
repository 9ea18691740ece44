// internal/game/score.go
//
// Guess scoring and keyboard knowledge aggregation.

package game

// Score evaluates guess against target with the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches Correct and consume that target letter.
//
// Pass 2:
//   - For each remaining guess letter, left to right: if an unconsumed
//     occurrence is left in the target, mark Present and consume it;
//     otherwise leave it Absent.
//
// Repeated letters are therefore credited at most as many times as they
// occur in the target, earliest positions first. Inputs of different
// lengths score all Absent.
func Score(guess, target []rune) []LetterState {
	n := len(guess)
	res := make([]LetterState, n)
	for i := range res {
		res[i] = Absent
	}
	if len(target) != n {
		return res
	}

	// Unconsumed target letters after exact matches.
	pool := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
		} else {
			pool[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if pool[guess[i]] > 0 {
			res[i] = Present
			pool[guess[i]]--
		}
	}
	return res
}

// Knowledge maps a letter to the best state observed for it so far.
// Letters never seen are Empty.
type Knowledge map[rune]LetterState

// Get returns the stored state for r.
func (k Knowledge) Get(r rune) LetterState { return k[r] }

// Merge raises each letter of word to at least its evaluation.
// No stored state is ever lowered.
func (k Knowledge) Merge(word []rune, evaluation []LetterState) {
	for i, r := range word {
		if i >= len(evaluation) {
			return
		}
		k[r] = k[r].Max(evaluation[i])
	}
}

// Strings returns a copy keyed by the letter as a string, for rendering.
func (k Knowledge) Strings() map[string]LetterState {
	out := make(map[string]LetterState, len(k))
	for r, s := range k {
		out[string(r)] = s
	}
	return out
}
