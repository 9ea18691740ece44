package game

// Snapshot is a read-only copy of a game for rendering.
// Target is set only when the game is over.
type Snapshot struct {
	ID           string                 `json:"id"`
	Status       Status                 `json:"status"`
	WordLength   int                    `json:"wordLength"`
	MaxAttempts  int                    `json:"maxAttempts"`
	AttemptsLeft int                    `json:"attemptsLeft"`
	Guess        string                 `json:"guess"`
	Attempts     []Attempt              `json:"attempts"`
	Keyboard     map[string]LetterState `json:"keyboard"`
	LastError    string                 `json:"lastError,omitempty"`
	ErrorCode    string                 `json:"errorCode,omitempty"`
	Target       string                 `json:"target,omitempty"`
}

// Snapshot copies the full game state. Mutating the result does not affect g.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:           g.ID,
		Status:       g.status,
		WordLength:   g.wordLength,
		MaxAttempts:  g.maxAttempts,
		AttemptsLeft: g.maxAttempts - len(g.attempts),
		Guess:        string(g.guess),
		Attempts:     g.Attempts(),
		Keyboard:     g.knowledge.Strings(),
		LastError:    g.messages.Text(g.lastError, g.wordLength),
		ErrorCode:    Code(g.lastError),
		Target:       g.Target(),
	}
}
