package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/kelime/internal/game"
	"github.com/robalobadob/kelime/internal/words"
)

// newPlayCmd creates the play command, an interactive terminal game.
// Each input line is one full guess.
func (a *App) newPlayCmd() *cobra.Command {
	var (
		seed    int64
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			var src words.Source
			if seed != 0 {
				src = rand.New(rand.NewSource(seed))
			}
			eng, err := buildEngine(cfg, src)
			if err != nil {
				return fmt.Errorf("load word lists: %w", err)
			}

			g := game.New(eng.lex, eng.gameOpts...)
			out := newRenderer(a.stdout, eng.alpha, noColor)

			fmt.Fprintln(a.stdout, eng.text.Help)
			out.Board(g)
			a.prompt(g, eng)

			scanner := bufio.NewScanner(a.stdin)
			for scanner.Scan() {
				if err := cmd.Context().Err(); err != nil {
					return nil
				}

				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					a.prompt(g, eng)
					continue
				case "!q", "!quit":
					return nil
				case "!help":
					fmt.Fprintln(a.stdout, eng.text.Help)
					a.prompt(g, eng)
					continue
				case "!new":
					g.StartNewGame()
					fmt.Fprintln(a.stdout, eng.text.NewGame)
					out.Board(g)
					a.prompt(g, eng)
					continue
				}

				if g.Status().Terminal() {
					fmt.Fprintln(a.stdout, eng.messages.Text(game.ErrGameOver, g.WordLength()))
					a.prompt(g, eng)
					continue
				}

				if !enterGuess(g, eng, line) {
					fmt.Fprintln(a.stdout, eng.messages.Text(game.ErrWrongLength, g.WordLength()))
				} else if _, err := g.Submit(); err != nil {
					fmt.Fprintln(a.stdout, eng.messages.Text(err, g.WordLength()))
				}

				out.Board(g)
				out.Keyboard(g)

				switch g.Status() {
				case game.StatusWon:
					fmt.Fprintf(a.stdout, eng.text.Won+"\n", eng.alpha.Upper(g.Target()))
				case game.StatusLost:
					fmt.Fprintf(a.stdout, eng.text.Lost+"\n", eng.alpha.Upper(g.Target()))
				}
				a.prompt(g, eng)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for target selection (0 picks a random target)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// enterGuess replaces the in-progress guess with the letters of line.
// Keys outside the alphabet are dropped. It reports false, leaving the
// guess empty, when line holds more letters than fit.
func enterGuess(g *game.Game, eng *engineSetup, line string) bool {
	for g.Delete() {
	}
	for _, r := range line {
		l, ok := eng.alpha.Accept(string(r))
		if !ok {
			continue
		}
		if !g.Append(l) {
			for g.Delete() {
			}
			return false
		}
	}
	return true
}

func (a *App) prompt(g *game.Game, eng *engineSetup) {
	if g.Status().Terminal() {
		fmt.Fprint(a.stdout, "> ")
		return
	}
	fmt.Fprintf(a.stdout, eng.text.Prompt, len(g.Attempts())+1, g.MaxAttempts())
}
