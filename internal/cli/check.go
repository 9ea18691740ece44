package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/robalobadob/kelime/internal/game"
)

// newCheckCmd creates the check command, which scores a single guess
// against a target without any word list. Letters fold with the
// configured language.
func (a *App) newCheckCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check GUESS TARGET",
		Short: "Score a guess against a target word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			alpha := buildAlphabet(cfg)
			guess, target := alpha.Fold(args[0]), alpha.Fold(args[1])
			if utf8.RuneCountInString(guess) != utf8.RuneCountInString(target) {
				return fmt.Errorf("guess %q and target %q differ in length", args[0], args[1])
			}

			eval := game.Score([]rune(guess), []rune(target))
			newRenderer(a.stdout, alpha, noColor).Evaluation(guess, eval)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
