package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/kelime/internal/alphabet"
	"github.com/robalobadob/kelime/internal/config"
	"github.com/robalobadob/kelime/internal/game"
	"github.com/robalobadob/kelime/internal/words"
)

// setupLogging configures the global zerolog logger from cfg.
func setupLogging(cfg config.Config, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// engineSetup is everything needed to create games.
type engineSetup struct {
	alpha    *alphabet.Alphabet
	lex      *words.Lexicon
	messages game.Messages
	text     playText
	gameOpts []game.Option
}

// buildEngine loads the alphabet and lexicon described by cfg.
// src may be nil for crypto-random targets.
func buildEngine(cfg config.Config, src words.Source) (*engineSetup, error) {
	tag := language.Make(cfg.Language)
	alpha := buildAlphabet(cfg)

	opts := []words.Option{words.WithWordLength(cfg.WordLength), words.WithAlphabet(alpha)}
	if src != nil {
		opts = append(opts, words.WithSource(src))
	}
	lex, err := words.Load(words.Files{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile}, opts...)
	if err != nil {
		return nil, err
	}

	messages, text := game.TurkishMessages, turkishText
	if !isTurkish(tag) {
		messages, text = game.EnglishMessages, englishText
	}

	return &engineSetup{
		alpha:    alpha,
		lex:      lex,
		messages: messages,
		text:     text,
		gameOpts: []game.Option{
			game.WithWordLength(cfg.WordLength),
			game.WithMaxAttempts(cfg.MaxAttempts),
			game.WithFold(alpha.FoldRune),
			game.WithMessages(messages),
		},
	}, nil
}

// buildAlphabet picks the Turkish alphabet unless cfg names other letters
// or a non-Turkish language.
func buildAlphabet(cfg config.Config) *alphabet.Alphabet {
	tag := language.Make(cfg.Language)
	if cfg.Alphabet == "" && isTurkish(tag) {
		return alphabet.Default()
	}
	letters := cfg.Alphabet
	if letters == "" {
		letters = "abcdefghijklmnopqrstuvwxyz"
	}
	return alphabet.New(letters, tag)
}

func (a *App) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, err
	}
	setupLogging(cfg, a.stderr)
	return cfg, nil
}

func isTurkish(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "tr"
}
