package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/kelime/internal/auth"
	"github.com/robalobadob/kelime/internal/db"
	"github.com/robalobadob/kelime/internal/httpserver"
	"github.com/robalobadob/kelime/internal/store"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}

			rt, err := buildEngine(cfg, nil)
			if err != nil {
				return fmt.Errorf("load word lists: %w", err)
			}
			answers, accepted := rt.lex.Stats()
			log.Info().Int("answers", answers).Int("accepted", accepted).Msg("word lists loaded")

			sqlDB, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer sqlDB.Close()
			if err := db.Migrate(sqlDB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			ctx := cmd.Context()
			sessions := store.NewMemoryStore()
			go store.RunJanitor(ctx, sessions, cfg.SessionTTL, 0)

			srv := httpserver.New(httpserver.Deps{
				Store:        sessions,
				Lexicon:      rt.lex,
				Auth:         auth.NewService(sqlDB, cfg.JWTSecret, time.Duration(cfg.JWTExpiresDays)*24*time.Hour),
				GameOpts:     rt.gameOpts,
				ClientOrigin: cfg.ClientOrigin,
				CookieName:   cfg.CookieName,
				Production:   cfg.Production,
			})

			log.Info().Str("port", cfg.Port).Msg("starting server")
			if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
