package main

import (
	"github.com/Adda-Baaj/spacetraders-go/internal/app"
	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/spf13/cobra"
)

// watchSubcommand polls the configured sources and publishes changes.
func watchSubcommand(s *session) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Polls configured sources and publishes snapshots that changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.InfoObj("watcher starting", "config", s.cfg)

			w, err := app.NewWatcher(cmd.Context(), s.cfg, s.log)
			if err != nil {
				logger.ErrorObj("failed to initialize watcher", "error", err)
				return err
			}
			if once {
				return w.RunOnce(cmd.Context())
			}
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single poll and exit")
	return cmd
}
