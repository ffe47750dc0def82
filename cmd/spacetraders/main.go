package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/spacetraders-go/internal/app"
	"github.com/Adda-Baaj/spacetraders-go/internal/config"
	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(&session{out: os.Stdout}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "spacetraders: %v\n", err)
		os.Exit(1)
	}
}

// session carries what every subcommand needs once config is loaded.
type session struct {
	cfg    *config.Config
	log    logger.Logger
	client *spacetraders.Client
	out    io.Writer
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "spacetraders",
		Short:         "Typed client and watcher for the SpaceTraders API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logger.Close()
		},
	}
	root.AddCommand(agentSubcommand(s))
	root.AddCommand(agentsSubcommand(s))
	root.AddCommand(contractsSubcommand(s))
	root.AddCommand(acceptSubcommand(s))
	root.AddCommand(factionsSubcommand(s))
	root.AddCommand(shipsSubcommand(s))
	root.AddCommand(orbitSubcommand(s))
	root.AddCommand(dockSubcommand(s))
	root.AddCommand(flightModeSubcommand(s))
	root.AddCommand(systemSubcommand(s))
	root.AddCommand(waypointsSubcommand(s))
	root.AddCommand(marketSubcommand(s))
	root.AddCommand(shipyardSubcommand(s))
	root.AddCommand(jumpGateSubcommand(s))
	root.AddCommand(watchSubcommand(s))
	return root
}

func (s *session) init() error {
	if s.client != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	client, err := app.NewAPIClient(cfg, log)
	if err != nil {
		return err
	}
	s.cfg, s.log, s.client = cfg, log, client
	return nil
}

// print writes v to the session output as indented JSON.
func (s *session) print(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(s.out, string(raw))
	return err
}
