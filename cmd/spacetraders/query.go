package main

//
// Read-only subcommands
//

import (
	"context"
	"strings"

	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
	"github.com/spf13/cobra"
)

// paginationFlags binds --limit and --page to p.
func paginationFlags(cmd *cobra.Command, p *spacetraders.Pagination) {
	cmd.Flags().IntVar(&p.Limit, "limit", 10, "page size (max 20)")
	cmd.Flags().IntVar(&p.Page, "page", 1, "page number")
}

// agentSubcommand prints the authenticated agent, or a public agent profile.
// Without a token the configured agent_symbol stands in for SYMBOL.
func agentSubcommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "agent [SYMBOL]",
		Short: "Shows your agent, or the public profile of SYMBOL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := ""
			if len(args) == 1 {
				symbol = args[0]
			} else if s.cfg != nil {
				symbol = s.cfg.PublicAgent()
			}

			var (
				agent spacetraders.Agent
				err   error
			)
			if symbol != "" {
				agent, err = s.client.Agent(cmd.Context(), symbol)
			} else {
				agent, err = s.client.MyAgent(cmd.Context())
			}
			if err != nil {
				return err
			}
			return s.print(agent)
		},
	}
}

func agentsSubcommand(s *session) *cobra.Command {
	var p spacetraders.Pagination
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Lists public agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := s.client.Agents(cmd.Context(), p)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &p)
	return cmd
}

func contractsSubcommand(s *session) *cobra.Command {
	var p spacetraders.Pagination
	cmd := &cobra.Command{
		Use:   "contracts [ID]",
		Short: "Lists your contracts, or shows contract ID",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				contract, err := s.client.Contract(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return s.print(contract)
			}
			page, err := s.client.Contracts(cmd.Context(), p)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &p)
	return cmd
}

func factionsSubcommand(s *session) *cobra.Command {
	var p spacetraders.Pagination
	cmd := &cobra.Command{
		Use:   "factions [SYMBOL]",
		Short: "Lists factions, or shows faction SYMBOL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				faction, err := s.client.Faction(cmd.Context(), spacetraders.FactionSymbol(strings.ToUpper(args[0])))
				if err != nil {
					return err
				}
				return s.print(faction)
			}
			page, err := s.client.Factions(cmd.Context(), p)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &p)
	return cmd
}

func shipsSubcommand(s *session) *cobra.Command {
	var p spacetraders.Pagination
	cmd := &cobra.Command{
		Use:   "ships [SYMBOL]",
		Short: "Lists your fleet, or shows ship SYMBOL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				ship, err := s.client.Ship(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return s.print(ship)
			}
			page, err := s.client.Ships(cmd.Context(), p)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &p)
	return cmd
}

func systemSubcommand(s *session) *cobra.Command {
	var p spacetraders.Pagination
	cmd := &cobra.Command{
		Use:   "systems [SYMBOL]",
		Short: "Lists systems, or shows system SYMBOL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				system, err := s.client.System(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return s.print(system)
			}
			page, err := s.client.Systems(cmd.Context(), p)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &p)
	return cmd
}

func waypointsSubcommand(s *session) *cobra.Command {
	var (
		f      spacetraders.WaypointFilter
		typ    string
		traits []string
	)
	cmd := &cobra.Command{
		Use:   "waypoints SYSTEM [WAYPOINT]",
		Short: "Lists the waypoints of SYSTEM, or shows one waypoint",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				wp, err := s.client.Waypoint(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return s.print(wp)
			}
			f.Type = spacetraders.WaypointType(strings.ToUpper(typ))
			for _, tr := range traits {
				f.Traits = append(f.Traits, spacetraders.WaypointTraitSymbol(strings.ToUpper(tr)))
			}
			page, err := s.client.Waypoints(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			return s.print(page)
		},
	}
	paginationFlags(cmd, &f.Pagination)
	cmd.Flags().StringVar(&typ, "type", "", "only waypoints of this type")
	cmd.Flags().StringSliceVar(&traits, "trait", nil, "only waypoints with these traits")
	return cmd
}

// waypointSubcommand builds a subcommand that reads one facility of a waypoint.
func waypointSubcommand[T any](s *session, use, short string, get func(*spacetraders.Client, context.Context, string, string) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " WAYPOINT",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wp := strings.ToUpper(args[0])
			v, err := get(s.client, cmd.Context(), spacetraders.SystemOf(wp), wp)
			if err != nil {
				return err
			}
			return s.print(v)
		},
	}
}

func marketSubcommand(s *session) *cobra.Command {
	return waypointSubcommand(s, "market", "Shows the market at WAYPOINT", (*spacetraders.Client).Market)
}

func shipyardSubcommand(s *session) *cobra.Command {
	return waypointSubcommand(s, "shipyard", "Shows the shipyard at WAYPOINT", (*spacetraders.Client).Shipyard)
}

func jumpGateSubcommand(s *session) *cobra.Command {
	return waypointSubcommand(s, "jump-gate", "Shows the jump gate connections at WAYPOINT", (*spacetraders.Client).JumpGate)
}
