package main

//
// Subcommands that change game state
//

import (
	"fmt"
	"strings"

	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
	"github.com/spf13/cobra"
)

func acceptSubcommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "accept CONTRACT",
		Short: "Accepts a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.client.AcceptContract(cmd.Context(), spacetraders.AcceptContractInput{ContractID: args[0]})
			if err != nil {
				return err
			}
			return s.print(res)
		},
	}
}

func orbitSubcommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "orbit SHIP",
		Short: "Moves a docked ship into orbit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := s.client.OrbitShip(cmd.Context(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			return s.print(nav)
		},
	}
}

func dockSubcommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dock SHIP",
		Short: "Docks an orbiting ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := s.client.DockShip(cmd.Context(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			return s.print(nav)
		},
	}
}

func flightModeSubcommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "flight-mode SHIP MODE",
		Short: "Sets the flight mode of a ship (DRIFT, STEALTH, CRUISE or BURN)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ship, mode := strings.ToUpper(args[0]), spacetraders.FlightMode(strings.ToUpper(args[1]))
			if err := s.client.SetFlightMode(cmd.Context(), ship, mode); err != nil {
				return err
			}
			_, err := fmt.Fprintf(s.out, "%s flight mode set to %s\n", ship, mode)
			return err
		},
	}
}
