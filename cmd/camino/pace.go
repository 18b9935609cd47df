package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trailforge/camino/pkg/types"
)

var paceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Inspect and cascade pace settings along the route",
}

var paceShowCmd = &cobra.Command{
	Use:   "show <city>",
	Short: "Print the pace pair at a city's first route occurrence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trail, err := resolveTrail(backend)
		if err != nil {
			return err
		}

		pace, err := backend.PaceSettings(trail, args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not a stop on %s\n", args[0], trail)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: pace_dist=%d pace_gain=%d\n", args[0], pace.Distance, pace.Gain)
		return nil
	},
}

var paceSetCmd = &cobra.Command{
	Use:   "set <city> <distance> <gain>",
	Short: "Rewrite the pace pair from a city to the end of the route",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("distance must be an integer: %w", err)
		}
		gain, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("gain must be an integer: %w", err)
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trail, err := resolveTrail(backend)
		if err != nil {
			return err
		}

		if err := backend.CascadePace(trail, args[0], distance, gain); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pace updated from %s onward\n", args[0])
		return nil
	},
}

func init() {
	paceCmd.AddCommand(paceShowCmd)
	paceCmd.AddCommand(paceSetCmd)
}
