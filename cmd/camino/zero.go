package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var zeroCmd = &cobra.Command{
	Use:   "zero",
	Short: "Manage rest-day cities for the trail",
}

var zeroListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rest-day cities",
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
		if err := backend.EnsureTrail(trail); err != nil {
			return err
		}

		zeros, err := backend.Zeros(trail)
		if err != nil {
			return err
		}
		for _, z := range zeros {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", z.ID, z.City)
		}
		return nil
	},
}

var zeroAddCmd = &cobra.Command{
	Use:   "add <city>",
	Short: "Add a rest-day city",
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

		id, err := backend.AddZero(trail, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added zero %s (id %d)\n", args[0], id)
		return nil
	},
}

var zeroUpdateCmd = &cobra.Command{
	Use:   "update <id> <city>",
	Short: "Rename a rest-day city",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %w", err)
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

		if err := backend.UpdateZero(trail, id, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "zero %d updated\n", id)
		return nil
	},
}

func init() {
	zeroCmd.AddCommand(zeroListCmd)
	zeroCmd.AddCommand(zeroAddCmd)
	zeroCmd.AddCommand(zeroUpdateCmd)
}
