package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trailforge/camino/pkg/types"
)

var trailCmd = &cobra.Command{
	Use:   "trail",
	Short: "Select, provision, and clear trails",
}

var trailCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trail, err := backend.CurrentTrail()
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "no current trail set")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), trail)
		return nil
	},
}

var trailUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the current trail, provisioning its tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trail := args[0]
		if err := backend.EnsureTrail(trail); err != nil {
			return err
		}
		if err := backend.SetCurrentTrail(trail); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "current trail set to %s\n", trail)
		return nil
	},
}

var trailClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all waypoint, attraction, and zero rows for the trail",
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
		if err := backend.ClearTrail(trail); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared trail %s\n", trail)
		return nil
	},
}

var trailImportsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List recorded waypoint imports for the trail",
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
		records, err := backend.ImportLog(trail)
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  imported=%d skipped=%d\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.ImportID, r.Imported, r.Skipped)
		}
		return nil
	},
}

func init() {
	trailCmd.AddCommand(trailCurrentCmd)
	trailCmd.AddCommand(trailUseCmd)
	trailCmd.AddCommand(trailClearCmd)
	trailCmd.AddCommand(trailImportsCmd)
}
