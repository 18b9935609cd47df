package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the camino data store",
	Long:  "Create configuration and data directories, then initialize the database file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		fmt.Fprintln(cmd.OutOrStdout(), "camino store initialized")
		return nil
	},
}
