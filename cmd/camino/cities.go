package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the named stops on the trail, sorted alphabetically",
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

		cities, err := backend.HikingCities(trail)
		if err != nil {
			return err
		}
		for _, city := range cities {
			fmt.Fprintln(cmd.OutOrStdout(), city)
		}
		return nil
	},
}
