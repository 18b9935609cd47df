package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trailforge/camino/pkg/types"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update trip settings for the trail",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the trip settings row",
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

		s, err := backend.LoadTripSettings(trail)
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "no trip settings saved for %s\n", trail)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "trail:          %s\n", s.SelectTrail)
		fmt.Fprintf(cmd.OutOrStdout(), "title:          %s\n", s.TripTitle)
		fmt.Fprintf(cmd.OutOrStdout(), "distance uom:   %s\n", s.DistanceUOM)
		fmt.Fprintf(cmd.OutOrStdout(), "temp uom:       %s\n", s.TempUOM)
		fmt.Fprintf(cmd.OutOrStdout(), "weight uom:     %s\n", s.WeightUOM)
		fmt.Fprintf(cmd.OutOrStdout(), "planning range: %.1f\n", s.PlanningRange)
		return nil
	},
}

var (
	flagTitle         string
	flagDistanceUOM   string
	flagTempUOM       string
	flagWeightUOM     string
	flagPlanningRange float64
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the trip settings row",
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

		// Start from the saved row (or defaults) so unset flags keep
		// their prior values.
		s, err := backend.LoadTripSettings(trail)
		if errors.Is(err, types.ErrNotFound) {
			s = types.NewTripSettings(trail, trail)
		} else if err != nil {
			return err
		}

		if cmd.Flags().Changed("title") {
			s.TripTitle = flagTitle
		}
		if cmd.Flags().Changed("distance-uom") {
			s.DistanceUOM = flagDistanceUOM
		}
		if cmd.Flags().Changed("temp-uom") {
			s.TempUOM = flagTempUOM
		}
		if cmd.Flags().Changed("weight-uom") {
			s.WeightUOM = flagWeightUOM
		}
		if cmd.Flags().Changed("planning-range") {
			s.PlanningRange = flagPlanningRange
		}

		if err := backend.SaveTripSettings(trail, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "trip settings saved for %s\n", trail)
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&flagTitle, "title", "", "trip display title")
	settingsSetCmd.Flags().StringVar(&flagDistanceUOM, "distance-uom", "", "distance unit: Km or Mi")
	settingsSetCmd.Flags().StringVar(&flagTempUOM, "temp-uom", "", "temperature unit: C or F")
	settingsSetCmd.Flags().StringVar(&flagWeightUOM, "weight-uom", "", "weight unit: Kg or Lb")
	settingsSetCmd.Flags().Float64Var(&flagPlanningRange, "planning-range", 0, "planning range distance")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
