package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailforge/camino/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <waypoints.csv>",
	Short: "Import a waypoint CSV, replacing the trail's route",
	Long: `Import reads a comma-delimited waypoint file and replaces the full
waypoint set of the target trail. The first line must be a header carrying
latitude, longitude, elevation, distance, hike_city, gain, loss, pace_dist,
pace_gain, fme, and facilities in any order. Fields are not quoted; commas
inside a field are not supported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read csv: %w", err)
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

		report, err := backend.ImportWaypoints(trail, string(payload))
		if errors.Is(err, types.ErrNoRowsImported) {
			fmt.Fprintf(cmd.OutOrStdout(),
				"no rows imported for %s (%d skipped); waypoint table is now empty\n",
				trail, report.Skipped)
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d waypoints for %s (%d skipped), run %s\n",
			report.Imported, trail, report.Skipped, report.ImportID)
		return nil
	},
}
