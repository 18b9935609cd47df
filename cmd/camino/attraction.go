package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var attractionCmd = &cobra.Command{
	Use:   "attraction",
	Short: "Manage points of interest for the trail",
}

var flagAttractionMap string

var attractionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List points of interest",
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

		attractions, err := backend.Attractions(trail)
		if err != nil {
			return err
		}
		for _, a := range attractions {
			line := fmt.Sprintf("%d  %s  %s", a.ID, a.City, a.Name)
			if a.Map != "" {
				line += "  " + a.Map
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var attractionCitiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the distinct cities with attractions, sorted",
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

		cities, err := backend.AttractionCities(trail)
		if err != nil {
			return err
		}
		for _, city := range cities {
			fmt.Fprintln(cmd.OutOrStdout(), city)
		}
		return nil
	},
}

var attractionAddCmd = &cobra.Command{
	Use:   "add <city> <name>",
	Short: "Add a point of interest",
	Args:  cobra.ExactArgs(2),
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

		id, err := backend.AddAttraction(trail, args[0], args[1], flagAttractionMap)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added attraction %s (id %d)\n", args[1], id)
		return nil
	},
}

var attractionUpdateCmd = &cobra.Command{
	Use:   "update <id> <city> <name>",
	Short: "Rewrite a point of interest",
	Args:  cobra.ExactArgs(3),
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

		if err := backend.UpdateAttraction(trail, id, args[1], args[2], flagAttractionMap); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "attraction %d updated\n", id)
		return nil
	},
}

func init() {
	attractionAddCmd.Flags().StringVar(&flagAttractionMap, "map", "", "map reference URL")
	attractionUpdateCmd.Flags().StringVar(&flagAttractionMap, "map", "", "map reference URL")

	attractionCmd.AddCommand(attractionListCmd)
	attractionCmd.AddCommand(attractionCitiesCmd)
	attractionCmd.AddCommand(attractionAddCmd)
	attractionCmd.AddCommand(attractionUpdateCmd)
}
