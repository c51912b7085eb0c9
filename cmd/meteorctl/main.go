// meteorctl runs impact calculations from the command line, without a
// server. It shares the physics engine with the HTTP API, so results match
// the /api/v1/simulate endpoint exactly.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Cryptdroid/meteor/internal/physics"
	"github.com/Cryptdroid/meteor/internal/presets"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "meteorctl",
		Short:         "Asteroid impact calculations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(simulateCmd(), presetsCmd(), classifyCmd())
	return cmd
}

func simulateCmd() *cobra.Command {
	var (
		params     physics.ImpactParameters
		presetName string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the full impact pipeline for one scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if presetName != "" {
				preset, ok := presets.Find(presetName)
				if !ok {
					return fmt.Errorf("unknown preset %q, see 'meteorctl presets'", presetName)
				}
				params = preset.Parameters
			}

			engine := physics.NewEngine(physics.DefaultConstants(), nil)
			result, err := engine.Simulate(params)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&params.DiameterM, "diameter", 100, "projectile diameter in meters")
	cmd.Flags().Float64Var(&params.DensityKgM3, "density", 0, "projectile density in kg/m3 (0 selects the stony default)")
	cmd.Flags().Float64Var(&params.VelocityKmS, "velocity", 20, "entry velocity in km/s")
	cmd.Flags().Float64Var(&params.EntryAngleDeg, "angle", 45, "entry angle in degrees from horizontal")
	cmd.Flags().Float64Var(&params.PopulationDensityPerKm2, "population", 0, "population density per km2 (0 selects the default)")
	cmd.Flags().BoolVar(&params.TargetIsWater, "water", false, "impact an ocean target")
	cmd.Flags().StringVar(&presetName, "preset", "", "use a named preset scenario instead of flags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")

	return cmd
}

func printResult(cmd *cobra.Command, result *physics.SimulationResult) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Classification:\t%s\n", result.Classification)
	fmt.Fprintf(w, "Energy:\t%.4g Mt TNT (%.4g J)\n", result.Energy.Megatons, result.Energy.Joules)
	fmt.Fprintf(w, "Crater:\t%.4g m diameter, %.4g m deep\n", result.Crater.DiameterM, result.Crater.DepthM)
	fmt.Fprintf(w, "Seismic:\tM %.1f, felt to %.4g km\n", result.Seismic.Magnitude, result.Seismic.AffectedRadiusKm)
	if result.Tsunami != nil {
		fmt.Fprintf(w, "Tsunami:\t%.4g m waves, reaching %.4g km\n", result.Tsunami.WaveHeightM, result.Tsunami.AffectedRadiusKm)
	}
	fmt.Fprintf(w, "Fireball:\t%.4g km radius\n", result.Atmospheric.FireballRadiusKm)
	fmt.Fprintf(w, "Overpressure:\t%.4g km radius\n", result.Atmospheric.OverpressureRadiusKm)
	fmt.Fprintf(w, "Thermal:\t%.4g km radius\n", result.Atmospheric.ThermalRadiusKm)
	fmt.Fprintf(w, "Affected:\t%d people\n", result.Casualties.AffectedPopulation)
	fmt.Fprintf(w, "Casualties:\t%d estimated\n", result.Casualties.EstimatedCasualties)
	w.Flush()
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIAMETER\tVELOCITY\tANGLE\tDESCRIPTION")
			for _, p := range presets.List() {
				fmt.Fprintf(w, "%s\t%.0f m\t%.2f km/s\t%.0f°\t%s\n",
					p.Name,
					p.Parameters.DiameterM,
					p.Parameters.VelocityKmS,
					p.Parameters.EntryAngleDeg,
					p.Description,
				)
			}
			return w.Flush()
		},
	}
}

func classifyCmd() *cobra.Command {
	var megatons float64

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Map a megaton yield to its severity class",
		RunE: func(cmd *cobra.Command, args []string) error {
			if megatons < 0 {
				return fmt.Errorf("megatons must be non-negative")
			}
			engine := physics.NewEngine(physics.DefaultConstants(), nil)
			fmt.Fprintln(cmd.OutOrStdout(), engine.Classify(megatons))
			return nil
		},
	}

	cmd.Flags().Float64Var(&megatons, "megatons", 0, "impact energy in megatons of TNT")
	cmd.MarkFlagRequired("megatons")

	return cmd
}
