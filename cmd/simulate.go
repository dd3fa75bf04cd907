package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/rules"
	"github.com/abhisek/stresswatch/internal/whatif"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <features.json>",
	Short: "Run a rules-only what-if simulation",
	Long:  "Scores the baseline record, applies the override flags and prints both results with the point impact. The ML classifier is never called.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readRawFeatures(args[0])
		if err != nil {
			return err
		}

		f := features.Normalize(raw)
		baseline := fusion.Fuse(rules.Evaluate(f), nil)

		var ov whatif.Overrides
		if cmd.Flags().Changed("attendance") {
			v, _ := cmd.Flags().GetFloat64("attendance")
			ov.AttendanceRate = &v
		}
		if cmd.Flags().Changed("late") {
			v, _ := cmd.Flags().GetInt("late")
			ov.LateSubmissions = &v
		}
		if cmd.Flags().Changed("missed") {
			v, _ := cmd.Flags().GetInt("missed")
			ov.MissedSubmissions = &v
		}
		if cmd.Flags().Changed("workload") {
			v, _ := cmd.Flags().GetInt("workload")
			ov.WeeklyWorkload = &v
		}

		out := whatif.Simulate(f, baseline, ov)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"baseline":  baseline,
			"simulated": out.Simulated,
			"impact":    out.ImpactPoints,
		})
	},
}

func init() {
	simulateCmd.Flags().Float64("attendance", 0, "Override attendance rate")
	simulateCmd.Flags().Int("late", 0, "Override late submission count")
	simulateCmd.Flags().Int("missed", 0, "Override missed submission count")
	simulateCmd.Flags().Int("workload", 0, "Override weekly workload")
}
