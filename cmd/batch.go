package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/roster"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a simulated roster and print the risk table",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		withML, _ := cmd.Flags().GetBool("ml")

		rng := rand.New(rand.NewPCG(seed, 0))
		students := roster.Generate(rng, count)

		mlCfg := predictor.ConfigFromEnv()
		var pred predictor.Predictor
		if withML {
			p, err := predictor.New(cmd.Context(), mlCfg, nil)
			if err != nil {
				return fmt.Errorf("init classifier: %w", err)
			}
			pred = p
		}
		eng := engine.New(engine.Options{Predictor: pred, PredictTimeout: mlCfg.Timeout})

		recs := make([]engine.Record, len(students))
		for i, st := range students {
			recs[i] = engine.Record{StudentID: st.ID, Raw: st.Raw}
		}
		assessments, err := eng.AssessBatch(cmd.Context(), recs)
		if err != nil {
			return fmt.Errorf("batch scoring: %w", err)
		}

		fmt.Printf("%-6s  %-22s  %-24s  %5s  %-8s  %8s  %-8s  %s\n",
			"ID", "Name", "Department", "Risk", "Level", "Collapse", "Band", "Flags")
		fmt.Println(strings.Repeat("─", 100))

		for i, st := range students {
			a := assessments[i]
			fmt.Printf("%-6d  %-22s  %-24s  %5d  %-8s  %8d  %-8s  %d\n",
				st.ID,
				truncate(st.Name, 22),
				truncate(st.Department, 24),
				a.Fusion.FinalScore,
				a.Fusion.FinalLevel,
				a.Collapse.Score,
				a.Collapse.Level,
				len(a.Fusion.Rules.Triggered),
			)
		}

		stats := engine.Summarize(assessments)
		fmt.Println(strings.Repeat("─", 100))
		fmt.Printf("Total %d  High %d  Moderate %d  Low %d  AvgRisk %.1f  CollapseWatch %d  CollapseElevated %d\n",
			stats.TotalStudents, stats.HighRisk, stats.ModerateRisk, stats.LowRisk,
			stats.AverageRiskScore, stats.CollapseWatch, stats.CollapseElevated)
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	batchCmd.Flags().Int("count", 50, "Number of students to generate")
	batchCmd.Flags().Uint64("seed", 1, "Roster seed")
	batchCmd.Flags().Bool("ml", false, "Call the ML classifier for each student")
}
