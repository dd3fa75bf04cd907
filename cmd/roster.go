package cmd

import (
	"encoding/json"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Generate a simulated student roster as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")

		rng := rand.New(rand.NewPCG(seed, 0))
		students := roster.Generate(rng, count)

		type entry struct {
			roster.Student
			Raw any `json:"features"`
		}
		out := make([]entry, len(students))
		for i, st := range students {
			out[i] = entry{Student: st, Raw: st.Raw}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rosterCmd.Flags().Int("count", 50, "Number of students to generate")
	rosterCmd.Flags().Uint64("seed", 1, "Roster seed")
}
