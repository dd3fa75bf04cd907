package cmd

import (
	"github.com/abhisek/stresswatch/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stresswatch",
	Short: "Explainable student stress early-warning system",
	Long:  "Stresswatch scores student behavioral signals with an explainable rule engine, fuses in ML risk predictions, and serves the results to a counseling dashboard.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides STRESSWATCH_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then STRESSWATCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
