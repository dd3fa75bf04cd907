package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the ingestion and prediction event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		studentID, _ := cmd.Flags().GetInt("student")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		ctx := cmd.Context()
		records, err := repo.RecentIngests(ctx, store.QueryOpts{Limit: limit, StudentID: studentID})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No ingestion events found.")
		} else {
			fmt.Printf("%-6s  %-19s  %-10s  %-8s  %-38s  %s\n",
				"Seq", "Timestamp", "Kind", "Student", "Detail", "Risk")
			fmt.Println(strings.Repeat("─", 100))
			for _, rec := range records {
				fmt.Printf("%-6d  %-19s  %-10s  %-8d  %-38s  %d -> %d\n",
					rec.Sequence,
					rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
					rec.Kind,
					rec.StudentID,
					truncate(rec.Detail, 38),
					rec.RiskBefore,
					rec.RiskAfter,
				)
			}
		}

		total, failed, err := repo.PredictionStats(ctx)
		if err != nil {
			return fmt.Errorf("query prediction stats: %w", err)
		}
		fmt.Printf("\nClassifier calls: %d total, %d failed\n", total, failed)
		return nil
	},
}

func init() {
	eventsCmd.Flags().IntP("limit", "n", 50, "Number of events to show")
	eventsCmd.Flags().Int("student", 0, "Filter by student id")
}
