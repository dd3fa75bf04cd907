package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score <features.json>",
	Short: "Score a single student record",
	Long:  "Reads a raw feature record from a JSON file (or - for stdin), runs the full assessment and prints the result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readRawFeatures(args[0])
		if err != nil {
			return err
		}

		rulesOnly, _ := cmd.Flags().GetBool("rules-only")

		var events store.EventRepo
		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				events, _ = st.EventRepo()
			}
		}

		mlCfg := predictor.ConfigFromEnv()
		var pred predictor.Predictor
		if !rulesOnly {
			p, err := predictor.New(cmd.Context(), mlCfg, events)
			if err != nil {
				fmt.Fprintln(os.Stderr, "classifier not configured, scoring rules-only:", err)
			} else {
				pred = p
			}
		}

		eng := engine.New(engine.Options{
			Predictor:      pred,
			Events:         events,
			PredictTimeout: mlCfg.Timeout,
		})
		a := eng.Assess(cmd.Context(), 0, raw)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

func readRawFeatures(path string) (features.Raw, error) {
	var raw features.Raw

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return raw, fmt.Errorf("read features: %w", err)
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parse features: %w", err)
	}
	return raw, nil
}

func init() {
	scoreCmd.Flags().Bool("rules-only", false, "Skip the ML classifier")
}
