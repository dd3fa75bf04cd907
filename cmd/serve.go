package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/logging"
	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/server"
	"github.com/abhisek/stresswatch/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		students, _ := cmd.Flags().GetInt("students")
		seed, _ := cmd.Flags().GetUint64("seed")

		logger := logging.New("stresswatch")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		mlCfg := predictor.ConfigFromEnv()
		pred, err := predictor.New(ctx, mlCfg, events)
		if err != nil {
			logger.Warn("classifier not configured, scoring rules-only",
				logging.F("error", err.Error()))
			pred = nil
		}

		eng := engine.New(engine.Options{
			Predictor:      pred,
			Events:         events,
			PredictTimeout: mlCfg.Timeout,
		})

		srv, err := server.NewServer(ctx, server.Config{
			Engine:     eng,
			Events:     events,
			Logger:     logger,
			RosterSize: students,
			Seed:       seed,
		})
		if err != nil {
			return fmt.Errorf("init server: %w", err)
		}

		httpSrv := srv.HTTPServer(addr)
		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", logging.F("addr", addr))
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(sctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "Listen address")
	serveCmd.Flags().Int("students", 50, "Number of simulated students to load")
	serveCmd.Flags().Uint64("seed", 0, "Roster seed (0 = random)")
}
