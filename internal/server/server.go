// Package server exposes the scoring pipeline as a JSON REST API for a
// counseling dashboard. It owns an in-memory roster with precomputed
// assessments; all scoring logic lives in the engine and the packages
// beneath it.
package server

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/logging"
	"github.com/abhisek/stresswatch/internal/roster"
	"github.com/abhisek/stresswatch/internal/store"
)

// Config configures a Server. Engine is required; everything else has a
// usable default.
type Config struct {
	Engine *engine.Engine
	Events store.EventRepo
	Logger *logging.Logger

	// RosterSize is the number of simulated students loaded at startup
	// and on reset. Zero means 50.
	RosterSize int

	// Seed makes the simulated roster reproducible. Zero seeds from
	// the current time.
	Seed uint64

	// TrendWeeks is the length of the simulated stress history. Zero
	// means 8.
	TrendWeeks int
}

const (
	defaultRosterSize = 50
	defaultTrendWeeks = 8
)

// Server is the HTTP surface. Roster state is guarded by rosterStore.
type Server struct {
	cfg       Config
	fixedSeed bool
	engine    *engine.Engine
	events    store.EventRepo
	logger    *logging.Logger
	router    chi.Router
	roster    *rosterStore
}

// NewServer creates a Server and loads the initial roster.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.RosterSize <= 0 {
		cfg.RosterSize = defaultRosterSize
	}
	if cfg.TrendWeeks <= 0 {
		cfg.TrendWeeks = defaultTrendWeeks
	}
	fixedSeed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("server")
	}

	s := &Server{
		cfg:       cfg,
		fixedSeed: fixedSeed,
		engine:    cfg.Engine,
		events:    cfg.Events,
		logger:    logger,
		router:    chi.NewRouter(),
		roster:    newRosterStore(),
	}

	if err := s.loadRoster(ctx); err != nil {
		return nil, err
	}

	s.routes()
	return s, nil
}

// loadRoster generates a fresh simulated roster and precomputes every
// assessment and trend so reads never trigger scoring work.
func (s *Server) loadRoster(ctx context.Context) error {
	rng := rand.New(rand.NewPCG(s.cfg.Seed, 0))
	students := roster.Generate(rng, s.cfg.RosterSize)

	recs := make([]engine.Record, len(students))
	for i, st := range students {
		recs[i] = engine.Record{StudentID: st.ID, Raw: st.Raw}
	}
	assessments, err := s.engine.AssessBatch(ctx, recs)
	if err != nil {
		return err
	}

	trends := make(map[int][]roster.TrendPoint, len(students))
	for i, st := range students {
		trends[st.ID] = roster.Trend(rng, assessments[i].Fusion.FinalScore, s.cfg.TrendWeeks)
	}

	s.roster.replace(students, assessments, trends)
	s.logger.Info("roster loaded", logging.F("students", len(students)))
	return nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)
	r.Options("/*", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", s.handleHealth)
	r.Get("/students", s.handleListStudents)
	r.Get("/students/at-risk", s.handleAtRiskStudents)
	r.Get("/risk/{studentID}", s.handleRiskDetail)
	r.Get("/stats", s.handleStats)
	r.Post("/simulate/what-if", s.handleWhatIf)
	r.Post("/ingest/attendance", s.handleIngestAttendance)
	r.Post("/ingest/assignment", s.handleIngestAssignment)
	r.Post("/reset", s.handleReset)
	r.Get("/events", s.handleEvents)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.router.ServeHTTP(w, r)
	s.logger.Info("request",
		logging.F("method", r.Method),
		logging.F("path", r.URL.Path),
		logging.F("durationMs", time.Since(start).Milliseconds()),
	)
}

// HTTPServer wraps the Server in an *http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
