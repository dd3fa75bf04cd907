package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/stresswatch/internal/advice"
	"github.com/abhisek/stresswatch/internal/anomaly"
	"github.com/abhisek/stresswatch/internal/collapse"
	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/logging"
	"github.com/abhisek/stresswatch/internal/roster"
	"github.com/abhisek/stresswatch/internal/rules"
	"github.com/abhisek/stresswatch/internal/store"
	"github.com/abhisek/stresswatch/internal/whatif"
)

type studentSummary struct {
	StudentID     int            `json:"studentId"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Department    string         `json:"department"`
	Year          int            `json:"year"`
	RiskScore     int            `json:"riskScore"`
	RiskLevel     fusion.Level   `json:"riskLevel"`
	AnomalyScore  float64        `json:"anomalyScore"`
	CollapseScore int            `json:"collapseScore"`
	CollapseLevel collapse.Level `json:"collapseLevel"`
	FlagCount     int            `json:"flagCount,omitempty"`
}

type studentRiskDetail struct {
	StudentID       int                      `json:"studentId"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	Department      string                   `json:"department"`
	Year            int                      `json:"year"`
	Features        features.StudentFeatures `json:"features"`
	RiskScore       int                      `json:"riskScore"`
	RiskLevel       fusion.Level             `json:"riskLevel"`
	AnomalyScore    float64                  `json:"anomalyScore"`
	TriggeredRules  []rules.TriggeredRule    `json:"triggeredRules"`
	ML              any                      `json:"mlResult,omitempty"`
	Collapse        collapse.Signal          `json:"collapse"`
	Recommendations []advice.Recommendation  `json:"recommendations"`
	StressTrend     []roster.TrendPoint      `json:"stressTrend"`
}

func summarize(st *roster.Student, a *engine.Assessment, withFlags bool) studentSummary {
	s := studentSummary{
		StudentID:     st.ID,
		Name:          st.Name,
		Email:         st.Email,
		Department:    st.Department,
		Year:          st.Year,
		RiskScore:     a.Fusion.FinalScore,
		RiskLevel:     a.Fusion.FinalLevel,
		AnomalyScore:  anomaly.Score(a.Features),
		CollapseScore: a.Collapse.Score,
		CollapseLevel: a.Collapse.Level,
	}
	if withFlags {
		s.FlagCount = len(a.Fusion.Rules.Triggered)
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  "stresswatch",
		"status":   "ok",
		"students": s.roster.size(),
	})
}

func (s *Server) handleListStudents(w http.ResponseWriter, _ *http.Request) {
	students, assessments := s.roster.all()

	summaries := make([]studentSummary, len(students))
	for i := range students {
		summaries[i] = summarize(students[i], assessments[i], false)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"students": summaries,
		"stats":    engine.Summarize(assessments),
	})
}

func (s *Server) handleAtRiskStudents(w http.ResponseWriter, _ *http.Request) {
	students, assessments := s.roster.all()

	atRisk := make([]studentSummary, 0)
	for i := range students {
		if assessments[i].Fusion.FinalLevel == fusion.LevelLow {
			continue
		}
		atRisk = append(atRisk, summarize(students[i], assessments[i], true))
	}
	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].RiskScore > atRisk[j].RiskScore
	})

	writeJSON(w, http.StatusOK, map[string]any{"students": atRisk})
}

func (s *Server) handleRiskDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "studentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	st, a, ok := s.roster.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	detail := studentRiskDetail{
		StudentID:       st.ID,
		Name:            st.Name,
		Email:           st.Email,
		Department:      st.Department,
		Year:            st.Year,
		Features:        a.Features,
		RiskScore:       a.Fusion.FinalScore,
		RiskLevel:       a.Fusion.FinalLevel,
		AnomalyScore:    anomaly.Score(a.Features),
		TriggeredRules:  a.Fusion.Rules.Triggered,
		Collapse:        a.Collapse,
		Recommendations: a.Recommendations,
		StressTrend:     s.roster.trend(id),
	}
	if a.Fusion.ML != nil {
		detail.ML = a.Fusion.ML
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_, assessments := s.roster.all()
	stats := engine.Summarize(assessments)

	resp := map[string]any{"stats": stats}
	if s.events != nil {
		total, failed, err := s.events.PredictionStats(r.Context())
		if err == nil {
			resp["predictions"] = map[string]int{"total": total, "failed": failed}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type whatIfRequest struct {
	StudentID int              `json:"studentId"`
	Overrides whatif.Overrides `json:"overrides"`
}

type whatIfResponse struct {
	StudentID      int                   `json:"studentId"`
	OriginalRisk   int                   `json:"originalRisk"`
	OriginalLevel  fusion.Level          `json:"originalLevel"`
	NewRisk        int                   `json:"newRisk"`
	NewLevel       fusion.Level          `json:"newLevel"`
	ImpactPoints   int                   `json:"impactPoints"`
	TriggeredRules []rules.TriggeredRule `json:"triggeredRules"`
}

func (s *Server) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var req whatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	_, a, ok := s.roster.get(req.StudentID)
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	out := whatif.Simulate(a.Features, a.Fusion, req.Overrides)

	writeJSON(w, http.StatusOK, whatIfResponse{
		StudentID:      req.StudentID,
		OriginalRisk:   a.Fusion.FinalScore,
		OriginalLevel:  a.Fusion.FinalLevel,
		NewRisk:        out.Simulated.FinalScore,
		NewLevel:       out.Simulated.FinalLevel,
		ImpactPoints:   out.ImpactPoints,
		TriggeredRules: out.Simulated.Rules.Triggered,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if !s.fixedSeed {
		s.cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := s.loadRoster(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, assessments := s.roster.all()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"message":        "roster regenerated",
		"studentsLoaded": len(assessments),
		"stats":          engine.Summarize(assessments),
	})
}

type ingestionEvent struct {
	EventID    string `json:"eventId"`
	Type       string `json:"type"`
	StudentID  int    `json:"studentId"`
	Detail     string `json:"detail"`
	Timestamp  string `json:"timestamp"`
	RiskChange int    `json:"riskChange"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		writeError(w, http.StatusServiceUnavailable, "event log not configured")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := s.events.RecentIngests(r.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		s.logger.Error("querying ingest events", logging.F("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "event query failed")
		return
	}

	events := make([]ingestionEvent, len(records))
	for i, rec := range records {
		events[i] = ingestionEvent{
			EventID:    rec.EventID,
			Type:       rec.Kind,
			StudentID:  rec.StudentID,
			Detail:     rec.Detail,
			Timestamp:  rec.Timestamp.UTC().Format(time.RFC3339),
			RiskChange: rec.RiskAfter - rec.RiskBefore,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}
