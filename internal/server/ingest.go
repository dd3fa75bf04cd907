package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/logging"
	"github.com/abhisek/stresswatch/internal/roster"
	"github.com/abhisek/stresswatch/internal/store"
)

type attendanceIngestRequest struct {
	StudentID      int     `json:"studentId"`
	AttendanceRate float64 `json:"attendanceRate"`
}

type attendanceIngestResponse struct {
	Success            bool         `json:"success"`
	StudentID          int          `json:"studentId"`
	EventID            string       `json:"eventId"`
	PreviousAttendance float64      `json:"previousAttendance"`
	NewAttendance      float64      `json:"newAttendance"`
	PreviousRiskScore  int          `json:"previousRiskScore"`
	NewRiskScore       int          `json:"newRiskScore"`
	RiskLevel          fusion.Level `json:"riskLevel"`
	RiskChange         int          `json:"riskChange"`
	TriggeredRules     []string     `json:"triggeredRules"`
}

// handleIngestAttendance applies a live attendance update. The student's
// current rate becomes the previous-period baseline so the behavior
// change rule sees the delta. The raw record is mutated under the roster
// lock, then re-scored outside it so a slow classifier never blocks
// read endpoints.
func (s *Server) handleIngestAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.AttendanceRate < 0 || req.AttendanceRate > 100 {
		writeError(w, http.StatusBadRequest, "attendanceRate must be between 0 and 100")
		return
	}

	var oldRate float64
	st, prev, ok := s.roster.update(req.StudentID, func(st *roster.Student) {
		oldRate = st.Raw.AttendanceRate
		rate := oldRate
		st.Raw.PreviousAttendanceRate = &rate
		st.Raw.AttendanceRate = req.AttendanceRate
	})
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	next := s.engine.Assess(r.Context(), st.ID, st.Raw)
	s.roster.setAssessment(st.ID, next)

	resp := attendanceIngestResponse{
		Success:            true,
		StudentID:          st.ID,
		PreviousAttendance: oldRate,
		NewAttendance:      req.AttendanceRate,
		PreviousRiskScore:  prev.Fusion.FinalScore,
		NewRiskScore:       next.Fusion.FinalScore,
		RiskLevel:          next.Fusion.FinalLevel,
		RiskChange:         next.Fusion.FinalScore - prev.Fusion.FinalScore,
		TriggeredRules:     next.Fusion.Rules.TriggeredIDs(),
	}

	resp.EventID = s.logIngest(r, store.IngestEventData{
		StudentID:  req.StudentID,
		Kind:       "attendance",
		Detail:     fmt.Sprintf("attendance %.1f -> %.1f", resp.PreviousAttendance, resp.NewAttendance),
		RiskBefore: resp.PreviousRiskScore,
		RiskAfter:  resp.NewRiskScore,
	})

	writeJSON(w, http.StatusOK, resp)
}

type assignmentIngestRequest struct {
	StudentID       int    `json:"studentId"`
	Status          string `json:"status"` // on_time, late, missing
	TaskCountChange int    `json:"taskCountChange"`
}

type submissionChange struct {
	Previous int `json:"previous"`
	Current  int `json:"current"`
}

type assignmentIngestResponse struct {
	Success           bool             `json:"success"`
	StudentID         int              `json:"studentId"`
	EventID           string           `json:"eventId"`
	SubmissionStatus  string           `json:"submissionStatus"`
	LateSubmissions   submissionChange `json:"lateSubmissions"`
	MissedSubmissions submissionChange `json:"missedSubmissions"`
	WeeklyWorkload    submissionChange `json:"weeklyWorkload"`
	PreviousRiskScore int              `json:"previousRiskScore"`
	NewRiskScore      int              `json:"newRiskScore"`
	RiskLevel         fusion.Level     `json:"riskLevel"`
	RiskChange        int              `json:"riskChange"`
	TriggeredRules    []string         `json:"triggeredRules"`
}

// handleIngestAssignment applies a live submission update and re-scores.
func (s *Server) handleIngestAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	switch req.Status {
	case "on_time", "late", "missing":
	default:
		writeError(w, http.StatusBadRequest, "status must be on_time, late or missing")
		return
	}

	var oldLate, oldMissed, oldWorkload int
	st, prev, ok := s.roster.update(req.StudentID, func(st *roster.Student) {
		oldLate = st.Raw.LateSubmissions
		oldMissed = st.Raw.MissedSubmissions
		oldWorkload = st.Raw.WeeklyWorkload

		switch req.Status {
		case "late":
			st.Raw.LateSubmissions++
		case "missing":
			st.Raw.MissedSubmissions++
		}
		st.Raw.WeeklyWorkload += req.TaskCountChange
		if st.Raw.WeeklyWorkload < 0 {
			st.Raw.WeeklyWorkload = 0
		}
	})
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	next := s.engine.Assess(r.Context(), st.ID, st.Raw)
	s.roster.setAssessment(st.ID, next)

	resp := assignmentIngestResponse{
		Success:           true,
		StudentID:         st.ID,
		SubmissionStatus:  req.Status,
		LateSubmissions:   submissionChange{oldLate, st.Raw.LateSubmissions},
		MissedSubmissions: submissionChange{oldMissed, st.Raw.MissedSubmissions},
		WeeklyWorkload:    submissionChange{oldWorkload, st.Raw.WeeklyWorkload},
		PreviousRiskScore: prev.Fusion.FinalScore,
		NewRiskScore:      next.Fusion.FinalScore,
		RiskLevel:         next.Fusion.FinalLevel,
		RiskChange:        next.Fusion.FinalScore - prev.Fusion.FinalScore,
		TriggeredRules:    next.Fusion.Rules.TriggeredIDs(),
	}

	resp.EventID = s.logIngest(r, store.IngestEventData{
		StudentID:  req.StudentID,
		Kind:       "assignment",
		Detail:     fmt.Sprintf("submission %s, workload %+d", req.Status, req.TaskCountChange),
		RiskBefore: resp.PreviousRiskScore,
		RiskAfter:  resp.NewRiskScore,
	})

	writeJSON(w, http.StatusOK, resp)
}

// logIngest appends the ingestion to the event log and returns the event
// id. Logging failures are reported but never fail the ingestion itself.
func (s *Server) logIngest(r *http.Request, data store.IngestEventData) string {
	data.EventID = uuid.NewString()
	if s.events == nil {
		return data.EventID
	}
	if err := s.events.AppendIngest(r.Context(), data); err != nil {
		s.logger.Error("logging ingest event",
			logging.F("studentId", data.StudentID),
			logging.F("error", err.Error()),
		)
	}
	return data.EventID
}
