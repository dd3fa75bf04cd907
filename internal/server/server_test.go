package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/logging"
	"github.com/abhisek/stresswatch/internal/predictor"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(context.Background(), Config{
		Engine:     engine.New(engine.Options{}),
		Logger:     logging.NewWithWriter("test", io.Discard),
		RosterSize: 20,
		Seed:       7,
	})
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(20), body["students"])
}

func TestListStudents(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	students, ok := body["students"].([]any)
	require.True(t, ok)
	assert.Len(t, students, 20)

	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(20), stats["totalStudents"])

	first := students[0].(map[string]any)
	for _, key := range []string{"studentId", "name", "email", "department", "riskScore", "riskLevel", "anomalyScore"} {
		assert.Contains(t, first, key)
	}

	score := first["anomalyScore"].(float64)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestAtRiskStudents_SortedAndFiltered(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/students/at-risk", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	students, ok := body["students"].([]any)
	require.True(t, ok)

	prev := 101.0
	for _, raw := range students {
		st := raw.(map[string]any)
		assert.NotEqual(t, "Low", st["riskLevel"])
		score := st["riskScore"].(float64)
		assert.LessOrEqual(t, score, prev, "must be sorted by risk descending")
		prev = score
	}
}

func TestRiskDetail(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/risk/1000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(1000), body["studentId"])
	assert.Contains(t, body, "features")
	assert.Contains(t, body, "anomalyScore")
	assert.Contains(t, body, "collapse")
	assert.Contains(t, body, "recommendations")

	trend, ok := body["stressTrend"].([]any)
	require.True(t, ok)
	assert.Len(t, trend, defaultTrendWeeks)
}

func TestRiskDetail_NotFound(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodGet, "/risk/99999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodGet, "/risk/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWhatIf_FixingAttendance(t *testing.T) {
	srv := testServer(t)

	// Force a known-bad baseline first so the override has something to fix.
	rec, _ := doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
		"studentId":      1000,
		"attendanceRate": 40,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := doJSON(t, srv, http.MethodPost, "/simulate/what-if", map[string]any{
		"studentId": 1000,
		"overrides": map[string]any{"attendanceRate": 95},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	original := body["originalRisk"].(float64)
	simulated := body["newRisk"].(float64)
	assert.Less(t, simulated, original, "fixing attendance must reduce risk")
	assert.Equal(t, simulated-original, body["impactPoints"].(float64))
}

func TestWhatIf_DoesNotMutateState(t *testing.T) {
	srv := testServer(t)

	_, before := doJSON(t, srv, http.MethodGet, "/risk/1000", nil)
	doJSON(t, srv, http.MethodPost, "/simulate/what-if", map[string]any{
		"studentId": 1000,
		"overrides": map[string]any{"attendanceRate": 0},
	})
	_, after := doJSON(t, srv, http.MethodGet, "/risk/1000", nil)

	assert.Equal(t, before["riskScore"], after["riskScore"], "simulation must not change stored state")
}

func TestWhatIf_UnknownStudent(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/simulate/what-if", map[string]any{"studentId": 99999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngestAttendance_UpdatesRisk(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
		"studentId":      1000,
		"attendanceRate": 20,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(20), body["newAttendance"])
	assert.NotEmpty(t, body["eventId"])

	// Crashing attendance to 20% must flag the student.
	newScore := body["newRiskScore"].(float64)
	assert.GreaterOrEqual(t, newScore, float64(20))

	_, after := doJSON(t, srv, http.MethodGet, "/risk/1000", nil)
	assert.Equal(t, newScore, after["riskScore"], "stored assessment must reflect the ingestion")
}

func TestIngestAttendance_Validation(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
		"studentId":      1000,
		"attendanceRate": 150,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
		"studentId":      99999,
		"attendanceRate": 80,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngestAssignment_MissingSubmission(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/ingest/assignment", map[string]any{
		"studentId":       1001,
		"status":          "missing",
		"taskCountChange": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	missed := body["missedSubmissions"].(map[string]any)
	assert.Equal(t, missed["previous"].(float64)+1, missed["current"].(float64))

	workload := body["weeklyWorkload"].(map[string]any)
	assert.Equal(t, workload["previous"].(float64)+1, workload["current"].(float64))
}

func TestIngestAssignment_InvalidStatus(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/ingest/assignment", map[string]any{
		"studentId": 1001,
		"status":    "whenever",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReset_ReloadsRoster(t *testing.T) {
	srv := testServer(t)

	// Mutate one student, then reset.
	doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
		"studentId":      1000,
		"attendanceRate": 5,
	})

	rec, body := doJSON(t, srv, http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(20), body["studentsLoaded"])

	// Fixed seed: the regenerated roster matches the original, so the
	// mutation is gone.
	_, fresh := doJSON(t, srv, http.MethodGet, "/risk/1000", nil)
	features := fresh["features"].(map[string]any)
	assert.NotEqual(t, float64(5), features["attendanceRate"])
}

func TestEvents_UnavailableWithoutRepo(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodGet, "/events", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStats(t *testing.T) {
	srv := testServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := body["stats"].(map[string]any)
	total := stats["lowRisk"].(float64) + stats["moderateRisk"].(float64) + stats["highRisk"].(float64)
	assert.Equal(t, float64(20), total, "level counts must partition the roster")
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t)

	rec, _ := doJSON(t, srv, http.MethodGet, "/students", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/students", nil)
	opt := httptest.NewRecorder()
	srv.ServeHTTP(opt, req)
	assert.Equal(t, http.StatusNoContent, opt.Code)
	assert.Equal(t, "GET, POST, OPTIONS", opt.Header().Get("Access-Control-Allow-Methods"))
}

// stallingClassifier parks inside Predict until released, but only after
// arming so roster load stays fast.
type stallingClassifier struct {
	armed   atomic.Bool
	started chan struct{}
	release chan struct{}
}

func (c *stallingClassifier) Predict(ctx context.Context, _ features.StudentFeatures) (*predictor.Prediction, error) {
	if !c.armed.Load() {
		return nil, errors.New("not armed")
	}
	select {
	case c.started <- struct{}{}:
	default:
	}
	select {
	case <-c.release:
	case <-ctx.Done():
	}
	return nil, errors.New("stalled")
}

func (c *stallingClassifier) ModelID() string { return "stalling" }

func TestIngest_SlowClassifierDoesNotBlockReads(t *testing.T) {
	cls := &stallingClassifier{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	var releaseOnce sync.Once
	releaseCls := func() { releaseOnce.Do(func() { close(cls.release) }) }
	t.Cleanup(releaseCls)

	srv, err := NewServer(context.Background(), Config{
		Engine: engine.New(engine.Options{
			Predictor:      cls,
			PredictTimeout: 30 * time.Second,
		}),
		Logger:     logging.NewWithWriter("test", io.Discard),
		RosterSize: 5,
		Seed:       7,
	})
	require.NoError(t, err)

	cls.armed.Store(true)

	ingestDone := make(chan int, 1)
	go func() {
		rec, _ := doJSON(t, srv, http.MethodPost, "/ingest/attendance", map[string]any{
			"studentId":      1000,
			"attendanceRate": 40,
		})
		ingestDone <- rec.Code
	}()

	<-cls.started

	readDone := make(chan int, 1)
	go func() {
		rec, _ := doJSON(t, srv, http.MethodGet, "/students", nil)
		readDone <- rec.Code
	}()

	select {
	case code := <-readDone:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(2 * time.Second):
		t.Fatal("read endpoint blocked behind an in-flight ingestion re-score")
	}

	releaseCls()
	assert.Equal(t, http.StatusOK, <-ingestDone)
}
