package predictor

import (
	"context"
	"sync"

	"github.com/abhisek/stresswatch/internal/features"
)

// MockResponse is a canned response for the MockPredictor.
type MockResponse struct {
	Prediction *Prediction
	Err        error
}

// MockPredictor is a deterministic Predictor for tests and offline use.
// Canned responses are returned in FIFO order; when the queue is empty it
// derives a prediction from the features with a fixed heuristic, so a
// "mock" provider still produces stable, plausible output without any
// network. All calls are recorded.
type MockPredictor struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []features.StudentFeatures
}

// NewMockPredictor creates a MockPredictor with the given canned responses.
func NewMockPredictor(responses ...MockResponse) *MockPredictor {
	return &MockPredictor{responses: responses}
}

func (m *MockPredictor) Predict(_ context.Context, f features.StudentFeatures) (*Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, f)

	if len(m.responses) > 0 {
		resp := m.responses[0]
		m.responses = m.responses[1:]
		if resp.Err != nil {
			return nil, resp.Err
		}
		return resp.Prediction, nil
	}

	return heuristicPrediction(f), nil
}

// ModelID returns "mock".
func (m *MockPredictor) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockPredictor) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Predict calls made.
func (m *MockPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// heuristicPrediction maps features onto a class with a crude fixed
// heuristic. Only the mock uses it; real scoring weight lives in the rule
// table and the fusion formula.
func heuristicPrediction(f features.StudentFeatures) *Prediction {
	strain := 0
	if f.AttendanceRate < 70 {
		strain += 2
	} else if f.AttendanceRate < 80 {
		strain++
	}
	if f.LateSubmissions >= 2 {
		strain++
	}
	if f.MissedSubmissions > 0 {
		strain++
	}
	if f.Psych.Reported && (f.Psych.AnxietyLevel > 15 || f.Psych.DepressionScore > 18) {
		strain += 2
	}

	class := ClassLow
	switch {
	case strain >= 4:
		class = ClassHigh
	case strain >= 2:
		class = ClassModerate
	}

	return &Prediction{
		Class:      class,
		Confidence: 0.85,
		Attributions: []Attribution{
			{Feature: "attendance_rate", Impact: (75 - f.AttendanceRate) / 100},
			{Feature: "missed_submissions", Impact: float64(f.MissedSubmissions) * 0.1},
			{Feature: "late_submissions", Impact: float64(f.LateSubmissions) * 0.05},
		},
	}
}
