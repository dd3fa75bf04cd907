package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/stresswatch/internal/advice"
	"github.com/abhisek/stresswatch/internal/collapse"
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/rules"
	"github.com/abhisek/stresswatch/internal/store"
)

// Assessment is the complete per-student output: the fused risk result,
// the parallel collapse signal, and the advice mapped from triggered rules.
type Assessment struct {
	StudentID       int                      `json:"studentId"`
	Features        features.StudentFeatures `json:"features"`
	Fusion          fusion.Result            `json:"fusion"`
	Collapse        collapse.Signal          `json:"collapse"`
	Recommendations []advice.Recommendation  `json:"recommendations"`
}

// Options configures an Engine. Predictor and Events are both optional:
// without a predictor every assessment is rules-only, and without an
// event repo nothing is logged.
type Options struct {
	Predictor predictor.Predictor
	Events    store.EventRepo

	// PredictTimeout bounds each classifier call. Zero means the
	// default of 10 seconds.
	PredictTimeout time.Duration

	// Concurrency bounds batch scoring goroutines. Zero means the
	// default of 8.
	Concurrency int
}

const (
	defaultPredictTimeout = 10 * time.Second
	defaultConcurrency    = 8
)

// Engine runs the full scoring pipeline. It holds no per-student state;
// every assessment is a pure function of the record handed in, which
// makes batch scoring an independent map over students.
type Engine struct {
	predictor      predictor.Predictor
	events         store.EventRepo
	predictTimeout time.Duration
	concurrency    int
}

// New creates an Engine.
func New(opts Options) *Engine {
	e := &Engine{
		predictor:      opts.Predictor,
		events:         opts.Events,
		predictTimeout: opts.PredictTimeout,
		concurrency:    opts.Concurrency,
	}
	if e.predictTimeout <= 0 {
		e.predictTimeout = defaultPredictTimeout
	}
	if e.concurrency <= 0 {
		e.concurrency = defaultConcurrency
	}
	return e
}

// Assess scores one student: normalize, evaluate rules, predict (with
// timeout and rules-only fallback), fuse, detect collapse, map advice.
// It always succeeds; the worst case is degraded explainability with no
// ML prediction attached.
func (e *Engine) Assess(ctx context.Context, studentID int, raw features.Raw) *Assessment {
	f := features.Normalize(raw)
	rr := rules.Evaluate(f)

	var pred *predictor.Prediction
	if e.predictor != nil {
		pred = e.predict(ctx, f)
	}

	fus := fusion.Fuse(rr, pred)
	sig := collapse.Detect(fus, f)

	a := &Assessment{
		StudentID:       studentID,
		Features:        f,
		Fusion:          fus,
		Collapse:        sig,
		Recommendations: advice.Recommend(rr.TriggeredIDs()),
	}

	e.logAssessment(ctx, a)
	return a
}

// predict calls the classifier under the configured timeout. Any failure
// means "ML unavailable": the prediction is dropped and scoring proceeds
// rules-only.
func (e *Engine) predict(ctx context.Context, f features.StudentFeatures) *predictor.Prediction {
	pctx, cancel := context.WithTimeout(ctx, e.predictTimeout)
	defer cancel()

	pred, err := e.predictor.Predict(pctx, f)
	if err != nil {
		return nil
	}
	return pred
}

func (e *Engine) logAssessment(ctx context.Context, a *Assessment) {
	if e.events == nil {
		return
	}
	data := store.AssessmentEventData{
		StudentID:      a.StudentID,
		FinalScore:     a.Fusion.FinalScore,
		FinalLevel:     string(a.Fusion.FinalLevel),
		RuleScore:      a.Fusion.Rules.RuleScore,
		TriggeredCount: len(a.Fusion.Rules.Triggered),
		MLUsed:         a.Fusion.ML != nil,
		CollapseScore:  a.Collapse.Score,
		CollapseLevel:  string(a.Collapse.Level),
	}
	if err := e.events.AppendAssessment(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log assessment event: %v\n", err)
	}
}
