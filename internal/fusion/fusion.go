package fusion

import (
	"math"

	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/rules"
)

// Level is the final risk band derived from the fused score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Fixed fusion weights and class anchors. The 60/40 split and the level
// cut points are shared by every surface and must not drift.
const (
	mlWeight   = 0.60
	ruleWeight = 0.40

	anchorLow      = 20
	anchorModerate = 50
	anchorHigh     = 80
)

// Result combines the rule evaluation and the ML prediction into one
// final 0–100 score and level. ML is nil when the predictor was
// unavailable and the score fell back to rules only.
type Result struct {
	FinalScore int                   `json:"finalScore"`
	FinalLevel Level                 `json:"finalLevel"`
	Rules      rules.Result          `json:"ruleResult"`
	ML         *predictor.Prediction `json:"mlResult,omitempty"`
}

// Fuse combines a rule result with an optional ML prediction.
//
// When ml is present, its class anchor (Low 20 / Moderate 50 / High 80)
// is blended toward the rule score by confidence — a low-confidence
// prediction defers to the rules — and the blended ML score is averaged
// with the rule score at fixed 60/40 weights:
//
//	mlScore    = confidence*anchor + (1-confidence)*ruleScore
//	finalScore = round(0.6*mlScore + 0.4*ruleScore)
//
// When ml is absent, finalScore is exactly the rule score.
func Fuse(rr rules.Result, ml *predictor.Prediction) Result {
	res := Result{Rules: rr, ML: ml}

	if ml == nil {
		res.FinalScore = rr.RuleScore
		res.FinalLevel = LevelFor(res.FinalScore)
		return res
	}

	conf := ml.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	mlScore := conf*float64(anchorFor(ml.Class)) + (1-conf)*float64(rr.RuleScore)
	final := int(math.Round(mlWeight*mlScore + ruleWeight*float64(rr.RuleScore)))

	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	res.FinalScore = final
	res.FinalLevel = LevelFor(final)
	return res
}

// LevelFor maps a 0–100 score onto the fixed risk bands:
// score <= 30 is Low, 31–60 is Moderate, >= 61 is High.
func LevelFor(score int) Level {
	switch {
	case score <= 30:
		return LevelLow
	case score <= 60:
		return LevelModerate
	default:
		return LevelHigh
	}
}

func anchorFor(c predictor.Class) int {
	switch c {
	case predictor.ClassLow:
		return anchorLow
	case predictor.ClassHigh:
		return anchorHigh
	default:
		return anchorModerate
	}
}
