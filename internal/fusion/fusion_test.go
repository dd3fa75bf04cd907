package fusion

import (
	"testing"

	"github.com/abhisek/stresswatch/internal/predictor"
	"github.com/abhisek/stresswatch/internal/rules"
)

func ruleResult(score int) rules.Result {
	return rules.Result{RuleScore: score}
}

func TestFuse_AbsentMLFallsBackToRuleScore(t *testing.T) {
	for _, score := range []int{0, 20, 45, 61, 100} {
		res := Fuse(ruleResult(score), nil)
		if res.FinalScore != score {
			t.Errorf("score %d: expected fallback %d, got %d", score, score, res.FinalScore)
		}
		if res.ML != nil {
			t.Errorf("score %d: ML must stay nil on fallback", score)
		}
	}
}

func TestFuse_FullConfidenceUsesAnchor(t *testing.T) {
	// conf=1: mlScore is exactly the class anchor.
	// final = round(0.6*80 + 0.4*40) = 64.
	res := Fuse(ruleResult(40), &predictor.Prediction{
		Class:      predictor.ClassHigh,
		Confidence: 1.0,
	})
	if res.FinalScore != 64 {
		t.Fatalf("expected 64, got %d", res.FinalScore)
	}
	if res.FinalLevel != LevelHigh {
		t.Fatalf("expected High, got %s", res.FinalLevel)
	}
}

func TestFuse_ZeroConfidenceDefersToRules(t *testing.T) {
	// conf=0: mlScore collapses onto the rule score, so the weighted
	// average is the rule score itself.
	res := Fuse(ruleResult(45), &predictor.Prediction{
		Class:      predictor.ClassHigh,
		Confidence: 0,
	})
	if res.FinalScore != 45 {
		t.Fatalf("expected 45, got %d", res.FinalScore)
	}
}

func TestFuse_ConfidenceOutOfRangeClamped(t *testing.T) {
	over := Fuse(ruleResult(40), &predictor.Prediction{Class: predictor.ClassHigh, Confidence: 3})
	exact := Fuse(ruleResult(40), &predictor.Prediction{Class: predictor.ClassHigh, Confidence: 1})
	if over.FinalScore != exact.FinalScore {
		t.Errorf("confidence > 1 must behave as 1: %d vs %d", over.FinalScore, exact.FinalScore)
	}

	under := Fuse(ruleResult(40), &predictor.Prediction{Class: predictor.ClassLow, Confidence: -1})
	if under.FinalScore != 40 {
		t.Errorf("confidence < 0 must behave as 0, got %d", under.FinalScore)
	}
}

func TestFuse_LowAnchorPullsScoreDown(t *testing.T) {
	// Rules say 100, a confident Low prediction pulls toward anchor 20:
	// mlScore = 0.9*20 + 0.1*100 = 28; final = round(0.6*28 + 0.4*100) = 57.
	res := Fuse(ruleResult(100), &predictor.Prediction{
		Class:      predictor.ClassLow,
		Confidence: 0.9,
	})
	if res.FinalScore != 57 {
		t.Fatalf("expected 57, got %d", res.FinalScore)
	}
	if res.FinalLevel != LevelModerate {
		t.Fatalf("expected Moderate, got %s", res.FinalLevel)
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{20, LevelLow},
		{30, LevelLow},
		{31, LevelModerate},
		{50, LevelModerate},
		{60, LevelModerate},
		{61, LevelHigh},
		{100, LevelHigh},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestLevelFor_NoGapsOrOverlaps(t *testing.T) {
	for score := 0; score <= 100; score++ {
		level := LevelFor(score)
		switch {
		case score <= 30:
			if level != LevelLow {
				t.Fatalf("score %d: expected Low, got %s", score, level)
			}
		case score <= 60:
			if level != LevelModerate {
				t.Fatalf("score %d: expected Moderate, got %s", score, level)
			}
		default:
			if level != LevelHigh {
				t.Fatalf("score %d: expected High, got %s", score, level)
			}
		}
	}
}
