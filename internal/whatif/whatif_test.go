package whatif

import (
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/rules"
)

func assess(raw features.Raw) (features.StudentFeatures, fusion.Result) {
	f := features.Normalize(raw)
	return f, fusion.Fuse(rules.Evaluate(f), nil)
}

func TestSimulate_EmptyOverrideMatchesBaseline(t *testing.T) {
	f, baseline := assess(features.Raw{
		AttendanceRate:  70,
		LateSubmissions: 2,
		WeeklyWorkload:  10,
	})

	out := Simulate(f, baseline, Overrides{})
	if out.Simulated.FinalScore != baseline.FinalScore {
		t.Fatalf("empty override changed score: %d -> %d", baseline.FinalScore, out.Simulated.FinalScore)
	}
	if out.ImpactPoints != 0 {
		t.Fatalf("expected zero impact, got %d", out.ImpactPoints)
	}
}

func TestSimulate_FixingAttendanceClearsRule(t *testing.T) {
	f, baseline := assess(features.Raw{
		AttendanceRate: 60,
		WeeklyWorkload: 10,
	})
	if baseline.FinalScore != 20 {
		t.Fatalf("baseline setup wrong: expected 20, got %d", baseline.FinalScore)
	}

	out := Simulate(f, baseline, Overrides{AttendanceRate: ptr(85.0)})
	if out.Simulated.Rules.RuleScore != 0 {
		t.Fatalf("expected simulated ruleScore 0, got %d", out.Simulated.Rules.RuleScore)
	}
	if out.ImpactPoints != -20 {
		t.Fatalf("expected impact -20, got %d", out.ImpactPoints)
	}
}

func TestSimulate_DoesNotMutateBaseline(t *testing.T) {
	f, baseline := assess(features.Raw{
		AttendanceRate:  60,
		LateSubmissions: 3,
		WeeklyWorkload:  10,
	})
	before := f

	Simulate(f, baseline, Overrides{
		AttendanceRate:  ptr(95.0),
		LateSubmissions: ptr(0),
	})

	if f != before {
		t.Fatalf("baseline features mutated: %+v -> %+v", before, f)
	}
}

func TestSimulate_RepeatedCallsIdentical(t *testing.T) {
	f, baseline := assess(features.Raw{
		AttendanceRate:    65,
		MissedSubmissions: 1,
		WeeklyWorkload:    12,
	})
	ov := Overrides{MissedSubmissions: ptr(0)}

	first := Simulate(f, baseline, ov)
	for i := 0; i < 5; i++ {
		again := Simulate(f, baseline, ov)
		if again.Simulated.FinalScore != first.Simulated.FinalScore || again.ImpactPoints != first.ImpactPoints {
			t.Fatalf("simulation not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestSimulate_NeverUsesML(t *testing.T) {
	f, _ := assess(features.Raw{AttendanceRate: 60, WeeklyWorkload: 10})

	// Baseline carries an ML-fused score; the simulated side must still
	// be rules-only with no prediction attached.
	baseline := fusion.Result{FinalScore: 55, FinalLevel: fusion.LevelModerate}
	out := Simulate(f, baseline, Overrides{AttendanceRate: ptr(90.0)})
	if out.Simulated.ML != nil {
		t.Fatal("simulation must never attach an ML prediction")
	}
	if out.ImpactPoints != out.Simulated.FinalScore-55 {
		t.Fatalf("impact must compare against the stored baseline, got %d", out.ImpactPoints)
	}
}

func TestSimulate_OverridesAreReclamped(t *testing.T) {
	f, baseline := assess(features.Raw{AttendanceRate: 80, WeeklyWorkload: 10})

	out := Simulate(f, baseline, Overrides{AttendanceRate: ptr(400.0)})
	if out.Simulated.Rules.RuleScore != 0 {
		t.Fatalf("clamped attendance 100 must trigger nothing, got %d", out.Simulated.Rules.RuleScore)
	}
}
