package rules

import (
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
)

func baseline() features.StudentFeatures {
	return features.Normalize(features.Raw{
		AttendanceRate:  90,
		WeeklyWorkload:  10,
		LateSubmissions: 0,
	})
}

func TestEvaluate_NothingTriggered(t *testing.T) {
	res := Evaluate(baseline())
	if res.RuleScore != 0 {
		t.Fatalf("expected score 0, got %d", res.RuleScore)
	}
	if len(res.Triggered) != 0 {
		t.Fatalf("expected no triggered rules, got %d", len(res.Triggered))
	}
}

func TestEvaluate_AttendanceDropOnly(t *testing.T) {
	f := features.Normalize(features.Raw{
		AttendanceRate:         70,
		WeeklyWorkload:         10,
		PreviousWeeklyWorkload: intPtr(10),
		PreviousAttendanceRate: floatPtr(70),
	})

	res := Evaluate(f)
	if res.RuleScore != 20 {
		t.Fatalf("expected score 20, got %d", res.RuleScore)
	}
	if len(res.Triggered) != 1 || res.Triggered[0].ID != "attendance_drop" {
		t.Fatalf("expected only attendance_drop, got %v", res.TriggeredIDs())
	}
	if res.Triggered[0].PointsAdded != 20 {
		t.Errorf("expected 20 points, got %d", res.Triggered[0].PointsAdded)
	}
}

func TestEvaluate_LateAndMissing(t *testing.T) {
	f := features.Normalize(features.Raw{
		AttendanceRate:         80,
		LateSubmissions:        3,
		MissedSubmissions:      1,
		WeeklyWorkload:         10,
		PreviousWeeklyWorkload: intPtr(10),
	})

	res := Evaluate(f)
	if res.RuleScore != 50 {
		t.Fatalf("expected score 50, got %d", res.RuleScore)
	}
	want := []string{"late_submissions", "missing_submission"}
	got := res.TriggeredIDs()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEvaluate_AllRulesCapAt100(t *testing.T) {
	f := features.Normalize(features.Raw{
		AttendanceRate:         50,
		LateSubmissions:        3,
		MissedSubmissions:      2,
		WeeklyWorkload:         15,
		PreviousWeeklyWorkload: intPtr(8),
		PreviousAttendanceRate: floatPtr(80),
	})

	res := Evaluate(f)
	if res.RuleScore != 100 {
		t.Fatalf("expected capped score 100, got %d", res.RuleScore)
	}
	if len(res.Triggered) != 5 {
		t.Fatalf("expected all 5 rules triggered, got %v", res.TriggeredIDs())
	}
}

func TestEvaluate_WorkloadSpikeBoundary(t *testing.T) {
	// Exactly +40% must not trigger; strictly greater must.
	at := features.Normalize(features.Raw{
		AttendanceRate:         90,
		WeeklyWorkload:         14,
		PreviousWeeklyWorkload: intPtr(10),
	})
	if got := Evaluate(at).TriggeredIDs(); len(got) != 0 {
		t.Fatalf("40%% increase must not trigger, got %v", got)
	}

	above := features.Normalize(features.Raw{
		AttendanceRate:         90,
		WeeklyWorkload:         15,
		PreviousWeeklyWorkload: intPtr(10),
	})
	got := Evaluate(above).TriggeredIDs()
	if len(got) != 1 || got[0] != "workload_spike" {
		t.Fatalf("50%% increase must trigger workload_spike, got %v", got)
	}
}

func TestEvaluate_BehaviorChangeBoundary(t *testing.T) {
	// Exactly -20 points of attendance must not trigger.
	at := features.Normalize(features.Raw{
		AttendanceRate:         76,
		WeeklyWorkload:         10,
		PreviousAttendanceRate: floatPtr(96),
	})
	if got := Evaluate(at).TriggeredIDs(); len(got) != 0 {
		t.Fatalf("exactly 20%% drop must not trigger, got %v", got)
	}

	above := features.Normalize(features.Raw{
		AttendanceRate:         75.5,
		WeeklyWorkload:         10,
		PreviousAttendanceRate: floatPtr(96),
	})
	got := Evaluate(above).TriggeredIDs()
	if len(got) != 1 || got[0] != "behavior_change" {
		t.Fatalf("20.5%% drop must trigger behavior_change, got %v", got)
	}
}

func TestEvaluate_ZeroPreviousWorkloadNeverSpikes(t *testing.T) {
	f := features.Normalize(features.Raw{
		AttendanceRate:         90,
		WeeklyWorkload:         20,
		PreviousWeeklyWorkload: intPtr(0),
	})
	for _, id := range Evaluate(f).TriggeredIDs() {
		if id == "workload_spike" {
			t.Fatal("workload_spike must not trigger with zero previous workload")
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	f := features.Normalize(features.Raw{
		AttendanceRate:    60,
		LateSubmissions:   2,
		MissedSubmissions: 1,
		WeeklyWorkload:    12,
	})
	first := Evaluate(f)
	for i := 0; i < 10; i++ {
		again := Evaluate(f)
		if again.RuleScore != first.RuleScore || len(again.Triggered) != len(first.Triggered) {
			t.Fatalf("evaluation not deterministic: %v vs %v", first, again)
		}
	}
}

func TestTable_PointsMatchDocumentedWeights(t *testing.T) {
	want := map[string]int{
		"attendance_drop":    20,
		"late_submissions":   25,
		"workload_spike":     15,
		"missing_submission": 25,
		"behavior_change":    15,
	}
	table := Table()
	if len(table) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(table))
	}
	for _, r := range table {
		if want[r.ID] != r.Points {
			t.Errorf("rule %s: expected %d points, got %d", r.ID, want[r.ID], r.Points)
		}
		if r.Explanation == "" {
			t.Errorf("rule %s: missing explanation", r.ID)
		}
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
