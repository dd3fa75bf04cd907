package anomaly

import (
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
)

func TestScoreBaselineStudent(t *testing.T) {
	f := features.StudentFeatures{
		AttendanceRate:  85,
		LateSubmissions: 0,
		WeeklyWorkload:  10,
	}
	if got := Score(f); got != 0 {
		t.Errorf("expected 0 for baseline behavior, got %v", got)
	}
}

func TestScoreWeightedBlend(t *testing.T) {
	// 0.4*(15/85) + 0.35*(3/5) + 0 = 0.2806
	f := features.StudentFeatures{
		AttendanceRate:  70,
		LateSubmissions: 3,
		WeeklyWorkload:  10,
	}
	if got := Score(f); got != 0.281 {
		t.Errorf("expected 0.281, got %v", got)
	}

	// 0.4*0.5 + 0.35*1 + 0.25*1 = 0.8
	f = features.StudentFeatures{
		AttendanceRate:  42.5,
		LateSubmissions: 5,
		WeeklyWorkload:  25,
	}
	if got := Score(f); got != 0.8 {
		t.Errorf("expected 0.8, got %v", got)
	}
}

func TestScoreSaturates(t *testing.T) {
	f := features.StudentFeatures{
		AttendanceRate:  0,
		LateSubmissions: 10,
		WeeklyWorkload:  40,
	}
	if got := Score(f); got != 1 {
		t.Errorf("expected saturated score 1, got %v", got)
	}
}

func TestScoreMoreLatesNeverLower(t *testing.T) {
	prev := 0.0
	for late := 0; late <= 8; late++ {
		f := features.StudentFeatures{
			AttendanceRate:  85,
			LateSubmissions: late,
			WeeklyWorkload:  10,
		}
		got := Score(f)
		if got < prev {
			t.Fatalf("score dropped from %v to %v at %d late submissions", prev, got, late)
		}
		prev = got
	}
}
