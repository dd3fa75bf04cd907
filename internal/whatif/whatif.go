package whatif

import (
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/rules"
)

// Overrides is the hypothetical subset of behavioral features to change.
// Nil fields keep the baseline value; set fields replace it and are
// re-clamped by the normalizer before scoring.
type Overrides struct {
	AttendanceRate         *float64 `json:"attendanceRate,omitempty"`
	LateSubmissions        *int     `json:"lateSubmissions,omitempty"`
	MissedSubmissions      *int     `json:"missedSubmissions,omitempty"`
	WeeklyWorkload         *int     `json:"weeklyWorkload,omitempty"`
	PreviousWeeklyWorkload *int     `json:"previousWeeklyWorkload,omitempty"`
	PreviousAttendanceRate *float64 `json:"previousAttendanceRate,omitempty"`
}

// Outcome is the result of one simulation call. ImpactPoints is the
// simulated score minus the baseline final score (negative when the
// hypothetical change reduces risk).
type Outcome struct {
	Simulated    fusion.Result `json:"simulated"`
	ImpactPoints int           `json:"impactPoints"`
}

// Simulate re-scores a student against hypothetical feature overrides.
// It is the rules-only fast path for interactive use: the ML adapter is
// never called, and neither baseline nor any previously computed result
// is mutated. Calling it repeatedly with the same inputs yields the same
// outcome.
func Simulate(baseline features.StudentFeatures, baselineFusion fusion.Result, ov Overrides) Outcome {
	merged := merge(baseline, ov)
	sim := fusion.Fuse(rules.Evaluate(features.Normalize(merged)), nil)
	return Outcome{
		Simulated:    sim,
		ImpactPoints: sim.FinalScore - baselineFusion.FinalScore,
	}
}

// merge copies the baseline into a raw record and applies the overrides.
// Previous-period fields are always carried explicitly so an overridden
// current value does not silently reset the baseline's deltas.
func merge(base features.StudentFeatures, ov Overrides) features.Raw {
	prevWorkload := base.PreviousWeeklyWorkload
	prevAttendance := base.PreviousAttendanceRate

	raw := features.Raw{
		AttendanceRate:         base.AttendanceRate,
		LateSubmissions:        base.LateSubmissions,
		MissedSubmissions:      base.MissedSubmissions,
		WeeklyWorkload:         base.WeeklyWorkload,
		PreviousWeeklyWorkload: &prevWorkload,
		PreviousAttendanceRate: &prevAttendance,
	}

	if base.Psych.Reported {
		raw.Psych = &features.RawPsych{
			AnxietyLevel:        ptr(base.Psych.AnxietyLevel),
			DepressionScore:     ptr(base.Psych.DepressionScore),
			SleepQuality:        ptr(base.Psych.SleepQuality),
			AcademicPerformance: ptr(base.Psych.AcademicPerformance),
			SocialSupport:       ptr(base.Psych.SocialSupport),
			PeerPressure:        ptr(base.Psych.PeerPressure),
			BullyingExposure:    ptr(base.Psych.BullyingExposure),
		}
	}

	if ov.AttendanceRate != nil {
		raw.AttendanceRate = *ov.AttendanceRate
	}
	if ov.LateSubmissions != nil {
		raw.LateSubmissions = *ov.LateSubmissions
	}
	if ov.MissedSubmissions != nil {
		raw.MissedSubmissions = *ov.MissedSubmissions
	}
	if ov.WeeklyWorkload != nil {
		raw.WeeklyWorkload = *ov.WeeklyWorkload
	}
	if ov.PreviousWeeklyWorkload != nil {
		raw.PreviousWeeklyWorkload = ov.PreviousWeeklyWorkload
	}
	if ov.PreviousAttendanceRate != nil {
		raw.PreviousAttendanceRate = ov.PreviousAttendanceRate
	}

	return raw
}

func ptr[T any](v T) *T { return &v }
