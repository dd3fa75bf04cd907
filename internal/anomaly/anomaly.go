// Package anomaly scores how far a student's observable behavior sits
// from the expected baselines, independent of the rule thresholds. A
// student can look unremarkable to every rule and still be anomalous.
package anomaly

import (
	"math"

	"github.com/abhisek/stresswatch/internal/features"
)

// Expected-behavior baselines.
const (
	baselineAttendance = 85.0
	baselineWorkload   = 10.0
	lateCap            = 5.0  // late submissions at or above this saturate
	workloadSpan       = 15.0 // task deviation that saturates
)

// Score returns a deviation index in [0, 1], rounded to three decimals.
// Weighted blend: 40% attendance deviation, 35% late-submission ratio,
// 25% workload deviation.
func Score(f features.StudentFeatures) float64 {
	attendance := math.Abs(baselineAttendance-f.AttendanceRate) / baselineAttendance
	late := math.Min(1, float64(f.LateSubmissions)/lateCap)
	workload := math.Min(1, math.Abs(float64(f.WeeklyWorkload)-baselineWorkload)/workloadSpan)

	score := 0.4*attendance + 0.35*late + 0.25*workload
	return math.Round(math.Min(1, score)*1000) / 1000
}
