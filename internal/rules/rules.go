package rules

import "github.com/abhisek/stresswatch/internal/features"

// TriggeredRule records one rule that fired during evaluation.
type TriggeredRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	PointsAdded int    `json:"pointsAdded"`
}

// Result is the outcome of evaluating the full rule table against one
// student. Triggered follows rule definition order, not points magnitude.
type Result struct {
	RuleScore int             `json:"ruleScore"` // 0–100, capped
	Triggered []TriggeredRule `json:"triggeredRules"`
}

// Rule is one fixed threshold condition over student behavioral features.
type Rule struct {
	ID          string
	Name        string
	Points      int
	Explanation string
	applies     func(f features.StudentFeatures) bool
}

// Table returns the authoritative rule set, in evaluation order. Every
// scoring surface (baseline assessment, what-if simulation, server) must
// go through Evaluate so thresholds and points can never drift.
func Table() []Rule {
	return []Rule{
		{
			ID:          "attendance_drop",
			Name:        "Attendance Drop",
			Points:      20,
			Explanation: "Attendance fell below 75% over the last 2 weeks",
			applies: func(f features.StudentFeatures) bool {
				return f.AttendanceRate < 75
			},
		},
		{
			ID:          "late_submissions",
			Name:        "Consecutive Late Submissions",
			Points:      25,
			Explanation: "2 or more consecutive late submissions detected",
			applies: func(f features.StudentFeatures) bool {
				return f.LateSubmissions >= 2
			},
		},
		{
			ID:          "workload_spike",
			Name:        "Workload Spike",
			Points:      15,
			Explanation: "Workload increased by more than 40% this week",
			applies: func(f features.StudentFeatures) bool {
				if f.PreviousWeeklyWorkload <= 0 {
					return false
				}
				delta := float64(f.WeeklyWorkload - f.PreviousWeeklyWorkload)
				return delta/float64(f.PreviousWeeklyWorkload) > 0.40
			},
		},
		{
			ID:          "missing_submission",
			Name:        "Missing Submission",
			Points:      25,
			Explanation: "One or more assignments past due without submission",
			applies: func(f features.StudentFeatures) bool {
				return f.MissedSubmissions > 0
			},
		},
		{
			ID:          "behavior_change",
			Name:        "Sudden Behavior Change",
			Points:      15,
			Explanation: "Attendance dropped more than 20% compared to previous period",
			applies: func(f features.StudentFeatures) bool {
				return f.PreviousAttendanceRate-f.AttendanceRate > 20
			},
		},
	}
}

// Evaluate applies every rule in Table order. Rules are independently
// additive and never short-circuit each other; the score is capped at 100.
func Evaluate(f features.StudentFeatures) Result {
	res := Result{}
	for _, r := range Table() {
		if !r.applies(f) {
			continue
		}
		res.RuleScore += r.Points
		res.Triggered = append(res.Triggered, TriggeredRule{
			ID:          r.ID,
			Name:        r.Name,
			Explanation: r.Explanation,
			PointsAdded: r.Points,
		})
	}
	if res.RuleScore > 100 {
		res.RuleScore = 100
	}
	return res
}

// TriggeredIDs returns the ids of triggered rules, in rule order.
func (r Result) TriggeredIDs() []string {
	ids := make([]string, 0, len(r.Triggered))
	for _, t := range r.Triggered {
		ids = append(ids, t.ID)
	}
	return ids
}
