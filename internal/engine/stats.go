package engine

import (
	"math"

	"github.com/abhisek/stresswatch/internal/collapse"
	"github.com/abhisek/stresswatch/internal/fusion"
)

// Stats aggregates a batch of assessments into cohort-level numbers.
type Stats struct {
	TotalStudents     int     `json:"totalStudents"`
	HighRisk          int     `json:"highRisk"`
	ModerateRisk      int     `json:"moderateRisk"`
	LowRisk           int     `json:"lowRisk"`
	AverageRiskScore  float64 `json:"averageRiskScore"`
	AverageConfidence float64 `json:"averageConfidence"`
	CollapseWatch     int     `json:"collapseWatch"`
	CollapseElevated  int     `json:"collapseElevated"`
}

// Summarize computes cohort statistics over assessments. AverageConfidence
// covers only assessments that carry an ML prediction; it is zero when
// none do.
func Summarize(assessments []*Assessment) Stats {
	s := Stats{TotalStudents: len(assessments)}
	if len(assessments) == 0 {
		return s
	}

	var scoreSum float64
	var confSum float64
	var confN int
	for _, a := range assessments {
		scoreSum += float64(a.Fusion.FinalScore)
		switch a.Fusion.FinalLevel {
		case fusion.LevelHigh:
			s.HighRisk++
		case fusion.LevelModerate:
			s.ModerateRisk++
		default:
			s.LowRisk++
		}
		switch a.Collapse.Level {
		case collapse.LevelElevated:
			s.CollapseElevated++
		case collapse.LevelWatch:
			s.CollapseWatch++
		}
		if a.Fusion.ML != nil {
			confSum += a.Fusion.ML.Confidence
			confN++
		}
	}

	s.AverageRiskScore = round1(scoreSum / float64(len(assessments)))
	if confN > 0 {
		s.AverageConfidence = round2(confSum / float64(confN))
	}
	return s
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
