package collapse

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
)

// Level is the divergence band for a silent-collapse signal.
type Level string

const (
	LevelLow      Level = "Low"
	LevelWatch    Level = "Watch"
	LevelElevated Level = "Elevated"
)

// Signal flags students whose internal-state indicators are elevated
// while outwardly visible academic evidence is scarce. It is a parallel
// advisory signal and never feeds back into the fused risk score.
type Signal struct {
	Level   Level    `json:"level"`
	Score   int      `json:"score"` // 0–100
	Drivers []string `json:"drivers"`
}

// Band cut points for the divergence score.
const (
	elevatedAt = 60
	watchAt    = 30
)

// maxDrivers caps the driver list, mirroring the top-N attribution style
// of the ML explanation.
const maxDrivers = 3

// factor describes one psychological indicator's contribution to the
// internal strain index. Protective factors (sleep, support, performance)
// are inverted: low values raise strain.
type factor struct {
	name       string
	weight     float64
	max        int
	protective bool
	value      func(p features.Psych) int
	describe   func(v, max int) string
}

// strainFactors is the documented weighting of the internal strain index.
// Weights sum to 1.0 so strain is itself a 0–1 index.
func strainFactors() []factor {
	return []factor{
		{
			name: "anxiety", weight: 0.22, max: 21,
			value:    func(p features.Psych) int { return p.AnxietyLevel },
			describe: func(v, max int) string { return fmt.Sprintf("High anxiety level (%d/%d)", v, max) },
		},
		{
			name: "depression", weight: 0.22, max: 27,
			value:    func(p features.Psych) int { return p.DepressionScore },
			describe: func(v, max int) string { return fmt.Sprintf("Elevated depression indicators (%d/%d)", v, max) },
		},
		{
			name: "bullying", weight: 0.16, max: 5,
			value:    func(p features.Psych) int { return p.BullyingExposure },
			describe: func(v, max int) string { return fmt.Sprintf("Bullying exposure detected (%d/%d)", v, max) },
		},
		{
			name: "sleep", weight: 0.12, max: 5, protective: true,
			value:    func(p features.Psych) int { return p.SleepQuality },
			describe: func(v, max int) string { return fmt.Sprintf("Poor sleep quality (%d/%d)", v, max) },
		},
		{
			name: "social_support", weight: 0.10, max: 3, protective: true,
			value:    func(p features.Psych) int { return p.SocialSupport },
			describe: func(v, max int) string { return fmt.Sprintf("Insufficient social support (%d/%d)", v, max) },
		},
		{
			name: "peer_pressure", weight: 0.10, max: 5,
			value:    func(p features.Psych) int { return p.PeerPressure },
			describe: func(v, max int) string { return fmt.Sprintf("High peer pressure (%d/%d)", v, max) },
		},
		{
			name: "academic_performance", weight: 0.08, max: 5, protective: true,
			value:    func(p features.Psych) int { return p.AcademicPerformance },
			describe: func(v, max int) string { return fmt.Sprintf("Academic performance concerns (%d/%d)", v, max) },
		},
	}
}

// Detect computes the silent-collapse signal for one student: high
// internal strain with low external rule visibility yields a high score,
// convergence (both high or both low) yields a low one.
//
// A student with no psychological data resolves to Low with no drivers.
func Detect(fus fusion.Result, f features.StudentFeatures) Signal {
	if !f.Psych.Reported {
		return Signal{Level: LevelLow}
	}

	type contribution struct {
		share float64
		text  string
	}

	var strain float64
	var contribs []contribution
	for _, fac := range strainFactors() {
		v := fac.value(f.Psych)
		norm := float64(v) / float64(fac.max)
		if fac.protective {
			norm = 1 - norm
		}
		share := fac.weight * norm
		strain += share
		contribs = append(contribs, contribution{share: share, text: fac.describe(v, fac.max)})
	}

	// External visibility: how much conventional academic-behavior
	// evidence already points at this student.
	visibility := float64(fus.Rules.RuleScore) / 100

	score := int(math.Round(100 * strain * (1 - visibility)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	sig := Signal{Score: score, Level: levelFor(score)}

	sort.SliceStable(contribs, func(i, j int) bool {
		return contribs[i].share > contribs[j].share
	})
	for _, c := range contribs {
		if len(sig.Drivers) == maxDrivers {
			break
		}
		// Near-zero shares are noise, not drivers.
		if c.share < 0.05 {
			break
		}
		sig.Drivers = append(sig.Drivers, c.text)
	}

	return sig
}

func levelFor(score int) Level {
	switch {
	case score >= elevatedAt:
		return LevelElevated
	case score >= watchAt:
		return LevelWatch
	default:
		return LevelLow
	}
}
