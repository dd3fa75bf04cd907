package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/stresswatch/internal/fusion"
)

// TrendPoint is one week of a simulated stress history.
type TrendPoint struct {
	Week  string       `json:"week"`
	Score int          `json:"score"`
	Level fusion.Level `json:"level"`
}

// Trend simulates a weekly stress history leading up to the current risk
// score. The progression starts below the current score and interpolates
// toward it with noise; the final week always equals the current score.
func Trend(rng *rand.Rand, baseScore, weeks int) []TrendPoint {
	if weeks <= 0 {
		return nil
	}

	start := baseScore - (20 + rng.IntN(21))
	if start < 10 {
		start = 10
	}

	trend := make([]TrendPoint, weeks)
	for w := 0; w < weeks; w++ {
		progress := 1.0
		if weeks > 1 {
			progress = float64(w) / float64(weeks-1)
		}
		score := start + int(float64(baseScore-start)*progress)
		score += rng.IntN(11) - 5
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		trend[w] = TrendPoint{
			Week:  fmt.Sprintf("Week %d", w+1),
			Score: score,
			Level: fusion.LevelFor(score),
		}
	}

	trend[weeks-1].Score = baseScore
	trend[weeks-1].Level = fusion.LevelFor(baseScore)
	return trend
}
