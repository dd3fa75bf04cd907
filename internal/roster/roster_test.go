package roster

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/rules"
)

func TestGenerate_SameSeedSameRoster(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 0)), 50)
	b := Generate(rand.New(rand.NewPCG(7, 0)), 50)

	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("expected 50 students, got %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name {
			t.Fatalf("identity differs at %d: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].Raw.AttendanceRate != b[i].Raw.AttendanceRate ||
			a[i].Raw.LateSubmissions != b[i].Raw.LateSubmissions {
			t.Fatalf("features differ at %d", i)
		}
	}
}

func TestGenerate_IdentityFields(t *testing.T) {
	students := Generate(rand.New(rand.NewPCG(1, 0)), 10)

	for i, st := range students {
		if st.ID != 1000+i {
			t.Errorf("student %d: expected id %d, got %d", i, 1000+i, st.ID)
		}
		if !strings.Contains(st.Email, "@university.edu") {
			t.Errorf("student %d: bad email %q", i, st.Email)
		}
		if st.Year < 1 || st.Year > 4 {
			t.Errorf("student %d: year out of range: %d", i, st.Year)
		}
		if st.Department == "" || st.Name == "" {
			t.Errorf("student %d: missing identity: %+v", i, st)
		}
	}
}

func TestGenerate_CoversRiskSpectrum(t *testing.T) {
	students := Generate(rand.New(rand.NewPCG(42, 0)), 200)

	levels := map[fusion.Level]int{}
	for _, st := range students {
		res := rules.Evaluate(features.Normalize(st.Raw))
		levels[fusion.LevelFor(res.RuleScore)]++
	}

	// With 200 students across five archetypes every band must appear.
	for _, level := range []fusion.Level{fusion.LevelLow, fusion.LevelModerate, fusion.LevelHigh} {
		if levels[level] == 0 {
			t.Errorf("no students in band %s: %v", level, levels)
		}
	}
}

func TestGenerate_FeaturesWithinBounds(t *testing.T) {
	students := Generate(rand.New(rand.NewPCG(3, 0)), 100)

	for _, st := range students {
		f := features.Normalize(st.Raw)
		if st.Raw.AttendanceRate != f.AttendanceRate {
			t.Errorf("student %d: generated attendance %v required clamping", st.ID, st.Raw.AttendanceRate)
		}
		if st.Raw.PreviousWeeklyWorkload != nil && *st.Raw.PreviousWeeklyWorkload < 1 {
			t.Errorf("student %d: previous workload below 1", st.ID)
		}
	}
}

func TestTrend_LastPointMatchesBase(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 0))
	for _, base := range []int{0, 20, 55, 90} {
		trend := Trend(rng, base, 8)
		if len(trend) != 8 {
			t.Fatalf("expected 8 weeks, got %d", len(trend))
		}
		last := trend[len(trend)-1]
		if last.Score != base {
			t.Errorf("base %d: last week score %d", base, last.Score)
		}
		if last.Level != fusion.LevelFor(base) {
			t.Errorf("base %d: level %s does not match score", base, last.Level)
		}
	}
}

func TestTrend_ScoresBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 0))
	for _, p := range Trend(rng, 75, 12) {
		if p.Score < 0 || p.Score > 100 {
			t.Errorf("score out of range: %+v", p)
		}
		if p.Week == "" {
			t.Errorf("missing week label: %+v", p)
		}
	}
}

func TestTrend_ZeroWeeks(t *testing.T) {
	if got := Trend(rand.New(rand.NewPCG(1, 0)), 50, 0); got != nil {
		t.Errorf("expected nil for zero weeks, got %v", got)
	}
}
