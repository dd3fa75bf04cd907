package roster

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/stresswatch/internal/features"
)

// Student is a roster entry: identity plus the raw behavioral signals
// that feed the scoring pipeline.
type Student struct {
	ID         int          `json:"studentId"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Department string       `json:"department"`
	Year       int          `json:"year"`
	Raw        features.Raw `json:"-"`
}

var departments = []string{
	"Computer Science", "Data Science", "Mechanical Engineering",
	"Electrical Engineering", "Business Administration", "Psychology",
	"Chemistry", "Biomedical Engineering", "Mathematics", "Physics",
}

var firstNames = []string{
	"Alex", "Sarah", "Marcus", "Emily", "James", "Priya", "David", "Olivia",
	"Michael", "Emma", "Daniel", "Sophia", "Ethan", "Isabella", "Noah",
	"Mia", "Liam", "Ava", "Lucas", "Charlotte", "Mason", "Amelia", "Logan",
	"Harper", "Benjamin", "Evelyn", "Elijah", "Abigail", "Oliver", "Ella",
	"Jacob", "Scarlett", "Aiden", "Grace", "Jack", "Lily", "Henry", "Aria",
	"Sebastian", "Chloe", "Owen", "Zoey", "Samuel", "Penelope", "Ryan",
	"Layla", "Nathan", "Riley", "Leo", "Nora",
}

var lastNames = []string{
	"Thompson", "Chen", "Johnson", "Rodriguez", "Wilson", "Patel", "Kim",
	"Martinez", "Brown", "Davis", "Miller", "Garcia", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "White", "Harris", "Martin", "Clark",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
	"Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter",
	"Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz",
}

// profile shapes how a generated student behaves across every signal.
// Weights sum to 1 and skew the cohort toward the middle.
type profile struct {
	name   string
	weight float64
}

var profiles = []profile{
	{"excellent", 0.15},
	{"good", 0.25},
	{"moderate", 0.30},
	{"struggling", 0.20},
	{"critical", 0.10},
}

// Generate produces n simulated students covering the full risk spectrum.
// The same rng seed yields the same roster.
func Generate(rng *rand.Rand, n int) []Student {
	students := make([]Student, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[i%len(lastNames)]
		students = append(students, Student{
			ID:         1000 + i,
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s@university.edu", strings.ToLower(first), strings.ToLower(last[:1])),
			Department: departments[rng.IntN(len(departments))],
			Year:       1 + rng.IntN(4),
			Raw:        generateRaw(rng, pickProfile(rng)),
		})
	}
	return students
}

func pickProfile(rng *rand.Rand) string {
	r := rng.Float64()
	var cum float64
	for _, p := range profiles {
		cum += p.weight
		if r < cum {
			return p.name
		}
	}
	return profiles[len(profiles)-1].name
}

func generateRaw(rng *rand.Rand, profile string) features.Raw {
	var (
		attendance, prevAttendance float64
		late, missed               int
		workload, prevWorkload     int
	)

	switch profile {
	case "excellent":
		attendance = uniform(rng, 92, 100)
		workload = 6 + rng.IntN(5)
		prevAttendance = attendance + uniform(rng, -2, 2)
		prevWorkload = workload
	case "good":
		attendance = uniform(rng, 82, 94)
		late = rng.IntN(2)
		workload = 8 + rng.IntN(5)
		prevAttendance = attendance + uniform(rng, -5, 5)
		prevWorkload = workload - rng.IntN(3)
	case "moderate":
		attendance = uniform(rng, 72, 85)
		late = 1 + rng.IntN(3)
		missed = rng.IntN(2)
		workload = 10 + rng.IntN(6)
		prevAttendance = attendance + uniform(rng, 5, 15)
		prevWorkload = workload - (2 + rng.IntN(4))
	case "struggling":
		attendance = uniform(rng, 62, 78)
		late = 2 + rng.IntN(4)
		missed = 1 + rng.IntN(2)
		workload = 14 + rng.IntN(7)
		prevAttendance = attendance + uniform(rng, 10, 20)
		prevWorkload = workload - (4 + rng.IntN(5))
	default: // critical
		attendance = uniform(rng, 50, 68)
		late = 4 + rng.IntN(5)
		missed = 2 + rng.IntN(3)
		workload = 16 + rng.IntN(10)
		prevAttendance = attendance + uniform(rng, 15, 30)
		prevWorkload = workload - (6 + rng.IntN(7))
	}

	prevAttendance = clampPct(prevAttendance)
	if prevWorkload < 1 {
		prevWorkload = 1
	}

	raw := features.Raw{
		AttendanceRate:         round1(attendance),
		LateSubmissions:        late,
		MissedSubmissions:      missed,
		WeeklyWorkload:         workload,
		PreviousAttendanceRate: ptr(round1(prevAttendance)),
		PreviousWeeklyWorkload: ptr(prevWorkload),
	}
	raw.Psych = generatePsych(rng, profile)
	return raw
}

// generatePsych fills in self-reported wellbeing correlated with the
// behavioral profile. Roughly a third of students do not report at all.
func generatePsych(rng *rand.Rand, profile string) *features.RawPsych {
	if rng.Float64() < 0.35 {
		return nil
	}

	var anxiety, depression, sleep, academic, social, peer, bullying int
	switch profile {
	case "excellent":
		anxiety = rng.IntN(6)
		depression = rng.IntN(6)
		sleep = 4 + rng.IntN(2)
		academic = 4 + rng.IntN(2)
		social = 2 + rng.IntN(2)
		peer = rng.IntN(2)
	case "good":
		anxiety = 2 + rng.IntN(7)
		depression = 2 + rng.IntN(6)
		sleep = 3 + rng.IntN(3)
		academic = 3 + rng.IntN(3)
		social = 1 + rng.IntN(3)
		peer = rng.IntN(3)
	case "moderate":
		anxiety = 5 + rng.IntN(8)
		depression = 4 + rng.IntN(8)
		sleep = 2 + rng.IntN(3)
		academic = 2 + rng.IntN(3)
		social = 1 + rng.IntN(2)
		peer = 1 + rng.IntN(3)
		bullying = rng.IntN(2)
	case "struggling":
		anxiety = 9 + rng.IntN(8)
		depression = 8 + rng.IntN(10)
		sleep = 1 + rng.IntN(3)
		academic = 1 + rng.IntN(3)
		social = rng.IntN(2)
		peer = 2 + rng.IntN(3)
		bullying = rng.IntN(3)
	default: // critical
		anxiety = 13 + rng.IntN(9)
		depression = 14 + rng.IntN(14)
		sleep = rng.IntN(3)
		academic = rng.IntN(3)
		social = rng.IntN(2)
		peer = 3 + rng.IntN(3)
		bullying = 1 + rng.IntN(4)
	}

	return &features.RawPsych{
		AnxietyLevel:        ptr(anxiety),
		DepressionScore:     ptr(depression),
		SleepQuality:        ptr(sleep),
		AcademicPerformance: ptr(academic),
		SocialSupport:       ptr(social),
		PeerPressure:        ptr(peer),
		BullyingExposure:    ptr(bullying),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func ptr[T any](v T) *T { return &v }
