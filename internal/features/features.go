package features

// StudentFeatures holds normalized, bounded behavioral inputs for one student.
// Every field is guaranteed to be inside its documented range once the record
// has passed through Normalize.
type StudentFeatures struct {
	AttendanceRate         float64 `json:"attendanceRate"`         // 0–100
	LateSubmissions        int     `json:"lateSubmissions"`        // >= 0
	MissedSubmissions      int     `json:"missedSubmissions"`      // >= 0
	WeeklyWorkload         int     `json:"weeklyWorkload"`         // >= 0, tasks this week
	PreviousWeeklyWorkload int     `json:"previousWeeklyWorkload"` // >= 0
	PreviousAttendanceRate float64 `json:"previousAttendanceRate"` // 0–100
	Psych                  Psych   `json:"psych"`
}

// Psych holds the optional self-reported psychological indicators.
// Reported is false when no indicator was supplied at all; individual
// missing indicators default to neutral survey values.
type Psych struct {
	Reported            bool `json:"reported"`
	AnxietyLevel        int  `json:"anxietyLevel"`        // 0–21 (GAD-style)
	DepressionScore     int  `json:"depressionScore"`     // 0–27 (PHQ-style)
	SleepQuality        int  `json:"sleepQuality"`        // 0–5, higher is better
	AcademicPerformance int  `json:"academicPerformance"` // 0–5, higher is better
	SocialSupport       int  `json:"socialSupport"`       // 0–3, higher is better
	PeerPressure        int  `json:"peerPressure"`        // 0–5
	BullyingExposure    int  `json:"bullyingExposure"`    // 0–5
}

// Raw is an unvalidated input record as supplied by ingestion. Pointer
// fields distinguish "absent" from zero: absent previous-period values
// default to the current period, so delta rules report zero change.
type Raw struct {
	AttendanceRate         float64   `json:"attendanceRate"`
	LateSubmissions        int       `json:"lateSubmissions"`
	MissedSubmissions      int       `json:"missedSubmissions"`
	WeeklyWorkload         int       `json:"weeklyWorkload"`
	PreviousWeeklyWorkload *int      `json:"previousWeeklyWorkload,omitempty"`
	PreviousAttendanceRate *float64  `json:"previousAttendanceRate,omitempty"`
	Psych                  *RawPsych `json:"psych,omitempty"`
}

// RawPsych mirrors Psych with every indicator optional.
type RawPsych struct {
	AnxietyLevel        *int `json:"anxietyLevel,omitempty"`
	DepressionScore     *int `json:"depressionScore,omitempty"`
	SleepQuality        *int `json:"sleepQuality,omitempty"`
	AcademicPerformance *int `json:"academicPerformance,omitempty"`
	SocialSupport       *int `json:"socialSupport,omitempty"`
	PeerPressure        *int `json:"peerPressure,omitempty"`
	BullyingExposure    *int `json:"bullyingExposure,omitempty"`
}

// Neutral survey defaults used when only some indicators are supplied.
const (
	defaultSleepQuality        = 3
	defaultAcademicPerformance = 3
	defaultSocialSupport       = 2
	defaultPeerPressure        = 2
)

// Normalize converts a raw record into bounded StudentFeatures. It never
// fails: out-of-range values are clamped, missing previous-period fields
// default to the current period, and missing psychological indicators get
// neutral defaults.
func Normalize(raw Raw) StudentFeatures {
	f := StudentFeatures{
		AttendanceRate:    clampFloat(raw.AttendanceRate, 0, 100),
		LateSubmissions:   clampMin(raw.LateSubmissions, 0),
		MissedSubmissions: clampMin(raw.MissedSubmissions, 0),
		WeeklyWorkload:    clampMin(raw.WeeklyWorkload, 0),
	}

	f.PreviousWeeklyWorkload = f.WeeklyWorkload
	if raw.PreviousWeeklyWorkload != nil {
		f.PreviousWeeklyWorkload = clampMin(*raw.PreviousWeeklyWorkload, 0)
	}

	f.PreviousAttendanceRate = f.AttendanceRate
	if raw.PreviousAttendanceRate != nil {
		f.PreviousAttendanceRate = clampFloat(*raw.PreviousAttendanceRate, 0, 100)
	}

	f.Psych = normalizePsych(raw.Psych)
	return f
}

func normalizePsych(raw *RawPsych) Psych {
	p := Psych{
		SleepQuality:        defaultSleepQuality,
		AcademicPerformance: defaultAcademicPerformance,
		SocialSupport:       defaultSocialSupport,
		PeerPressure:        defaultPeerPressure,
	}
	if raw == nil {
		return p
	}

	p.Reported = true
	p.AnxietyLevel = clampOptional(raw.AnxietyLevel, 0, 21, 0)
	p.DepressionScore = clampOptional(raw.DepressionScore, 0, 27, 0)
	p.SleepQuality = clampOptional(raw.SleepQuality, 0, 5, defaultSleepQuality)
	p.AcademicPerformance = clampOptional(raw.AcademicPerformance, 0, 5, defaultAcademicPerformance)
	p.SocialSupport = clampOptional(raw.SocialSupport, 0, 3, defaultSocialSupport)
	p.PeerPressure = clampOptional(raw.PeerPressure, 0, 5, defaultPeerPressure)
	p.BullyingExposure = clampOptional(raw.BullyingExposure, 0, 5, 0)
	return p
}

func clampOptional(v *int, lo, hi, def int) int {
	if v == nil {
		return def
	}
	return clampInt(*v, lo, hi)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
