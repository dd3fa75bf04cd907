package features

import "testing"

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	f := Normalize(Raw{
		AttendanceRate:    150,
		LateSubmissions:   -3,
		MissedSubmissions: -1,
		WeeklyWorkload:    -5,
	})

	if f.AttendanceRate != 100 {
		t.Errorf("attendance: expected 100, got %v", f.AttendanceRate)
	}
	if f.LateSubmissions != 0 || f.MissedSubmissions != 0 || f.WeeklyWorkload != 0 {
		t.Errorf("negative counts must clamp to 0, got %+v", f)
	}
}

func TestNormalize_PreviousDefaultsToCurrent(t *testing.T) {
	f := Normalize(Raw{AttendanceRate: 83.5, WeeklyWorkload: 12})

	if f.PreviousAttendanceRate != 83.5 {
		t.Errorf("previous attendance: expected 83.5, got %v", f.PreviousAttendanceRate)
	}
	if f.PreviousWeeklyWorkload != 12 {
		t.Errorf("previous workload: expected 12, got %d", f.PreviousWeeklyWorkload)
	}
}

func TestNormalize_ExplicitPreviousKept(t *testing.T) {
	prev := 95.0
	prevW := 8
	f := Normalize(Raw{
		AttendanceRate:         70,
		WeeklyWorkload:         14,
		PreviousAttendanceRate: &prev,
		PreviousWeeklyWorkload: &prevW,
	})

	if f.PreviousAttendanceRate != 95 || f.PreviousWeeklyWorkload != 8 {
		t.Errorf("explicit previous values lost: %+v", f)
	}
}

func TestNormalize_NoPsychMeansUnreported(t *testing.T) {
	f := Normalize(Raw{AttendanceRate: 90})

	if f.Psych.Reported {
		t.Fatal("psych must be unreported when absent")
	}
	if f.Psych.AnxietyLevel != 0 || f.Psych.DepressionScore != 0 {
		t.Errorf("unreported severity indicators must be zero: %+v", f.Psych)
	}
	if f.Psych.SleepQuality != 3 || f.Psych.AcademicPerformance != 3 {
		t.Errorf("unreported protective indicators must be neutral: %+v", f.Psych)
	}
}

func TestNormalize_PartialPsychGetsNeutralDefaults(t *testing.T) {
	anxiety := 18
	f := Normalize(Raw{
		AttendanceRate: 90,
		Psych:          &RawPsych{AnxietyLevel: &anxiety},
	})

	if !f.Psych.Reported {
		t.Fatal("psych must be reported when any indicator is supplied")
	}
	if f.Psych.AnxietyLevel != 18 {
		t.Errorf("anxiety: expected 18, got %d", f.Psych.AnxietyLevel)
	}
	if f.Psych.SleepQuality != 3 || f.Psych.SocialSupport != 2 || f.Psych.PeerPressure != 2 {
		t.Errorf("missing indicators must default to neutral: %+v", f.Psych)
	}
}

func TestNormalize_PsychClamped(t *testing.T) {
	anxiety := 99
	depression := -5
	sleep := 9
	f := Normalize(Raw{
		AttendanceRate: 90,
		Psych: &RawPsych{
			AnxietyLevel:    &anxiety,
			DepressionScore: &depression,
			SleepQuality:    &sleep,
		},
	})

	if f.Psych.AnxietyLevel != 21 {
		t.Errorf("anxiety: expected clamp to 21, got %d", f.Psych.AnxietyLevel)
	}
	if f.Psych.DepressionScore != 0 {
		t.Errorf("depression: expected clamp to 0, got %d", f.Psych.DepressionScore)
	}
	if f.Psych.SleepQuality != 5 {
		t.Errorf("sleep: expected clamp to 5, got %d", f.Psych.SleepQuality)
	}
}
