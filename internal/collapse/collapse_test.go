package collapse

import (
	"strings"
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/rules"
)

func fusionWithRuleScore(score int) fusion.Result {
	return fusion.Fuse(rules.Result{RuleScore: score}, nil)
}

func reportedPsych(p features.Psych) features.StudentFeatures {
	p.Reported = true
	return features.StudentFeatures{
		AttendanceRate:         90,
		PreviousAttendanceRate: 90,
		WeeklyWorkload:         10,
		PreviousWeeklyWorkload: 10,
		Psych:                  p,
	}
}

func TestDetect_NoPsychDataResolvesLow(t *testing.T) {
	f := features.Normalize(features.Raw{AttendanceRate: 90, WeeklyWorkload: 10})

	sig := Detect(fusionWithRuleScore(0), f)
	if sig.Level != LevelLow {
		t.Fatalf("expected Low, got %s", sig.Level)
	}
	if sig.Score != 0 {
		t.Errorf("expected score 0, got %d", sig.Score)
	}
	if len(sig.Drivers) != 0 {
		t.Errorf("expected no drivers, got %v", sig.Drivers)
	}
}

func TestDetect_MaxStrainZeroVisibilityIsElevated(t *testing.T) {
	f := reportedPsych(features.Psych{
		AnxietyLevel:     21,
		DepressionScore:  27,
		BullyingExposure: 5,
		PeerPressure:     5,
		// protective factors at worst: sleep 0, support 0, performance 0
	})

	sig := Detect(fusionWithRuleScore(0), f)
	if sig.Level != LevelElevated {
		t.Fatalf("expected Elevated, got %s (score %d)", sig.Level, sig.Score)
	}
	if sig.Score != 100 {
		t.Errorf("expected score 100, got %d", sig.Score)
	}
	if len(sig.Drivers) != 3 {
		t.Fatalf("expected 3 drivers, got %v", sig.Drivers)
	}
	if !strings.Contains(sig.Drivers[0], "anxiety") {
		t.Errorf("expected anxiety as top driver, got %v", sig.Drivers)
	}
}

func TestDetect_HighVisibilitySuppressesSignal(t *testing.T) {
	f := reportedPsych(features.Psych{
		AnxietyLevel:     21,
		DepressionScore:  27,
		BullyingExposure: 5,
		PeerPressure:     5,
	})

	// Same internal strain, but the rule engine already flags the
	// student at 100: nothing is silent about this collapse.
	sig := Detect(fusionWithRuleScore(100), f)
	if sig.Score != 0 {
		t.Errorf("expected score 0 at full visibility, got %d", sig.Score)
	}
	if sig.Level != LevelLow {
		t.Errorf("expected Low, got %s", sig.Level)
	}
}

func TestDetect_NeutralReportedPsychIsLow(t *testing.T) {
	f := reportedPsych(features.Psych{
		SleepQuality:        3,
		AcademicPerformance: 3,
		SocialSupport:       2,
		PeerPressure:        2,
	})

	sig := Detect(fusionWithRuleScore(0), f)
	if sig.Level != LevelLow {
		t.Fatalf("expected Low for neutral survey, got %s (score %d)", sig.Level, sig.Score)
	}
	if len(sig.Drivers) != 0 {
		t.Errorf("neutral survey must produce no drivers, got %v", sig.Drivers)
	}
}

func TestDetect_AnxietyAloneReachesWatch(t *testing.T) {
	f := reportedPsych(features.Psych{
		AnxietyLevel:        21,
		SleepQuality:        3,
		AcademicPerformance: 3,
		SocialSupport:       2,
		PeerPressure:        2,
	})

	sig := Detect(fusionWithRuleScore(0), f)
	if sig.Level != LevelWatch {
		t.Fatalf("expected Watch, got %s (score %d)", sig.Level, sig.Score)
	}
	if len(sig.Drivers) != 1 || !strings.Contains(sig.Drivers[0], "anxiety") {
		t.Errorf("expected single anxiety driver, got %v", sig.Drivers)
	}
}

func TestDetect_MoreStrainNeverLowersScore(t *testing.T) {
	base := reportedPsych(features.Psych{
		AnxietyLevel:        5,
		SleepQuality:        3,
		AcademicPerformance: 3,
		SocialSupport:       2,
	})
	worse := reportedPsych(features.Psych{
		AnxietyLevel:        15,
		SleepQuality:        3,
		AcademicPerformance: 3,
		SocialSupport:       2,
	})

	fus := fusionWithRuleScore(20)
	if Detect(fus, worse).Score < Detect(fus, base).Score {
		t.Error("raising anxiety must not lower the collapse score")
	}
}
