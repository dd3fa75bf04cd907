package advice

import (
	"testing"

	"github.com/abhisek/stresswatch/internal/rules"
)

func TestRecommend_NoTriggersReturnsDefault(t *testing.T) {
	recs := Recommend(nil)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one recommendation, got %d", len(recs))
	}
	if recs[0].ID != "REC_MAINTAIN" {
		t.Errorf("expected REC_MAINTAIN, got %s", recs[0].ID)
	}
}

func TestRecommend_MapsEveryRule(t *testing.T) {
	want := map[string]string{
		"attendance_drop":    "REC_ATTENDANCE",
		"late_submissions":   "REC_DEADLINE",
		"workload_spike":     "REC_WORKLOAD",
		"missing_submission": "REC_RECOVERY",
		"behavior_change":    "REC_CHECKIN",
	}
	for ruleID, recID := range want {
		recs := Recommend([]string{ruleID})
		if len(recs) != 1 || recs[0].ID != recID {
			t.Errorf("rule %s: expected %s, got %v", ruleID, recID, recs)
		}
	}
}

func TestRecommend_PreservesOrderAndSkipsUnknown(t *testing.T) {
	recs := Recommend([]string{"missing_submission", "bogus_rule", "attendance_drop"})
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ID != "REC_RECOVERY" || recs[1].ID != "REC_ATTENDANCE" {
		t.Errorf("order not preserved: %v", recs)
	}
}

func TestRecommend_CoversEntireRuleTable(t *testing.T) {
	for _, r := range rules.Table() {
		recs := Recommend([]string{r.ID})
		if len(recs) != 1 || recs[0].ID == "REC_MAINTAIN" {
			t.Errorf("rule %s has no dedicated recommendation", r.ID)
		}
	}
}
