package advice

// Type categorizes a recommendation for presentation grouping.
type Type string

const (
	TypeAdvisor    Type = "Advisor"
	TypePlanning   Type = "Planning"
	TypeScheduling Type = "Scheduling"
	TypeWellness   Type = "Wellness"
)

// Recommendation is one actionable advice card tied to a triggered rule.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        Type   `json:"type"`
}

// byRule maps rule ids to their canned advice. One recommendation per
// triggered rule id, nothing more.
var byRule = map[string]Recommendation{
	"attendance_drop": {
		ID:          "REC_ATTENDANCE",
		Title:       "Schedule Advisor Meeting",
		Description: "Book a session with your academic advisor to discuss attendance patterns and identify any barriers to class participation.",
		Type:        TypeAdvisor,
	},
	"late_submissions": {
		ID:          "REC_DEADLINE",
		Title:       "Deadline Management Workshop",
		Description: "Attend a time management workshop or use a calendar system to track assignment due dates 48 hours in advance.",
		Type:        TypePlanning,
	},
	"workload_spike": {
		ID:          "REC_WORKLOAD",
		Title:       "Workload Balancing",
		Description: "Work with your advisor to evaluate current course load and consider redistributing tasks or dropping non-essential activities.",
		Type:        TypeScheduling,
	},
	"missing_submission": {
		ID:          "REC_RECOVERY",
		Title:       "Academic Recovery Plan",
		Description: "Contact your professors to discuss make-up options and create a catch-up plan for missed assignments.",
		Type:        TypePlanning,
	},
	"behavior_change": {
		ID:          "REC_CHECKIN",
		Title:       "Wellness Check-In",
		Description: "Consider visiting the campus counseling center to discuss any personal challenges affecting your academic performance.",
		Type:        TypeWellness,
	},
}

// defaultRec is returned alone when no rules triggered.
var defaultRec = Recommendation{
	ID:          "REC_MAINTAIN",
	Title:       "Keep Up the Good Work",
	Description: "You're doing well. Continue your current study habits and maintain your healthy academic balance.",
	Type:        TypeWellness,
}

// Recommend maps triggered rule ids to advice, preserving input order.
// Unknown ids are skipped. With no triggered rules it returns exactly one
// default wellness recommendation.
func Recommend(triggeredRuleIDs []string) []Recommendation {
	var recs []Recommendation
	for _, id := range triggeredRuleIDs {
		if rec, ok := byRule[id]; ok {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		recs = append(recs, defaultRec)
	}
	return recs
}
