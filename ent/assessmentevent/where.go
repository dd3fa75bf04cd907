// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldStudentID, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldFinalScore, v))
}

// FinalLevel applies equality check predicate on the "final_level" field. It's identical to FinalLevelEQ.
func FinalLevel(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldFinalLevel, v))
}

// RuleScore applies equality check predicate on the "rule_score" field. It's identical to RuleScoreEQ.
func RuleScore(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRuleScore, v))
}

// TriggeredCount applies equality check predicate on the "triggered_count" field. It's identical to TriggeredCountEQ.
func TriggeredCount(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTriggeredCount, v))
}

// MlUsed applies equality check predicate on the "ml_used" field. It's identical to MlUsedEQ.
func MlUsed(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMlUsed, v))
}

// CollapseScore applies equality check predicate on the "collapse_score" field. It's identical to CollapseScoreEQ.
func CollapseScore(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCollapseScore, v))
}

// CollapseLevel applies equality check predicate on the "collapse_level" field. It's identical to CollapseLevelEQ.
func CollapseLevel(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCollapseLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldStudentID, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldFinalScore, v))
}

// FinalLevelEQ applies the EQ predicate on the "final_level" field.
func FinalLevelEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldFinalLevel, v))
}

// FinalLevelNEQ applies the NEQ predicate on the "final_level" field.
func FinalLevelNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldFinalLevel, v))
}

// FinalLevelIn applies the In predicate on the "final_level" field.
func FinalLevelIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldFinalLevel, vs...))
}

// FinalLevelNotIn applies the NotIn predicate on the "final_level" field.
func FinalLevelNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldFinalLevel, vs...))
}

// FinalLevelGT applies the GT predicate on the "final_level" field.
func FinalLevelGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldFinalLevel, v))
}

// FinalLevelGTE applies the GTE predicate on the "final_level" field.
func FinalLevelGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldFinalLevel, v))
}

// FinalLevelLT applies the LT predicate on the "final_level" field.
func FinalLevelLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldFinalLevel, v))
}

// FinalLevelLTE applies the LTE predicate on the "final_level" field.
func FinalLevelLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldFinalLevel, v))
}

// FinalLevelContains applies the Contains predicate on the "final_level" field.
func FinalLevelContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldFinalLevel, v))
}

// FinalLevelHasPrefix applies the HasPrefix predicate on the "final_level" field.
func FinalLevelHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldFinalLevel, v))
}

// FinalLevelHasSuffix applies the HasSuffix predicate on the "final_level" field.
func FinalLevelHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldFinalLevel, v))
}

// FinalLevelEqualFold applies the EqualFold predicate on the "final_level" field.
func FinalLevelEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldFinalLevel, v))
}

// FinalLevelContainsFold applies the ContainsFold predicate on the "final_level" field.
func FinalLevelContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldFinalLevel, v))
}

// RuleScoreEQ applies the EQ predicate on the "rule_score" field.
func RuleScoreEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRuleScore, v))
}

// RuleScoreNEQ applies the NEQ predicate on the "rule_score" field.
func RuleScoreNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldRuleScore, v))
}

// RuleScoreIn applies the In predicate on the "rule_score" field.
func RuleScoreIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldRuleScore, vs...))
}

// RuleScoreNotIn applies the NotIn predicate on the "rule_score" field.
func RuleScoreNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldRuleScore, vs...))
}

// RuleScoreGT applies the GT predicate on the "rule_score" field.
func RuleScoreGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldRuleScore, v))
}

// RuleScoreGTE applies the GTE predicate on the "rule_score" field.
func RuleScoreGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldRuleScore, v))
}

// RuleScoreLT applies the LT predicate on the "rule_score" field.
func RuleScoreLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldRuleScore, v))
}

// RuleScoreLTE applies the LTE predicate on the "rule_score" field.
func RuleScoreLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldRuleScore, v))
}

// TriggeredCountEQ applies the EQ predicate on the "triggered_count" field.
func TriggeredCountEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTriggeredCount, v))
}

// TriggeredCountNEQ applies the NEQ predicate on the "triggered_count" field.
func TriggeredCountNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTriggeredCount, v))
}

// TriggeredCountIn applies the In predicate on the "triggered_count" field.
func TriggeredCountIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTriggeredCount, vs...))
}

// TriggeredCountNotIn applies the NotIn predicate on the "triggered_count" field.
func TriggeredCountNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTriggeredCount, vs...))
}

// TriggeredCountGT applies the GT predicate on the "triggered_count" field.
func TriggeredCountGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTriggeredCount, v))
}

// TriggeredCountGTE applies the GTE predicate on the "triggered_count" field.
func TriggeredCountGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTriggeredCount, v))
}

// TriggeredCountLT applies the LT predicate on the "triggered_count" field.
func TriggeredCountLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTriggeredCount, v))
}

// TriggeredCountLTE applies the LTE predicate on the "triggered_count" field.
func TriggeredCountLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTriggeredCount, v))
}

// MlUsedEQ applies the EQ predicate on the "ml_used" field.
func MlUsedEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMlUsed, v))
}

// MlUsedNEQ applies the NEQ predicate on the "ml_used" field.
func MlUsedNEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldMlUsed, v))
}

// CollapseScoreEQ applies the EQ predicate on the "collapse_score" field.
func CollapseScoreEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCollapseScore, v))
}

// CollapseScoreNEQ applies the NEQ predicate on the "collapse_score" field.
func CollapseScoreNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldCollapseScore, v))
}

// CollapseScoreIn applies the In predicate on the "collapse_score" field.
func CollapseScoreIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldCollapseScore, vs...))
}

// CollapseScoreNotIn applies the NotIn predicate on the "collapse_score" field.
func CollapseScoreNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldCollapseScore, vs...))
}

// CollapseScoreGT applies the GT predicate on the "collapse_score" field.
func CollapseScoreGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldCollapseScore, v))
}

// CollapseScoreGTE applies the GTE predicate on the "collapse_score" field.
func CollapseScoreGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldCollapseScore, v))
}

// CollapseScoreLT applies the LT predicate on the "collapse_score" field.
func CollapseScoreLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldCollapseScore, v))
}

// CollapseScoreLTE applies the LTE predicate on the "collapse_score" field.
func CollapseScoreLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldCollapseScore, v))
}

// CollapseLevelEQ applies the EQ predicate on the "collapse_level" field.
func CollapseLevelEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCollapseLevel, v))
}

// CollapseLevelNEQ applies the NEQ predicate on the "collapse_level" field.
func CollapseLevelNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldCollapseLevel, v))
}

// CollapseLevelIn applies the In predicate on the "collapse_level" field.
func CollapseLevelIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldCollapseLevel, vs...))
}

// CollapseLevelNotIn applies the NotIn predicate on the "collapse_level" field.
func CollapseLevelNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldCollapseLevel, vs...))
}

// CollapseLevelGT applies the GT predicate on the "collapse_level" field.
func CollapseLevelGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldCollapseLevel, v))
}

// CollapseLevelGTE applies the GTE predicate on the "collapse_level" field.
func CollapseLevelGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldCollapseLevel, v))
}

// CollapseLevelLT applies the LT predicate on the "collapse_level" field.
func CollapseLevelLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldCollapseLevel, v))
}

// CollapseLevelLTE applies the LTE predicate on the "collapse_level" field.
func CollapseLevelLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldCollapseLevel, v))
}

// CollapseLevelContains applies the Contains predicate on the "collapse_level" field.
func CollapseLevelContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldCollapseLevel, v))
}

// CollapseLevelHasPrefix applies the HasPrefix predicate on the "collapse_level" field.
func CollapseLevelHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldCollapseLevel, v))
}

// CollapseLevelHasSuffix applies the HasSuffix predicate on the "collapse_level" field.
func CollapseLevelHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldCollapseLevel, v))
}

// CollapseLevelEqualFold applies the EqualFold predicate on the "collapse_level" field.
func CollapseLevelEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldCollapseLevel, v))
}

// CollapseLevelContainsFold applies the ContainsFold predicate on the "collapse_level" field.
func CollapseLevelContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldCollapseLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
