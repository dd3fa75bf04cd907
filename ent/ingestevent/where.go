// Code generated by ent, DO NOT EDIT.

package ingestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldEventID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldStudentID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldKind, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldDetail, v))
}

// RiskBefore applies equality check predicate on the "risk_before" field. It's identical to RiskBeforeEQ.
func RiskBefore(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldRiskBefore, v))
}

// RiskAfter applies equality check predicate on the "risk_after" field. It's identical to RiskAfterEQ.
func RiskAfter(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldRiskAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContainsFold(FieldEventID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldStudentID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContainsFold(FieldKind, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldContainsFold(FieldDetail, v))
}

// RiskBeforeEQ applies the EQ predicate on the "risk_before" field.
func RiskBeforeEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldRiskBefore, v))
}

// RiskBeforeNEQ applies the NEQ predicate on the "risk_before" field.
func RiskBeforeNEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldRiskBefore, v))
}

// RiskBeforeIn applies the In predicate on the "risk_before" field.
func RiskBeforeIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldRiskBefore, vs...))
}

// RiskBeforeNotIn applies the NotIn predicate on the "risk_before" field.
func RiskBeforeNotIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldRiskBefore, vs...))
}

// RiskBeforeGT applies the GT predicate on the "risk_before" field.
func RiskBeforeGT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldRiskBefore, v))
}

// RiskBeforeGTE applies the GTE predicate on the "risk_before" field.
func RiskBeforeGTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldRiskBefore, v))
}

// RiskBeforeLT applies the LT predicate on the "risk_before" field.
func RiskBeforeLT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldRiskBefore, v))
}

// RiskBeforeLTE applies the LTE predicate on the "risk_before" field.
func RiskBeforeLTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldRiskBefore, v))
}

// RiskAfterEQ applies the EQ predicate on the "risk_after" field.
func RiskAfterEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldEQ(FieldRiskAfter, v))
}

// RiskAfterNEQ applies the NEQ predicate on the "risk_after" field.
func RiskAfterNEQ(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNEQ(FieldRiskAfter, v))
}

// RiskAfterIn applies the In predicate on the "risk_after" field.
func RiskAfterIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldIn(FieldRiskAfter, vs...))
}

// RiskAfterNotIn applies the NotIn predicate on the "risk_after" field.
func RiskAfterNotIn(vs ...int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldNotIn(FieldRiskAfter, vs...))
}

// RiskAfterGT applies the GT predicate on the "risk_after" field.
func RiskAfterGT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGT(FieldRiskAfter, v))
}

// RiskAfterGTE applies the GTE predicate on the "risk_after" field.
func RiskAfterGTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldGTE(FieldRiskAfter, v))
}

// RiskAfterLT applies the LT predicate on the "risk_after" field.
func RiskAfterLT(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLT(FieldRiskAfter, v))
}

// RiskAfterLTE applies the LTE predicate on the "risk_after" field.
func RiskAfterLTE(v int) predicate.IngestEvent {
	return predicate.IngestEvent(sql.FieldLTE(FieldRiskAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestEvent) predicate.IngestEvent {
	return predicate.IngestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestEvent) predicate.IngestEvent {
	return predicate.IngestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestEvent) predicate.IngestEvent {
	return predicate.IngestEvent(sql.NotPredicates(p))
}
