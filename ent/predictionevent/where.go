// Code generated by ent, DO NOT EDIT.

package predictionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldModel, v))
}

// PredictedClass applies equality check predicate on the "predicted_class" field. It's identical to PredictedClassEQ.
func PredictedClass(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictedClass, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldConfidence, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldModel, v))
}

// PredictedClassEQ applies the EQ predicate on the "predicted_class" field.
func PredictedClassEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictedClass, v))
}

// PredictedClassNEQ applies the NEQ predicate on the "predicted_class" field.
func PredictedClassNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldPredictedClass, v))
}

// PredictedClassIn applies the In predicate on the "predicted_class" field.
func PredictedClassIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldPredictedClass, vs...))
}

// PredictedClassNotIn applies the NotIn predicate on the "predicted_class" field.
func PredictedClassNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldPredictedClass, vs...))
}

// PredictedClassGT applies the GT predicate on the "predicted_class" field.
func PredictedClassGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldPredictedClass, v))
}

// PredictedClassGTE applies the GTE predicate on the "predicted_class" field.
func PredictedClassGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldPredictedClass, v))
}

// PredictedClassLT applies the LT predicate on the "predicted_class" field.
func PredictedClassLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldPredictedClass, v))
}

// PredictedClassLTE applies the LTE predicate on the "predicted_class" field.
func PredictedClassLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldPredictedClass, v))
}

// PredictedClassContains applies the Contains predicate on the "predicted_class" field.
func PredictedClassContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldPredictedClass, v))
}

// PredictedClassHasPrefix applies the HasPrefix predicate on the "predicted_class" field.
func PredictedClassHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldPredictedClass, v))
}

// PredictedClassHasSuffix applies the HasSuffix predicate on the "predicted_class" field.
func PredictedClassHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldPredictedClass, v))
}

// PredictedClassEqualFold applies the EqualFold predicate on the "predicted_class" field.
func PredictedClassEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldPredictedClass, v))
}

// PredictedClassContainsFold applies the ContainsFold predicate on the "predicted_class" field.
func PredictedClassContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldPredictedClass, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldConfidence, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldOutputTokens, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.NotPredicates(p))
}
