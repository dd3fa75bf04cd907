// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/stresswatch/ent/assessmentevent"
	"github.com/abhisek/stresswatch/ent/ingestevent"
	"github.com/abhisek/stresswatch/ent/predictionevent"
	"github.com/abhisek/stresswatch/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescTriggeredCount is the schema descriptor for triggered_count field.
	assessmenteventDescTriggeredCount := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultTriggeredCount holds the default value on creation for the triggered_count field.
	assessmentevent.DefaultTriggeredCount = assessmenteventDescTriggeredCount.Default.(int)
	// assessmenteventDescCollapseScore is the schema descriptor for collapse_score field.
	assessmenteventDescCollapseScore := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultCollapseScore holds the default value on creation for the collapse_score field.
	assessmentevent.DefaultCollapseScore = assessmenteventDescCollapseScore.Default.(int)
	// assessmenteventDescCollapseLevel is the schema descriptor for collapse_level field.
	assessmenteventDescCollapseLevel := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultCollapseLevel holds the default value on creation for the collapse_level field.
	assessmentevent.DefaultCollapseLevel = assessmenteventDescCollapseLevel.Default.(string)
	ingesteventMixin := schema.IngestEvent{}.Mixin()
	ingesteventMixinFields0 := ingesteventMixin[0].Fields()
	_ = ingesteventMixinFields0
	ingesteventFields := schema.IngestEvent{}.Fields()
	_ = ingesteventFields
	// ingesteventDescTimestamp is the schema descriptor for timestamp field.
	ingesteventDescTimestamp := ingesteventMixinFields0[1].Descriptor()
	// ingestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ingestevent.DefaultTimestamp = ingesteventDescTimestamp.Default.(func() time.Time)
	// ingesteventDescDetail is the schema descriptor for detail field.
	ingesteventDescDetail := ingesteventFields[3].Descriptor()
	// ingestevent.DefaultDetail holds the default value on creation for the detail field.
	ingestevent.DefaultDetail = ingesteventDescDetail.Default.(string)
	predictioneventMixin := schema.PredictionEvent{}.Mixin()
	predictioneventMixinFields0 := predictioneventMixin[0].Fields()
	_ = predictioneventMixinFields0
	predictioneventFields := schema.PredictionEvent{}.Fields()
	_ = predictioneventFields
	// predictioneventDescTimestamp is the schema descriptor for timestamp field.
	predictioneventDescTimestamp := predictioneventMixinFields0[1].Descriptor()
	// predictionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	predictionevent.DefaultTimestamp = predictioneventDescTimestamp.Default.(func() time.Time)
	// predictioneventDescPredictedClass is the schema descriptor for predicted_class field.
	predictioneventDescPredictedClass := predictioneventFields[2].Descriptor()
	// predictionevent.DefaultPredictedClass holds the default value on creation for the predicted_class field.
	predictionevent.DefaultPredictedClass = predictioneventDescPredictedClass.Default.(string)
	// predictioneventDescConfidence is the schema descriptor for confidence field.
	predictioneventDescConfidence := predictioneventFields[3].Descriptor()
	// predictionevent.DefaultConfidence holds the default value on creation for the confidence field.
	predictionevent.DefaultConfidence = predictioneventDescConfidence.Default.(float64)
	// predictioneventDescInputTokens is the schema descriptor for input_tokens field.
	predictioneventDescInputTokens := predictioneventFields[4].Descriptor()
	// predictionevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	predictionevent.DefaultInputTokens = predictioneventDescInputTokens.Default.(int)
	// predictioneventDescOutputTokens is the schema descriptor for output_tokens field.
	predictioneventDescOutputTokens := predictioneventFields[5].Descriptor()
	// predictionevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	predictionevent.DefaultOutputTokens = predictioneventDescOutputTokens.Default.(int)
	// predictioneventDescLatencyMs is the schema descriptor for latency_ms field.
	predictioneventDescLatencyMs := predictioneventFields[6].Descriptor()
	// predictionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	predictionevent.DefaultLatencyMs = predictioneventDescLatencyMs.Default.(int64)
	// predictioneventDescErrorMessage is the schema descriptor for error_message field.
	predictioneventDescErrorMessage := predictioneventFields[8].Descriptor()
	// predictionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	predictionevent.DefaultErrorMessage = predictioneventDescErrorMessage.Default.(string)
}
