package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionEvent records every call to the external risk classifier,
// including failures, for latency and cost tracking.
type PredictionEvent struct {
	ent.Schema
}

func (PredictionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PredictionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini, mock"),
		field.String("model").
			Comment("Model ID that served the request"),
		field.String("predicted_class").
			Default("").
			Comment("Low, Moderate or High; empty on failure"),
		field.Float("confidence").
			Default(0).
			Comment("Model confidence in [0,1]; zero on failure"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (PredictionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
