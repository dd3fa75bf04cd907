package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed risk assessment: the fused score,
// its rule component, and the parallel collapse signal.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.Int("final_score").
			Comment("Fused 0–100 risk score"),
		field.String("final_level").
			Comment("Low, Moderate or High"),
		field.Int("rule_score").
			Comment("Rule component before fusion"),
		field.Int("triggered_count").
			Default(0).
			Comment("Number of rules that fired"),
		field.Bool("ml_used").
			Comment("False when the predictor was unavailable and scoring fell back to rules"),
		field.Int("collapse_score").
			Default(0),
		field.String("collapse_level").
			Default("Low"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("final_level"),
	}
}
