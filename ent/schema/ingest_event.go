package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngestEvent records one behavioral-data ingestion (attendance update or
// assignment submission) and the risk delta it produced.
type IngestEvent struct {
	ent.Schema
}

func (IngestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (IngestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Comment("UUID assigned at ingestion"),
		field.Int("student_id"),
		field.String("kind").
			Comment("attendance or assignment"),
		field.String("detail").
			Default("").
			Comment("Submission status or attendance change summary"),
		field.Int("risk_before"),
		field.Int("risk_after"),
	}
}

func (IngestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("kind"),
	}
}
