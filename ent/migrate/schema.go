// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "final_score", Type: field.TypeInt},
		{Name: "final_level", Type: field.TypeString},
		{Name: "rule_score", Type: field.TypeInt},
		{Name: "triggered_count", Type: field.TypeInt, Default: 0},
		{Name: "ml_used", Type: field.TypeBool},
		{Name: "collapse_score", Type: field.TypeInt, Default: 0},
		{Name: "collapse_level", Type: field.TypeString, Default: "Low"},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_final_level",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[5]},
			},
		},
	}
	// IngestEventsColumns holds the columns for the "ingest_events" table.
	IngestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "risk_before", Type: field.TypeInt},
		{Name: "risk_after", Type: field.TypeInt},
	}
	// IngestEventsTable holds the schema information for the "ingest_events" table.
	IngestEventsTable = &schema.Table{
		Name:       "ingest_events",
		Columns:    IngestEventsColumns,
		PrimaryKey: []*schema.Column{IngestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{IngestEventsColumns[1]},
			},
			{
				Name:    "ingestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{IngestEventsColumns[2]},
			},
			{
				Name:    "ingestevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{IngestEventsColumns[4]},
			},
			{
				Name:    "ingestevent_kind",
				Unique:  false,
				Columns: []*schema.Column{IngestEventsColumns[5]},
			},
		},
	}
	// PredictionEventsColumns holds the columns for the "prediction_events" table.
	PredictionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "predicted_class", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// PredictionEventsTable holds the schema information for the "prediction_events" table.
	PredictionEventsTable = &schema.Table{
		Name:       "prediction_events",
		Columns:    PredictionEventsColumns,
		PrimaryKey: []*schema.Column{PredictionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[1]},
			},
			{
				Name:    "predictionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[2]},
			},
			{
				Name:    "predictionevent_provider",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[3]},
			},
			{
				Name:    "predictionevent_success",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		IngestEventsTable,
		PredictionEventsTable,
	}
)

func init() {
}
