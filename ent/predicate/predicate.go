// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// IngestEvent is the predicate function for ingestevent builders.
type IngestEvent func(*sql.Selector)

// PredictionEvent is the predicate function for predictionevent builders.
type PredictionEvent func(*sql.Selector)
