// Code generated by ent, DO NOT EDIT.

package ingestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingestevent type in the database.
	Label = "ingest_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldRiskBefore holds the string denoting the risk_before field in the database.
	FieldRiskBefore = "risk_before"
	// FieldRiskAfter holds the string denoting the risk_after field in the database.
	FieldRiskAfter = "risk_after"
	// Table holds the table name of the ingestevent in the database.
	Table = "ingest_events"
)

// Columns holds all SQL columns for ingestevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEventID,
	FieldStudentID,
	FieldKind,
	FieldDetail,
	FieldRiskBefore,
	FieldRiskAfter,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultDetail holds the default value on creation for the "detail" field.
	DefaultDetail string
)

// OrderOption defines the ordering options for the IngestEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByRiskBefore orders the results by the risk_before field.
func ByRiskBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskBefore, opts...).ToFunc()
}

// ByRiskAfter orders the results by the risk_after field.
func ByRiskAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskAfter, opts...).ToFunc()
}
