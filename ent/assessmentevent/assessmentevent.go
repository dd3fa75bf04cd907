// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldFinalLevel holds the string denoting the final_level field in the database.
	FieldFinalLevel = "final_level"
	// FieldRuleScore holds the string denoting the rule_score field in the database.
	FieldRuleScore = "rule_score"
	// FieldTriggeredCount holds the string denoting the triggered_count field in the database.
	FieldTriggeredCount = "triggered_count"
	// FieldMlUsed holds the string denoting the ml_used field in the database.
	FieldMlUsed = "ml_used"
	// FieldCollapseScore holds the string denoting the collapse_score field in the database.
	FieldCollapseScore = "collapse_score"
	// FieldCollapseLevel holds the string denoting the collapse_level field in the database.
	FieldCollapseLevel = "collapse_level"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldFinalScore,
	FieldFinalLevel,
	FieldRuleScore,
	FieldTriggeredCount,
	FieldMlUsed,
	FieldCollapseScore,
	FieldCollapseLevel,
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
	// DefaultTriggeredCount holds the default value on creation for the "triggered_count" field.
	DefaultTriggeredCount int
	// DefaultCollapseScore holds the default value on creation for the "collapse_score" field.
	DefaultCollapseScore int
	// DefaultCollapseLevel holds the default value on creation for the "collapse_level" field.
	DefaultCollapseLevel string
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
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

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByFinalLevel orders the results by the final_level field.
func ByFinalLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalLevel, opts...).ToFunc()
}

// ByRuleScore orders the results by the rule_score field.
func ByRuleScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleScore, opts...).ToFunc()
}

// ByTriggeredCount orders the results by the triggered_count field.
func ByTriggeredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredCount, opts...).ToFunc()
}

// ByMlUsed orders the results by the ml_used field.
func ByMlUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlUsed, opts...).ToFunc()
}

// ByCollapseScore orders the results by the collapse_score field.
func ByCollapseScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollapseScore, opts...).ToFunc()
}

// ByCollapseLevel orders the results by the collapse_level field.
func ByCollapseLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollapseLevel, opts...).ToFunc()
}
