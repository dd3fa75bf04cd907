// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// Fused 0–100 risk score
	FinalScore int `json:"final_score,omitempty"`
	// Low, Moderate or High
	FinalLevel string `json:"final_level,omitempty"`
	// Rule component before fusion
	RuleScore int `json:"rule_score,omitempty"`
	// Number of rules that fired
	TriggeredCount int `json:"triggered_count,omitempty"`
	// False when the predictor was unavailable and scoring fell back to rules
	MlUsed bool `json:"ml_used,omitempty"`
	// CollapseScore holds the value of the "collapse_score" field.
	CollapseScore int `json:"collapse_score,omitempty"`
	// CollapseLevel holds the value of the "collapse_level" field.
	CollapseLevel string `json:"collapse_level,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldMlUsed:
			values[i] = new(sql.NullBool)
		case assessmentevent.FieldID, assessmentevent.FieldSequence, assessmentevent.FieldStudentID, assessmentevent.FieldFinalScore, assessmentevent.FieldRuleScore, assessmentevent.FieldTriggeredCount, assessmentevent.FieldCollapseScore:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldFinalLevel, assessmentevent.FieldCollapseLevel:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case assessmentevent.FieldFinalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = int(value.Int64)
			}
		case assessmentevent.FieldFinalLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_level", values[i])
			} else if value.Valid {
				_m.FinalLevel = value.String
			}
		case assessmentevent.FieldRuleScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rule_score", values[i])
			} else if value.Valid {
				_m.RuleScore = int(value.Int64)
			}
		case assessmentevent.FieldTriggeredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_count", values[i])
			} else if value.Valid {
				_m.TriggeredCount = int(value.Int64)
			}
		case assessmentevent.FieldMlUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ml_used", values[i])
			} else if value.Valid {
				_m.MlUsed = value.Bool
			}
		case assessmentevent.FieldCollapseScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field collapse_score", values[i])
			} else if value.Valid {
				_m.CollapseScore = int(value.Int64)
			}
		case assessmentevent.FieldCollapseLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collapse_level", values[i])
			} else if value.Valid {
				_m.CollapseLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("final_level=")
	builder.WriteString(_m.FinalLevel)
	builder.WriteString(", ")
	builder.WriteString("rule_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleScore))
	builder.WriteString(", ")
	builder.WriteString("triggered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredCount))
	builder.WriteString(", ")
	builder.WriteString("ml_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.MlUsed))
	builder.WriteString(", ")
	builder.WriteString("collapse_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollapseScore))
	builder.WriteString(", ")
	builder.WriteString("collapse_level=")
	builder.WriteString(_m.CollapseLevel)
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
