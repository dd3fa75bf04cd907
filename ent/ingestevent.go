// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/ingestevent"
)

// IngestEvent is the model entity for the IngestEvent schema.
type IngestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at ingestion
	EventID string `json:"event_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// attendance or assignment
	Kind string `json:"kind,omitempty"`
	// Submission status or attendance change summary
	Detail string `json:"detail,omitempty"`
	// RiskBefore holds the value of the "risk_before" field.
	RiskBefore int `json:"risk_before,omitempty"`
	// RiskAfter holds the value of the "risk_after" field.
	RiskAfter    int `json:"risk_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestevent.FieldID, ingestevent.FieldSequence, ingestevent.FieldStudentID, ingestevent.FieldRiskBefore, ingestevent.FieldRiskAfter:
			values[i] = new(sql.NullInt64)
		case ingestevent.FieldEventID, ingestevent.FieldKind, ingestevent.FieldDetail:
			values[i] = new(sql.NullString)
		case ingestevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestEvent fields.
func (_m *IngestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ingestevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case ingestevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case ingestevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case ingestevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case ingestevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case ingestevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case ingestevent.FieldRiskBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_before", values[i])
			} else if value.Valid {
				_m.RiskBefore = int(value.Int64)
			}
		case ingestevent.FieldRiskAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_after", values[i])
			} else if value.Valid {
				_m.RiskAfter = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *IngestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestEvent.
// Note that you need to call IngestEvent.Unwrap() before calling this method if this IngestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestEvent) Update() *IngestEventUpdateOne {
	return NewIngestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestEvent) Unwrap() *IngestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("IngestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("risk_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskBefore))
	builder.WriteString(", ")
	builder.WriteString("risk_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskAfter))
	builder.WriteByte(')')
	return builder.String()
}

// IngestEvents is a parsable slice of IngestEvent.
type IngestEvents []*IngestEvent
