// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/readingevent"
)

// ReadingEvent is the model entity for the ReadingEvent schema.
type ReadingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Zero-based page position in the story
	PageIndex int `json:"page_index,omitempty"`
	// Words on the page
	WordCount int `json:"word_count,omitempty"`
	// Time the page was open
	ElapsedMs int `json:"elapsed_ms,omitempty"`
	// Computed words per minute
	Wpm float64 `json:"wpm,omitempty"`
	// valid, too_fast, or too_slow
	Flag         string `json:"flag,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReadingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case readingevent.FieldWpm:
			values[i] = new(sql.NullFloat64)
		case readingevent.FieldID, readingevent.FieldSequence, readingevent.FieldPageIndex, readingevent.FieldWordCount, readingevent.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case readingevent.FieldSessionID, readingevent.FieldFlag:
			values[i] = new(sql.NullString)
		case readingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReadingEvent fields.
func (_m *ReadingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case readingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case readingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case readingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case readingevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case readingevent.FieldPageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_index", values[i])
			} else if value.Valid {
				_m.PageIndex = int(value.Int64)
			}
		case readingevent.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case readingevent.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = int(value.Int64)
			}
		case readingevent.FieldWpm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wpm", values[i])
			} else if value.Valid {
				_m.Wpm = value.Float64
			}
		case readingevent.FieldFlag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flag", values[i])
			} else if value.Valid {
				_m.Flag = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReadingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReadingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReadingEvent.
// Note that you need to call ReadingEvent.Unwrap() before calling this method if this ReadingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReadingEvent) Update() *ReadingEventUpdateOne {
	return NewReadingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReadingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReadingEvent) Unwrap() *ReadingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReadingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReadingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReadingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("page_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageIndex))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteString(", ")
	builder.WriteString("wpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wpm))
	builder.WriteString(", ")
	builder.WriteString("flag=")
	builder.WriteString(_m.Flag)
	builder.WriteByte(')')
	return builder.String()
}

// ReadingEvents is a parsable slice of ReadingEvent.
type ReadingEvents []*ReadingEvent
