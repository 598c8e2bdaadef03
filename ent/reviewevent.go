// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Reviewed fact (letter, syllable, sight word)
	FactID string `json:"fact_id,omitempty"`
	// 1=again 2=hard 3=good 4=easy
	Rating int `json:"rating,omitempty"`
	// Post-review memory stability in days
	Stability float64 `json:"stability,omitempty"`
	// Post-review difficulty in [1,10]
	Difficulty float64 `json:"difficulty,omitempty"`
	// Estimated recall probability at review time
	Retrievability float64 `json:"retrievability,omitempty"`
	// Days until the next review
	IntervalDays int `json:"interval_days,omitempty"`
	// Next due date
	Due          time.Time `json:"due,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldStability, reviewevent.FieldDifficulty, reviewevent.FieldRetrievability:
			values[i] = new(sql.NullFloat64)
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldRating, reviewevent.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldFactID:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp, reviewevent.FieldDue:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldFactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_id", values[i])
			} else if value.Valid {
				_m.FactID = value.String
			}
		case reviewevent.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case reviewevent.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = value.Float64
			}
		case reviewevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case reviewevent.FieldRetrievability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field retrievability", values[i])
			} else if value.Valid {
				_m.Retrievability = value.Float64
			}
		case reviewevent.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewevent.FieldDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due", values[i])
			} else if value.Valid {
				_m.Due = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fact_id=")
	builder.WriteString(_m.FactID)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stability))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("retrievability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retrievability))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("due=")
	builder.WriteString(_m.Due.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
