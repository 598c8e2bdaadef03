// Code generated by ent, DO NOT EDIT.

package readingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the readingevent type in the database.
	Label = "reading_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPageIndex holds the string denoting the page_index field in the database.
	FieldPageIndex = "page_index"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// FieldWpm holds the string denoting the wpm field in the database.
	FieldWpm = "wpm"
	// FieldFlag holds the string denoting the flag field in the database.
	FieldFlag = "flag"
	// Table holds the table name of the readingevent in the database.
	Table = "reading_events"
)

// Columns holds all SQL columns for readingevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldPageIndex,
	FieldWordCount,
	FieldElapsedMs,
	FieldWpm,
	FieldFlag,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// FlagValidator is a validator for the "flag" field. It is called by the builders before save.
	FlagValidator func(string) error
)

// OrderOption defines the ordering options for the ReadingEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPageIndex orders the results by the page_index field.
func ByPageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageIndex, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByWpm orders the results by the wpm field.
func ByWpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWpm, opts...).ToFunc()
}

// ByFlag orders the results by the flag field.
func ByFlag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlag, opts...).ToFunc()
}
