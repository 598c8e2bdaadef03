// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFactID holds the string denoting the fact_id field in the database.
	FieldFactID = "fact_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldStability holds the string denoting the stability field in the database.
	FieldStability = "stability"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldRetrievability holds the string denoting the retrievability field in the database.
	FieldRetrievability = "retrievability"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldDue holds the string denoting the due field in the database.
	FieldDue = "due"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFactID,
	FieldRating,
	FieldStability,
	FieldDifficulty,
	FieldRetrievability,
	FieldIntervalDays,
	FieldDue,
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
	// FactIDValidator is a validator for the "fact_id" field. It is called by the builders before save.
	FactIDValidator func(string) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
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

// ByFactID orders the results by the fact_id field.
func ByFactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByStability orders the results by the stability field.
func ByStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStability, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByRetrievability orders the results by the retrievability field.
func ByRetrievability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetrievability, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByDue orders the results by the due field.
func ByDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDue, opts...).ToFunc()
}
