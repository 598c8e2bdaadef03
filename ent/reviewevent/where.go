// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FactID applies equality check predicate on the "fact_id" field. It's identical to FactIDEQ.
func FactID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldFactID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRating, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldStability, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Retrievability applies equality check predicate on the "retrievability" field. It's identical to RetrievabilityEQ.
func Retrievability(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRetrievability, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDue, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FactIDEQ applies the EQ predicate on the "fact_id" field.
func FactIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldFactID, v))
}

// FactIDNEQ applies the NEQ predicate on the "fact_id" field.
func FactIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldFactID, v))
}

// FactIDIn applies the In predicate on the "fact_id" field.
func FactIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldFactID, vs...))
}

// FactIDNotIn applies the NotIn predicate on the "fact_id" field.
func FactIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldFactID, vs...))
}

// FactIDGT applies the GT predicate on the "fact_id" field.
func FactIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldFactID, v))
}

// FactIDGTE applies the GTE predicate on the "fact_id" field.
func FactIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldFactID, v))
}

// FactIDLT applies the LT predicate on the "fact_id" field.
func FactIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldFactID, v))
}

// FactIDLTE applies the LTE predicate on the "fact_id" field.
func FactIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldFactID, v))
}

// FactIDContains applies the Contains predicate on the "fact_id" field.
func FactIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldFactID, v))
}

// FactIDHasPrefix applies the HasPrefix predicate on the "fact_id" field.
func FactIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldFactID, v))
}

// FactIDHasSuffix applies the HasSuffix predicate on the "fact_id" field.
func FactIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldFactID, v))
}

// FactIDEqualFold applies the EqualFold predicate on the "fact_id" field.
func FactIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldFactID, v))
}

// FactIDContainsFold applies the ContainsFold predicate on the "fact_id" field.
func FactIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldFactID, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldRating, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldStability, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldDifficulty, v))
}

// RetrievabilityEQ applies the EQ predicate on the "retrievability" field.
func RetrievabilityEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldRetrievability, v))
}

// RetrievabilityNEQ applies the NEQ predicate on the "retrievability" field.
func RetrievabilityNEQ(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldRetrievability, v))
}

// RetrievabilityIn applies the In predicate on the "retrievability" field.
func RetrievabilityIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldRetrievability, vs...))
}

// RetrievabilityNotIn applies the NotIn predicate on the "retrievability" field.
func RetrievabilityNotIn(vs ...float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldRetrievability, vs...))
}

// RetrievabilityGT applies the GT predicate on the "retrievability" field.
func RetrievabilityGT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldRetrievability, v))
}

// RetrievabilityGTE applies the GTE predicate on the "retrievability" field.
func RetrievabilityGTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldRetrievability, v))
}

// RetrievabilityLT applies the LT predicate on the "retrievability" field.
func RetrievabilityLT(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldRetrievability, v))
}

// RetrievabilityLTE applies the LTE predicate on the "retrievability" field.
func RetrievabilityLTE(v float64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldRetrievability, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldIntervalDays, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldDue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
