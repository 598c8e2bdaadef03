// Code generated by ent, DO NOT EDIT.

package readingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldSessionID, v))
}

// PageIndex applies equality check predicate on the "page_index" field. It's identical to PageIndexEQ.
func PageIndex(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldPageIndex, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldWordCount, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// Wpm applies equality check predicate on the "wpm" field. It's identical to WpmEQ.
func Wpm(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldWpm, v))
}

// Flag applies equality check predicate on the "flag" field. It's identical to FlagEQ.
func Flag(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldFlag, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// PageIndexEQ applies the EQ predicate on the "page_index" field.
func PageIndexEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldPageIndex, v))
}

// PageIndexNEQ applies the NEQ predicate on the "page_index" field.
func PageIndexNEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldPageIndex, v))
}

// PageIndexIn applies the In predicate on the "page_index" field.
func PageIndexIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldPageIndex, vs...))
}

// PageIndexNotIn applies the NotIn predicate on the "page_index" field.
func PageIndexNotIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldPageIndex, vs...))
}

// PageIndexGT applies the GT predicate on the "page_index" field.
func PageIndexGT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldPageIndex, v))
}

// PageIndexGTE applies the GTE predicate on the "page_index" field.
func PageIndexGTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldPageIndex, v))
}

// PageIndexLT applies the LT predicate on the "page_index" field.
func PageIndexLT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldPageIndex, v))
}

// PageIndexLTE applies the LTE predicate on the "page_index" field.
func PageIndexLTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldPageIndex, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldWordCount, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldElapsedMs, v))
}

// WpmEQ applies the EQ predicate on the "wpm" field.
func WpmEQ(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldWpm, v))
}

// WpmNEQ applies the NEQ predicate on the "wpm" field.
func WpmNEQ(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldWpm, v))
}

// WpmIn applies the In predicate on the "wpm" field.
func WpmIn(vs ...float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldWpm, vs...))
}

// WpmNotIn applies the NotIn predicate on the "wpm" field.
func WpmNotIn(vs ...float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldWpm, vs...))
}

// WpmGT applies the GT predicate on the "wpm" field.
func WpmGT(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldWpm, v))
}

// WpmGTE applies the GTE predicate on the "wpm" field.
func WpmGTE(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldWpm, v))
}

// WpmLT applies the LT predicate on the "wpm" field.
func WpmLT(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldWpm, v))
}

// WpmLTE applies the LTE predicate on the "wpm" field.
func WpmLTE(v float64) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldWpm, v))
}

// FlagEQ applies the EQ predicate on the "flag" field.
func FlagEQ(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEQ(FieldFlag, v))
}

// FlagNEQ applies the NEQ predicate on the "flag" field.
func FlagNEQ(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNEQ(FieldFlag, v))
}

// FlagIn applies the In predicate on the "flag" field.
func FlagIn(vs ...string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldIn(FieldFlag, vs...))
}

// FlagNotIn applies the NotIn predicate on the "flag" field.
func FlagNotIn(vs ...string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldNotIn(FieldFlag, vs...))
}

// FlagGT applies the GT predicate on the "flag" field.
func FlagGT(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGT(FieldFlag, v))
}

// FlagGTE applies the GTE predicate on the "flag" field.
func FlagGTE(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldGTE(FieldFlag, v))
}

// FlagLT applies the LT predicate on the "flag" field.
func FlagLT(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLT(FieldFlag, v))
}

// FlagLTE applies the LTE predicate on the "flag" field.
func FlagLTE(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldLTE(FieldFlag, v))
}

// FlagContains applies the Contains predicate on the "flag" field.
func FlagContains(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldContains(FieldFlag, v))
}

// FlagHasPrefix applies the HasPrefix predicate on the "flag" field.
func FlagHasPrefix(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldHasPrefix(FieldFlag, v))
}

// FlagHasSuffix applies the HasSuffix predicate on the "flag" field.
func FlagHasSuffix(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldHasSuffix(FieldFlag, v))
}

// FlagEqualFold applies the EqualFold predicate on the "flag" field.
func FlagEqualFold(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldEqualFold(FieldFlag, v))
}

// FlagContainsFold applies the ContainsFold predicate on the "flag" field.
func FlagContainsFold(v string) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.FieldContainsFold(FieldFlag, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadingEvent) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadingEvent) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadingEvent) predicate.ReadingEvent {
	return predicate.ReadingEvent(sql.NotPredicates(p))
}
