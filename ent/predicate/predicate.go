// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ReadingEvent is the predicate function for readingevent builders.
type ReadingEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
