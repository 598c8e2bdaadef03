// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/llmrequestevent"
	"github.com/abhisek/lectio/ent/readingevent"
	"github.com/abhisek/lectio/ent/reviewevent"
	"github.com/abhisek/lectio/ent/schema"
	"github.com/abhisek/lectio/ent/sessionevent"
	"github.com/abhisek/lectio/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescSkillID is the schema descriptor for skill_id field.
	attempteventDescSkillID := attempteventFields[1].Descriptor()
	// attemptevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptevent.SkillIDValidator = attempteventDescSkillID.Validators[0].(func(string) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[2].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	readingeventMixin := schema.ReadingEvent{}.Mixin()
	readingeventMixinFields0 := readingeventMixin[0].Fields()
	_ = readingeventMixinFields0
	readingeventFields := schema.ReadingEvent{}.Fields()
	_ = readingeventFields
	// readingeventDescTimestamp is the schema descriptor for timestamp field.
	readingeventDescTimestamp := readingeventMixinFields0[1].Descriptor()
	// readingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	readingevent.DefaultTimestamp = readingeventDescTimestamp.Default.(func() time.Time)
	// readingeventDescSessionID is the schema descriptor for session_id field.
	readingeventDescSessionID := readingeventFields[0].Descriptor()
	// readingevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	readingevent.SessionIDValidator = readingeventDescSessionID.Validators[0].(func(string) error)
	// readingeventDescFlag is the schema descriptor for flag field.
	readingeventDescFlag := readingeventFields[5].Descriptor()
	// readingevent.FlagValidator is a validator for the "flag" field. It is called by the builders before save.
	readingevent.FlagValidator = readingeventDescFlag.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescFactID is the schema descriptor for fact_id field.
	revieweventDescFactID := revieweventFields[0].Descriptor()
	// reviewevent.FactIDValidator is a validator for the "fact_id" field. It is called by the builders before save.
	reviewevent.FactIDValidator = revieweventDescFactID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAttempts is the schema descriptor for attempts field.
	sessioneventDescAttempts := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultAttempts holds the default value on creation for the attempts field.
	sessionevent.DefaultAttempts = sessioneventDescAttempts.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescWpm is the schema descriptor for wpm field.
	sessioneventDescWpm := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultWpm holds the default value on creation for the wpm field.
	sessionevent.DefaultWpm = sessioneventDescWpm.Default.(float64)
	// sessioneventDescConfidence is the schema descriptor for confidence field.
	sessioneventDescConfidence := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultConfidence holds the default value on creation for the confidence field.
	sessionevent.DefaultConfidence = sessioneventDescConfidence.Default.(string)
	// sessioneventDescNivel is the schema descriptor for nivel field.
	sessioneventDescNivel := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultNivel holds the default value on creation for the nivel field.
	sessionevent.DefaultNivel = sessioneventDescNivel.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
