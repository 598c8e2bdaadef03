package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/mastery"
	"github.com/abhisek/lectio/internal/pace"
	"github.com/abhisek/lectio/internal/store"
)

// Session orchestrates one live practice session: it feeds attempts into
// the mastery tracker and the FSRS scheduler, sanitizes reading timings,
// and appends the corresponding events. Owned by a single goroutine; the
// engines it drives are not safe for concurrent mutation.
type Session struct {
	ID        string
	Nivel     curriculum.Nivel
	StartedAt time.Time

	events  store.EventRepo
	tracker *mastery.Tracker
	sched   *fsrs.Scheduler

	attempts int
	correct  int
	reading  *pace.SessionResult
	ended    bool
}

// Start opens a new session and appends its start event.
func Start(ctx context.Context, events store.EventRepo, tracker *mastery.Tracker, sched *fsrs.Scheduler, nivel curriculum.Nivel) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Nivel:     nivel,
		StartedAt: time.Now().UTC(),
		events:    events,
		tracker:   tracker,
		sched:     sched,
	}
	err := events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.ID,
		Action:    "start",
		Nivel:     int(nivel),
	})
	if err != nil {
		return nil, fmt.Errorf("append session start: %w", err)
	}
	return s, nil
}

// RecordAttempt folds one answer into the mastery tracker and, for
// symbol facts, runs the spaced-repetition step. Attempts must arrive in
// the order they occurred.
func (s *Session) RecordAttempt(ctx context.Context, skillID, kind string, correct bool, latencyMs int) error {
	s.tracker.Record(mastery.Attempt{
		SkillID:   skillID,
		Kind:      kind,
		Correct:   correct,
		LatencyMs: latencyMs,
	})
	s.attempts++
	if correct {
		s.correct++
	}

	err := s.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID: s.ID,
		SkillID:   skillID,
		Kind:      kind,
		Correct:   correct,
		LatencyMs: latencyMs,
	})
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}

	if !longHorizonFact(skillID) {
		return nil
	}

	rating := fsrs.RateOutcome(correct, latencyMs)
	res := s.sched.Apply(skillID, time.Now().UTC(), rating)
	err = s.events.AppendReview(ctx, store.ReviewEventData{
		FactID:         skillID,
		Rating:         int(res.Rating),
		Stability:      res.Card.Stability,
		Difficulty:     res.Card.Difficulty,
		Retrievability: res.Retrievability,
		IntervalDays:   res.IntervalDays,
		Due:            res.Due,
	})
	if err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	return nil
}

// longHorizonFact reports whether the skill is a symbol fact worth
// scheduling across sessions. Letters and syllables are drilled for
// years; phrase and comprehension skills are not flashcard material.
func longHorizonFact(skillID string) bool {
	skill, err := curriculum.GetSkill(skillID)
	if err != nil {
		return false
	}
	return skill.Domain == curriculum.DomainVocales || skill.Domain == curriculum.DomainSilabas
}

// FinishReading sanitizes the session's page timings against the session
// nivel, appends one reading event per page, and returns the aggregate.
// The aggregate is carried into the session end event.
func (s *Session) FinishReading(ctx context.Context, samples []pace.PageSample) (pace.SessionResult, error) {
	pages := pace.SanitizePages(samples, s.Nivel)
	for _, p := range pages {
		err := s.events.AppendReading(ctx, store.ReadingEventData{
			SessionID: s.ID,
			PageIndex: p.PageIndex,
			WordCount: p.WordCount,
			ElapsedMs: p.ElapsedMs,
			WPM:       p.WPM,
			Flag:      string(p.Flag),
		})
		if err != nil {
			return pace.SessionResult{}, fmt.Errorf("append reading: %w", err)
		}
	}

	result := pace.AggregateSession(pages)
	s.reading = &result
	return result, nil
}

// End appends the closing session event. Idempotent: a second End is a
// no-op so callers can defer it.
func (s *Session) End(ctx context.Context) error {
	if s.ended {
		return nil
	}
	s.ended = true

	data := store.SessionEventData{
		SessionID:    s.ID,
		Action:       "end",
		Attempts:     s.attempts,
		Correct:      s.correct,
		DurationSecs: int(time.Since(s.StartedAt).Seconds()),
		Nivel:        int(s.Nivel),
	}
	if s.reading != nil {
		data.WPM = s.reading.WPM
		data.Confidence = string(s.reading.Confidence)
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		return fmt.Errorf("append session end: %w", err)
	}
	return nil
}

// ReadingResult returns the aggregated reading figure for the session,
// or nil if FinishReading was never called.
func (s *Session) ReadingResult() *pace.SessionResult {
	return s.reading
}

// Attempts returns the attempt and correct counts so far.
func (s *Session) Attempts() (total, correct int) {
	return s.attempts, s.correct
}
