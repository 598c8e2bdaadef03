package session

import (
	"context"
	"testing"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/mastery"
	"github.com/abhisek/lectio/internal/pace"
	"github.com/abhisek/lectio/internal/store"
)

// fakeEvents records appended events in memory.
type fakeEvents struct {
	attempts []store.AttemptEventData
	reviews  []store.ReviewEventData
	readings []store.ReadingEventData
	sessions []store.SessionEventData
	llm      []store.LLMRequestEventData
}

func (f *fakeEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeEvents) AppendReview(_ context.Context, data store.ReviewEventData) error {
	f.reviews = append(f.reviews, data)
	return nil
}

func (f *fakeEvents) AppendReading(_ context.Context, data store.ReadingEventData) error {
	f.readings = append(f.readings, data)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeEvents) SkillAccuracy(context.Context, string) (float64, int, error) {
	return 0, 0, nil
}

func (f *fakeEvents) RecentSkillIDs(context.Context, int) ([]string, error) {
	return nil, nil
}

func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func startTestSession(t *testing.T, nivel curriculum.Nivel) (*Session, *fakeEvents) {
	t.Helper()
	events := &fakeEvents{}
	s, err := Start(context.Background(), events, mastery.NewTracker(), fsrs.NewScheduler(), nivel)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, events
}

func TestStart_AppendsStartEvent(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel2)

	if s.ID == "" {
		t.Error("session id is empty")
	}
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.Action != "start" || ev.SessionID != s.ID || ev.Nivel != 2 {
		t.Errorf("start event = %+v", ev)
	}
}

func TestRecordAttempt_FeedsTrackerAndScheduler(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel1)
	ctx := context.Background()

	for range 5 {
		if err := s.RecordAttempt(ctx, "vocal-a", "recognition", true, 1000); err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
	}

	res := s.tracker.Mastery("vocal-a")
	if !res.Mastered {
		t.Errorf("vocal-a not mastered after 5 correct: %+v", res)
	}
	if len(events.attempts) != 5 {
		t.Errorf("attempt events = %d, want 5", len(events.attempts))
	}

	// Vowels are symbol facts: each attempt also runs a review step.
	if len(events.reviews) != 5 {
		t.Errorf("review events = %d, want 5", len(events.reviews))
	}
	if s.sched.Get("vocal-a") == nil {
		t.Error("scheduler did not track vocal-a")
	}
	if events.reviews[0].Rating != int(fsrs.Easy) {
		t.Errorf("fast correct answer rated %d, want Easy", events.reviews[0].Rating)
	}

	total, correct := s.Attempts()
	if total != 5 || correct != 5 {
		t.Errorf("counts = (%d, %d), want (5, 5)", total, correct)
	}
}

func TestRecordAttempt_PhraseSkillSkipsReview(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel3)

	if err := s.RecordAttempt(context.Background(), "frases-simples", "complete", true, 3000); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if len(events.attempts) != 1 {
		t.Errorf("attempt events = %d, want 1", len(events.attempts))
	}
	if len(events.reviews) != 0 {
		t.Errorf("review events = %d, want 0 for phrase skill", len(events.reviews))
	}
	if s.sched.Get("frases-simples") != nil {
		t.Error("phrase skill should not become a scheduled fact")
	}
}

func TestRecordAttempt_UnknownSkillSkipsReview(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel1)

	if err := s.RecordAttempt(context.Background(), "no-such-skill", "recognition", false, 2000); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if len(events.reviews) != 0 {
		t.Errorf("review events = %d, want 0", len(events.reviews))
	}
}

func TestFinishReading_AppendsPagesAndAggregates(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel2)

	samples := []pace.PageSample{
		{PageIndex: 0, WordCount: 30, ElapsedMs: 60000},
		{PageIndex: 1, WordCount: 40, ElapsedMs: 60000},
		{PageIndex: 2, WordCount: 35, ElapsedMs: 60000},
		{PageIndex: 3, WordCount: 30, ElapsedMs: 1000},
	}
	result, err := s.FinishReading(context.Background(), samples)
	if err != nil {
		t.Fatalf("FinishReading: %v", err)
	}

	if len(events.readings) != 4 {
		t.Fatalf("reading events = %d, want 4", len(events.readings))
	}
	if events.readings[3].Flag != string(pace.FlagTooFast) {
		t.Errorf("page 3 flag = %s, want too_fast", events.readings[3].Flag)
	}

	if result.ValidPages != 3 || result.TotalPages != 4 {
		t.Errorf("pages = %d/%d, want 3/4", result.ValidPages, result.TotalPages)
	}
	// First valid page dropped; median of 40 and 35.
	if result.WPM != 37.5 {
		t.Errorf("wpm = %v, want 37.5", result.WPM)
	}
	if result.Confidence != pace.ConfidenceMedium {
		t.Errorf("confidence = %s, want medium", result.Confidence)
	}
}

func TestEnd_CarriesReadingAndIsIdempotent(t *testing.T) {
	s, events := startTestSession(t, curriculum.Nivel2)
	ctx := context.Background()

	if err := s.RecordAttempt(ctx, "vocal-a", "recognition", true, 1000); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if _, err := s.FinishReading(ctx, []pace.PageSample{
		{PageIndex: 0, WordCount: 30, ElapsedMs: 60000},
	}); err != nil {
		t.Fatalf("FinishReading: %v", err)
	}

	if err := s.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := s.End(ctx); err != nil {
		t.Fatalf("second End: %v", err)
	}

	var ends []store.SessionEventData
	for _, ev := range events.sessions {
		if ev.Action == "end" {
			ends = append(ends, ev)
		}
	}
	if len(ends) != 1 {
		t.Fatalf("end events = %d, want 1", len(ends))
	}
	end := ends[0]
	if end.Attempts != 1 || end.Correct != 1 {
		t.Errorf("end counts = (%d, %d), want (1, 1)", end.Attempts, end.Correct)
	}
	if end.WPM != 30 {
		t.Errorf("end wpm = %v, want 30", end.WPM)
	}
	if end.Confidence != string(pace.ConfidenceLow) {
		t.Errorf("end confidence = %q, want low", end.Confidence)
	}
}
