package fsrs

import (
	"testing"
)

func TestRateOutcome(t *testing.T) {
	tests := []struct {
		correct   bool
		latencyMs int
		want      Rating
	}{
		{false, 1000, Again},
		{false, 10000, Again},
		{true, 0, Easy},
		{true, 2499, Easy},
		{true, 2500, Good},
		{true, 5000, Good},
		{true, 7000, Good},
		{true, 7001, Hard},
		{true, 60000, Hard},
	}
	for _, tt := range tests {
		got := RateOutcome(tt.correct, tt.latencyMs)
		if got != tt.want {
			t.Errorf("RateOutcome(%v, %d) = %v, want %v", tt.correct, tt.latencyMs, got, tt.want)
		}
	}
}

func TestRatingFromString_RoundTrip(t *testing.T) {
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		if got := RatingFromString(r.String()); got != r {
			t.Errorf("round trip %v -> %q -> %v", r, r.String(), got)
		}
	}
	if got := RatingFromString("garbage"); got != Good {
		t.Errorf("unknown rating = %v, want Good", got)
	}
}

func TestScheduler_ApplyInitsThenReviews(t *testing.T) {
	s := NewScheduler()
	now := date(2026, 4, 1)

	first := s.Apply("palabra-sol", now, Good)
	if first.Card.Reps != 1 {
		t.Errorf("first apply: reps = %d, want 1 (init path)", first.Card.Reps)
	}

	later := now.AddDate(0, 0, first.IntervalDays)
	second := s.Apply("palabra-sol", later, Good)
	if second.Card.Reps != 2 {
		t.Errorf("second apply: reps = %d, want 2 (review path)", second.Card.Reps)
	}

	f := s.Get("palabra-sol")
	if f == nil {
		t.Fatal("expected tracked fact")
	}
	if !f.Due.Equal(second.Due) {
		t.Errorf("stored due = %v, want %v", f.Due, second.Due)
	}
}

func TestScheduler_DueOrdering(t *testing.T) {
	s := NewScheduler()
	base := date(2026, 4, 1)

	// Three facts reviewed on different days, all with 1-day intervals.
	s.Apply("palabra-luz", base, Again)
	s.Apply("palabra-mar", base.AddDate(0, 0, 2), Again)
	s.Apply("palabra-pan", base.AddDate(0, 0, 4), Again)

	due := s.Due(base.AddDate(0, 0, 10))
	want := []string{"palabra-luz", "palabra-mar", "palabra-pan"}
	if len(due) != len(want) {
		t.Fatalf("got %d due facts, want %d", len(due), len(want))
	}
	for i := range want {
		if due[i] != want[i] {
			t.Errorf("due[%d] = %q, want %q (most overdue first)", i, due[i], want[i])
		}
	}
}

func TestScheduler_NotDueExcluded(t *testing.T) {
	s := NewScheduler()
	now := date(2026, 4, 1)
	res := s.Apply("palabra-sol", now, Easy)

	if due := s.Due(now.AddDate(0, 0, 1)); len(due) != 0 {
		t.Errorf("fact with %d-day interval due after 1 day: %v", res.IntervalDays, due)
	}
	if due := s.Due(res.Due); len(due) != 1 {
		t.Errorf("fact should be due exactly at its due date, got %v", due)
	}
}

func TestScheduler_SnapshotRoundTrip(t *testing.T) {
	s := NewScheduler()
	now := date(2026, 4, 1)
	s.Apply("palabra-sol", now, Good)
	s.Apply("palabra-luz", now, Again)
	s.Apply("palabra-sol", now.AddDate(0, 0, 3), Easy)

	restored := NewSchedulerFromSnapshot(s.SnapshotData())

	for id, want := range s.AllFacts() {
		got := restored.Get(id)
		if got == nil {
			t.Fatalf("fact %q lost in round trip", id)
		}
		if got.Card.Reps != want.Card.Reps || got.Card.Lapses != want.Card.Lapses {
			t.Errorf("%s: counts %d/%d, want %d/%d", id, got.Card.Reps, got.Card.Lapses, want.Card.Reps, want.Card.Lapses)
		}
		if got.Card.Difficulty != want.Card.Difficulty {
			t.Errorf("%s: difficulty %v, want %v", id, got.Card.Difficulty, want.Card.Difficulty)
		}
		if !got.Due.Equal(want.Due) {
			t.Errorf("%s: due %v, want %v", id, got.Due, want.Due)
		}
	}
}

func TestScheduler_SnapshotSkipsCorruptTimestamps(t *testing.T) {
	s := NewScheduler()
	s.Apply("palabra-sol", date(2026, 4, 1), Good)
	data := s.SnapshotData()
	data.Cards["palabra-sol"].Due = "not-a-time"

	restored := NewSchedulerFromSnapshot(data)
	if restored.Get("palabra-sol") != nil {
		t.Error("corrupt card should be skipped on restore")
	}
}
