package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceIsGlobalAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s1", SkillID: "vocal-a", Kind: "letra", Correct: true, LatencyMs: 1800,
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendReview(ctx, ReviewEventData{
		FactID: "letra-a", Rating: 3, Stability: 3, Difficulty: 5,
		Retrievability: 1, IntervalDays: 3, Due: time.Now().AddDate(0, 0, 3),
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}

	a, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query attempt: %v", err)
	}
	r, err := s.Client().ReviewEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query review: %v", err)
	}
	if r.Sequence <= a.Sequence {
		t.Errorf("review sequence %d not after attempt sequence %d", r.Sequence, a.Sequence)
	}
}

func TestSkillAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	outcomes := []bool{true, true, false, true}
	for _, correct := range outcomes {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "s1", SkillID: "silabas-m", Kind: "silaba", Correct: correct, LatencyMs: 2000,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	acc, n, err := repo.SkillAccuracy(ctx, "silabas-m")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("attempt count = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// Unknown skill reports zero without error.
	acc, n, err = repo.SkillAccuracy(ctx, "nunca-visto")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("unknown skill = (%v, %d), want (0, 0)", acc, n)
	}
}

func TestRecentSkillIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"vocal-a", "vocal-a", "vocal-e", "silabas-m", "vocal-e"} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "s1", SkillID: id, Kind: "letra", Correct: true, LatencyMs: 1500,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	ids, err := repo.RecentSkillIDs(ctx, 2)
	if err != nil {
		t.Fatalf("recent skill ids: %v", err)
	}
	want := []string{"vocal-e", "silabas-m"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReadingAndSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReading(ctx, ReadingEventData{
		SessionID: "s1", PageIndex: 0, WordCount: 22, ElapsedMs: 30_000, WPM: 44, Flag: "valid",
	})
	if err != nil {
		t.Fatalf("append reading: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Attempts: 12, Correct: 10,
		DurationSecs: 300, WPM: 44, Confidence: "medium", Nivel: 2,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	re, err := s.Client().ReadingEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query reading: %v", err)
	}
	if re.Wpm != 44 || re.Flag != "valid" {
		t.Errorf("reading event = (%v, %q), want (44, valid)", re.Wpm, re.Flag)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock-1", Purpose: "story",
			InputTokens: 100, OutputTokens: 200, LatencyMs: 50, Success: i != 1,
		})
		if err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence < events[1].Sequence {
		t.Error("events not ordered newest first")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "story" || u.Requests != 3 || u.Failures != 1 || u.InputTokens != 300 {
		t.Errorf("unexpected usage row %+v", u)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	data := SnapshotData{
		Version: SnapshotVersion,
		Mastery: &MasterySnapshotData{
			Skills: map[string]*SkillMasteryData{
				"vocal-a": {SkillID: "vocal-a", Window: []bool{true, true, false}, TotalAttempts: 3, CorrectCount: 2},
			},
		},
		Fsrs: &FsrsSnapshotData{
			Cards: map[string]*FsrsCardData{
				"letra-a": {
					FactID: "letra-a", Difficulty: 5, Stability: 3, Reps: 1,
					LastReview: "2026-03-01T10:00:00Z", Due: "2026-03-04T10:00:00Z",
				},
			},
		},
		Pace: &PaceSnapshotData{
			Sessions: []PaceSessionData{
				{At: "2026-03-01T10:30:00Z", WPM: 38.5, Confidence: "medium", Nivel: 2},
			},
		},
	}
	err = repo.Save(ctx, &Snapshot{Sequence: 7, Timestamp: time.Now(), Data: data})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", got.Sequence)
	}
	sm := got.Data.Mastery.Skills["vocal-a"]
	if sm == nil || sm.TotalAttempts != 3 || len(sm.Window) != 3 {
		t.Errorf("mastery state did not round-trip: %+v", sm)
	}
	card := got.Data.Fsrs.Cards["letra-a"]
	if card == nil || card.Due != "2026-03-04T10:00:00Z" {
		t.Errorf("fsrs state did not round-trip: %+v", card)
	}
	if len(got.Data.Pace.Sessions) != 1 || got.Data.Pace.Sessions[0].WPM != 38.5 {
		t.Errorf("pace history did not round-trip: %+v", got.Data.Pace)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Sequence != 4 {
		t.Errorf("latest sequence = %d, want 4", latest.Sequence)
	}
}
