package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/pace"
	"github.com/abhisek/lectio/internal/store"
)

// fakeSnapshots keeps every saved snapshot in memory.
type fakeSnapshots struct {
	saved  []*store.Snapshot
	pruned int
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(_ context.Context, keep int) error {
	f.pruned = keep
	return nil
}

func TestLoadState_NoSnapshotMeansFreshLearner(t *testing.T) {
	st, err := LoadState(context.Background(), &fakeSnapshots{})
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.Tracker == nil || st.Scheduler == nil {
		t.Fatal("fresh state missing engines")
	}
	if len(st.PaceHistory) != 0 {
		t.Errorf("fresh state has pace history: %v", st.PaceHistory)
	}
}

func TestState_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := &fakeSnapshots{}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	st := NewState()
	masterSkill(st.Tracker, "vocal-a")
	st.Scheduler.Apply("vocal-a", now, fsrs.Good)
	st.RecordSession(now, &pace.SessionResult{
		WPM:        42,
		Confidence: pace.ConfidenceHigh,
		ValidPages: 4,
		TotalPages: 4,
	}, curriculum.Nivel2)

	if err := st.Save(ctx, snaps, 17, now); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if snaps.pruned != snapshotKeep {
		t.Errorf("prune keep = %d, want %d", snaps.pruned, snapshotKeep)
	}
	if snaps.saved[0].Sequence != 17 {
		t.Errorf("sequence = %d, want 17", snaps.saved[0].Sequence)
	}
	if snaps.saved[0].Data.Version != store.SnapshotVersion {
		t.Errorf("version = %d", snaps.saved[0].Data.Version)
	}

	loaded, err := LoadState(ctx, snaps)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !loaded.Tracker.Mastery("vocal-a").Mastered {
		t.Error("restored tracker lost vocal-a mastery")
	}
	if loaded.Scheduler.Get("vocal-a") == nil {
		t.Error("restored scheduler lost vocal-a")
	}
	if len(loaded.PaceHistory) != 1 {
		t.Fatalf("pace history = %d entries, want 1", len(loaded.PaceHistory))
	}
	h := loaded.PaceHistory[0]
	if h.WPM != 42 || h.Confidence != pace.ConfidenceHigh || h.Nivel != curriculum.Nivel2 {
		t.Errorf("pace entry = %+v", h)
	}
	if !h.At.Equal(now) {
		t.Errorf("pace at = %v, want %v", h.At, now)
	}
}

func TestRecordSession_SkipsEmptyReading(t *testing.T) {
	st := NewState()
	now := time.Now()

	st.RecordSession(now, nil, curriculum.Nivel1)
	st.RecordSession(now, &pace.SessionResult{TotalPages: 3}, curriculum.Nivel1)

	if len(st.PaceHistory) != 0 {
		t.Errorf("pace history = %d entries, want 0", len(st.PaceHistory))
	}
}

func TestState_Trend(t *testing.T) {
	st := NewState()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	st.RecordSession(base, &pace.SessionResult{WPM: 40, Confidence: pace.ConfidenceHigh, ValidPages: 4}, curriculum.Nivel2)
	st.RecordSession(base.AddDate(0, 0, 2), &pace.SessionResult{WPM: 50, Confidence: pace.ConfidenceHigh, ValidPages: 4}, curriculum.Nivel2)

	points := st.Trend()
	if len(points) != 2 {
		t.Fatalf("trend points = %d, want 2", len(points))
	}
	if points[0].SmoothedWPM != 40 {
		t.Errorf("seed = %v, want 40", points[0].SmoothedWPM)
	}
	want := 0.3*50 + 0.7*40
	if diff := points[1].SmoothedWPM - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("smoothed = %v, want %v", points[1].SmoothedWPM, want)
	}
}
