package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/mastery"
	"github.com/abhisek/lectio/internal/pace"
	"github.com/abhisek/lectio/internal/store"
)

// snapshotKeep bounds how many snapshots survive a save. The event log
// is the durable record; snapshots are just restore points.
const snapshotKeep = 10

// State is the learner state restored from and saved to snapshots:
// the mastery tracker, the FSRS scheduler, and the session WPM history.
type State struct {
	Tracker     *mastery.Tracker
	Scheduler   *fsrs.Scheduler
	PaceHistory []pace.SessionSnapshot
}

// NewState returns empty learner state.
func NewState() *State {
	return &State{
		Tracker:   mastery.NewTracker(),
		Scheduler: fsrs.NewScheduler(),
	}
}

// LoadState restores learner state from the latest snapshot.
// No snapshot means a fresh learner, not an error.
func LoadState(ctx context.Context, snaps store.SnapshotRepo) (*State, error) {
	snap, err := snaps.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return NewState(), nil
	}
	return &State{
		Tracker:     mastery.NewTrackerFromSnapshot(snap.Data.Mastery),
		Scheduler:   fsrs.NewSchedulerFromSnapshot(snap.Data.Fsrs),
		PaceHistory: pace.HistoryFromSnapshot(snap.Data.Pace),
	}, nil
}

// RecordSession appends one session's aggregated reading figure to the
// WPM history. Sessions without a reading phase record nothing.
func (st *State) RecordSession(at time.Time, result *pace.SessionResult, nivel curriculum.Nivel) {
	if result == nil || result.ValidPages == 0 {
		return
	}
	st.PaceHistory = append(st.PaceHistory, pace.SessionSnapshot{
		At:         at,
		WPM:        result.WPM,
		Confidence: result.Confidence,
		Nivel:      nivel,
	})
}

// Trend returns the smoothed cross-session WPM series.
func (st *State) Trend() []pace.TrendPoint {
	return pace.Trend(st.PaceHistory)
}

// Save writes the state as a new snapshot and prunes old ones.
// The sequence orders the snapshot against the event log.
func (st *State) Save(ctx context.Context, snaps store.SnapshotRepo, sequence int64, now time.Time) error {
	snap := &store.Snapshot{
		Sequence:  sequence,
		Timestamp: now,
		Data: store.SnapshotData{
			Version: store.SnapshotVersion,
			Mastery: st.Tracker.SnapshotData(),
			Fsrs:    st.Scheduler.SnapshotData(),
			Pace:    pace.HistoryToSnapshot(st.PaceHistory),
		},
	}
	if err := snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := snaps.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
