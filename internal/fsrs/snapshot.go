package fsrs

import (
	"time"

	"github.com/abhisek/lectio/internal/store"
)

// NewSchedulerFromSnapshot restores a scheduler from persisted snapshot
// data. Cards with unparseable timestamps are skipped rather than failing
// the whole restore.
func NewSchedulerFromSnapshot(data *store.FsrsSnapshotData) *Scheduler {
	s := NewScheduler()
	if data == nil || data.Cards == nil {
		return s
	}
	for factID, cd := range data.Cards {
		lastReview, err := time.Parse(time.RFC3339, cd.LastReview)
		if err != nil {
			continue
		}
		due, err := time.Parse(time.RFC3339, cd.Due)
		if err != nil {
			continue
		}
		s.facts[factID] = &Fact{
			FactID: factID,
			Card: Card{
				Difficulty: cd.Difficulty,
				Stability:  cd.Stability,
				Reps:       cd.Reps,
				Lapses:     cd.Lapses,
				LastReview: lastReview,
			},
			Due: due,
		}
	}
	return s
}

// SnapshotData exports the current scheduler state for persistence.
func (s *Scheduler) SnapshotData() *store.FsrsSnapshotData {
	data := &store.FsrsSnapshotData{
		Cards: make(map[string]*store.FsrsCardData),
	}
	for factID, f := range s.facts {
		data.Cards[factID] = &store.FsrsCardData{
			FactID:     factID,
			Difficulty: f.Card.Difficulty,
			Stability:  f.Card.Stability,
			Reps:       f.Card.Reps,
			Lapses:     f.Card.Lapses,
			LastReview: f.Card.LastReview.Format(time.RFC3339),
			Due:        f.Due.Format(time.RFC3339),
		}
	}
	return data
}
