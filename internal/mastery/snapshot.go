package mastery

import (
	"github.com/abhisek/lectio/internal/store"
)

// NewTrackerFromSnapshot restores a tracker from persisted snapshot data.
// A nil snapshot yields an empty tracker.
func NewTrackerFromSnapshot(data *store.MasterySnapshotData) *Tracker {
	t := NewTracker()
	if data == nil || data.Skills == nil {
		return t
	}
	for id, sd := range data.Skills {
		sm := &SkillMastery{
			SkillID:       id,
			TotalAttempts: sd.TotalAttempts,
			CorrectCount:  sd.CorrectCount,
		}
		// Replay the persisted window oldest-first; anything beyond
		// WindowSize was already aggregate-only when saved.
		for _, correct := range sd.Window {
			sm.window.Push(correct)
		}
		t.skills[id] = sm
	}
	return t
}

// SnapshotData exports the current tracker state for persistence.
func (t *Tracker) SnapshotData() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Skills: make(map[string]*store.SkillMasteryData),
	}
	for id, sm := range t.skills {
		data.Skills[id] = &store.SkillMasteryData{
			SkillID:       id,
			Window:        sm.window.Outcomes(),
			TotalAttempts: sm.TotalAttempts,
			CorrectCount:  sm.CorrectCount,
		}
	}
	return data
}

// ProgressLite summarizes persisted mastery into the shape the
// recommendation engine consumes: total attempts, a continuous level in
// [0,1], and the derived mastered flag.
type ProgressLite struct {
	TotalAttempts int
	MasteryLevel  float64
	Mastered      bool
}

// ProgressMap converts the tracker state into per-skill progress records.
func (t *Tracker) ProgressMap() map[string]ProgressLite {
	out := make(map[string]ProgressLite, len(t.skills))
	for id, sm := range t.skills {
		r := sm.result()
		out[id] = ProgressLite{
			TotalAttempts: r.Attempts,
			MasteryLevel:  r.Ratio,
			Mastered:      r.Mastered,
		}
	}
	return out
}
