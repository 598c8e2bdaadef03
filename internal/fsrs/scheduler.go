package fsrs

import (
	"sort"
	"time"
)

// Fact pairs a card with its scheduled due date.
type Fact struct {
	FactID string
	Card   Card
	Due    time.Time
}

// IsDue returns true if the fact is at or past its due date.
func (f *Fact) IsDue(now time.Time) bool {
	return !now.Before(f.Due)
}

// OverdueDays returns how many days past due the fact is, 0 if not yet due.
func (f *Fact) OverdueDays(now time.Time) float64 {
	if now.Before(f.Due) {
		return 0
	}
	return now.Sub(f.Due).Hours() / 24.0
}

// Scheduler manages the long-horizon review state for all of a learner's
// facts. Owned by a single caller per learner, like the mastery tracker.
type Scheduler struct {
	facts map[string]*Fact
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{facts: make(map[string]*Fact)}
}

// Apply runs one scheduling step for a fact: Init when the fact has no
// prior state, Review otherwise. The updated state is stored and the
// immutable result returned for persistence.
func (s *Scheduler) Apply(factID string, now time.Time, rating Rating) ReviewResult {
	var res ReviewResult
	if f, ok := s.facts[factID]; ok {
		res = Review(f.Card, now, rating)
	} else {
		res = Init(now, rating)
	}
	s.facts[factID] = &Fact{FactID: factID, Card: res.Card, Due: res.Due}
	return res
}

// Get returns the tracked fact, or nil if the fact has never been reviewed.
func (s *Scheduler) Get(factID string) *Fact {
	return s.facts[factID]
}

// Due returns the IDs of all facts due at now, most overdue first.
// Ties break by fact ID for determinism.
func (s *Scheduler) Due(now time.Time) []string {
	type dueFact struct {
		id      string
		overdue float64
	}
	var due []dueFact
	for id, f := range s.facts {
		if f.IsDue(now) {
			due = append(due, dueFact{id: id, overdue: f.OverdueDays(now)})
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})
	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// AllFacts returns every tracked fact (for stats/UI).
func (s *Scheduler) AllFacts() map[string]*Fact {
	result := make(map[string]*Fact, len(s.facts))
	for id, f := range s.facts {
		result[id] = f
	}
	return result
}
