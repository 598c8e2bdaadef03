package mastery

import (
	"github.com/abhisek/lectio/internal/curriculum"
)

const (
	// MinAttempts gates mastery: a skill can never be mastered before
	// this many total attempts, no matter how accurate the window is.
	MinAttempts = 5

	// MasteryThreshold is the window accuracy required for mastery.
	MasteryThreshold = 0.90
)

// Attempt is one answer event for an atomic skill. Ephemeral: the tracker
// folds it into the window immediately and only aggregates survive.
type Attempt struct {
	SkillID   string
	Kind      string // free-form activity label: "recognition", "sound", "complete"
	Correct   bool
	LatencyMs int
}

// SkillMastery holds the windowed outcome history for a single skill.
type SkillMastery struct {
	SkillID       string
	window        outcomeWindow
	TotalAttempts int
	CorrectCount  int
}

// Result is a point-in-time mastery reading for one skill.
// Mastered is always derived from Ratio and Attempts, never stored.
type Result struct {
	Ratio    float64
	Mastered bool
	Attempts int
}

// Tracker tracks in-session mastery for all skills a learner touches.
// One tracker per live session, owned by a single goroutine.
type Tracker struct {
	skills map[string]*SkillMastery
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{skills: make(map[string]*SkillMastery)}
}

// Record folds an attempt into the skill's window. Every call counts;
// there is no deduplication of repeated identical attempts.
func (t *Tracker) Record(a Attempt) {
	sm := t.get(a.SkillID)
	sm.window.Push(a.Correct)
	sm.TotalAttempts++
	if a.Correct {
		sm.CorrectCount++
	}
}

// Mastery returns the current mastery reading for a skill.
// A skill with no attempts yields {0, false, 0}, never an error.
func (t *Tracker) Mastery(skillID string) Result {
	sm, ok := t.skills[skillID]
	if !ok {
		return Result{}
	}
	return sm.result()
}

func (sm *SkillMastery) result() Result {
	n := sm.window.Len()
	if n == 0 {
		return Result{Attempts: sm.TotalAttempts}
	}
	ratio := float64(sm.window.CorrectCount()) / float64(n)
	return Result{
		Ratio:    ratio,
		Mastered: ratio >= MasteryThreshold && sm.TotalAttempts >= MinAttempts,
		Attempts: sm.TotalAttempts,
	}
}

// NextInOrder walks a fixed progression order and returns the first
// unmastered skill. ok is false once every skill in the order is mastered.
func (t *Tracker) NextInOrder(order []string) (skillID string, ok bool) {
	for _, id := range order {
		if !t.Mastery(id).Mastered {
			return id, true
		}
	}
	return "", false
}

// NextVowel returns the current target in the fixed vowel progression.
func (t *Tracker) NextVowel() (skillID string, ok bool) {
	return t.NextInOrder(curriculum.VowelOrder)
}

// ProgressInOrder returns masteredCount / len(order) for a fixed order.
func (t *Tracker) ProgressInOrder(order []string) float64 {
	if len(order) == 0 {
		return 0
	}
	mastered := 0
	for _, id := range order {
		if t.Mastery(id).Mastered {
			mastered++
		}
	}
	return float64(mastered) / float64(len(order))
}

// OverallProgress returns the learner's progress through the vowel order.
func (t *Tracker) OverallProgress() float64 {
	return t.ProgressInOrder(curriculum.VowelOrder)
}

// MasteredSkills returns the set of currently mastered skill IDs.
func (t *Tracker) MasteredSkills() map[string]bool {
	result := make(map[string]bool)
	for id, sm := range t.skills {
		if sm.result().Mastered {
			result[id] = true
		}
	}
	return result
}

// AllSkillMasteries returns a mastery reading per touched skill (for stats).
func (t *Tracker) AllSkillMasteries() map[string]Result {
	result := make(map[string]Result, len(t.skills))
	for id, sm := range t.skills {
		result[id] = sm.result()
	}
	return result
}

// Reset clears every skill's window and counters.
func (t *Tracker) Reset() {
	t.skills = make(map[string]*SkillMastery)
}

// ResetSkill clears one skill's window and counters, leaving the rest intact.
func (t *Tracker) ResetSkill(skillID string) {
	delete(t.skills, skillID)
}

func (t *Tracker) get(skillID string) *SkillMastery {
	if sm, ok := t.skills[skillID]; ok {
		return sm
	}
	sm := &SkillMastery{SkillID: skillID}
	t.skills[skillID] = sm
	return sm
}
