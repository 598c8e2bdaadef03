package session

import (
	"time"

	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/mastery"
	"github.com/abhisek/lectio/internal/recommend"
)

// ProgressFromTracker converts tracker state into the per-skill progress
// records the recommendation engine consumes.
func ProgressFromTracker(t *mastery.Tracker) map[string]recommend.Progress {
	lite := t.ProgressMap()
	out := make(map[string]recommend.Progress, len(lite))
	for id, p := range lite {
		out[id] = recommend.Progress{
			TotalAttempts: p.TotalAttempts,
			MasteryLevel:  p.MasteryLevel,
			Mastered:      p.Mastered,
		}
	}
	return out
}

// Query bundles the learner context for a recommendation request.
type Query struct {
	Age           int
	Interests     []string
	CurrentSkill  string
	RecentHistory []string
	Limit         int
}

// NextSuggestions runs the recommender over the tracker's progress.
// It first restricts to unlocked skills; when that filters everything
// out (a learner far ahead of or behind their prerequisites), it retries
// without the gate so the caller always has something to offer.
func NextSuggestions(t *mastery.Tracker, q Query) []recommend.Suggestion {
	in := recommend.Input{
		Age:           q.Age,
		Interests:     q.Interests,
		Progress:      ProgressFromTracker(t),
		CurrentSkill:  q.CurrentSkill,
		RecentHistory: q.RecentHistory,
		Limit:         q.Limit,
		OnlyUnlocked:  true,
	}
	suggestions := recommend.Recommend(in)
	if len(suggestions) == 0 {
		in.OnlyUnlocked = false
		suggestions = recommend.Recommend(in)
	}
	return suggestions
}

// DueFacts returns the fact ids due for review at now, most overdue first.
func DueFacts(s *fsrs.Scheduler, now time.Time) []string {
	return s.Due(now)
}
