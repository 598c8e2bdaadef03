package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/lectio/internal/curriculum"
)

// Category tags why a skill is being suggested. The values are the wire
// labels the platform persists and displays, so they stay in Spanish.
type Category string

const (
	CategoryDeepen    Category = "profundizar"
	CategoryConnect   Category = "conectar"
	CategoryApply     Category = "aplicar"
	CategoryReinforce Category = "reforzar"
)

// Progress is the persisted per-skill progress record supplied by the
// caller. Skills missing from the map count as never attempted.
type Progress struct {
	TotalAttempts int
	MasteryLevel  float64 // [0,1]
	Mastered      bool
}

// Input is one recommendation query. Pure value: the engine never
// mutates it and two identical inputs produce identical outputs.
type Input struct {
	Age           int
	Interests     []string
	Progress      map[string]Progress
	CurrentSkill  string   // optional: the skill just practiced
	RecentHistory []string // optional: recently seen skill ids
	Limit         int
	OnlyUnlocked  bool
}

// Suggestion is one ranked candidate. Score orders a single result list
// and is meaningless across calls.
type Suggestion struct {
	SkillID     string
	Name        string
	Description string
	Domain      curriculum.Domain
	Category    Category
	Reason      string
	Score       float64
}

// DefaultLimit is used when the caller passes a non-positive limit.
const DefaultLimit = 5

// Scoring constants. Deepen candidates land in the 55-62 band, connect
// below them, apply in between, and the global fallback at the bottom.
const (
	deepenTableBase  = 62.0
	deepenChildBase  = 58.0
	connectBase      = 40.0
	reinforceBonus   = 18.0
	applyBase        = 50.0
	fallbackBase     = 25.0
	interestBonus    = 8.0
	fallbackInterest = 5.0
	recentPenalty    = 15.0
	masteredPenalty  = 20.0

	strugglingLevel  = 0.6
	fallbackPoolSize = 12
)

// candidate wraps a suggestion with its generation sequence, the
// explicit tie-break: equal scores rank by generation order, and tiers
// generate in deepen > connect > apply > fallback order.
type candidate struct {
	Suggestion
	seq int
}

// Recommend produces a ranked list of next-skill suggestions.
// Pure: safe to call concurrently for any learners.
func Recommend(in Input) []Suggestion {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	recent := make(map[string]bool, len(in.RecentHistory))
	for _, id := range in.RecentHistory {
		recent[id] = true
	}
	interests := make(map[string]bool, len(in.Interests))
	for _, kw := range in.Interests {
		interests[strings.ToLower(strings.TrimSpace(kw))] = true
	}
	mastered := make(map[string]bool, len(in.Progress))
	for id, p := range in.Progress {
		if p.Mastered {
			mastered[id] = true
		}
	}

	// Fold every generated candidate into a best-per-skill map.
	// Higher score wins; on an exact tie the later candidate wins.
	best := make(map[string]candidate)
	seq := 0
	add := func(s Suggestion) {
		c := candidate{Suggestion: s, seq: seq}
		seq++
		if prev, ok := best[s.SkillID]; ok && prev.Score > c.Score {
			return
		}
		best[s.SkillID] = c
	}

	addDeepen(in, interests, recent, add)
	addConnect(in, mastered, recent, add)
	addApply(in, interests, add)
	addFallback(in, interests, mastered, recent, add)

	var result []candidate
	for _, c := range best {
		if c.SkillID == in.CurrentSkill {
			continue
		}
		if in.OnlyUnlocked && !curriculum.IsUnlocked(c.SkillID, mastered) {
			continue
		}
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].seq < result[j].seq
	})

	if len(result) > limit {
		result = result[:limit]
	}
	out := make([]Suggestion, len(result))
	for i, c := range result {
		out[i] = c.Suggestion
	}
	return out
}

// addDeepen generates tier 1: go deeper on the current skill, via the
// hand-authored deepen table and the prerequisite-graph children.
func addDeepen(in Input, interests, recent map[string]bool, add func(Suggestion)) {
	if in.CurrentSkill == "" {
		return
	}
	current, err := curriculum.GetSkill(in.CurrentSkill)
	if err != nil {
		return
	}

	for i, id := range curriculum.DeepenEdges[in.CurrentSkill] {
		skill, err := curriculum.GetSkill(id)
		if err != nil {
			continue
		}
		score := deepenTableBase - float64(i)
		score += interestScore(&skill, interests, interestBonus)
		if recent[id] {
			score -= recentPenalty
		}
		add(suggestion(&skill, CategoryDeepen, score,
			fmt.Sprintf("Profundiza lo que practicaste en «%s»", current.Name)))
	}

	for i, skill := range curriculum.Dependents(in.CurrentSkill) {
		score := deepenChildBase - float64(i)
		score += interestScore(&skill, interests, interestBonus)
		if recent[skill.ID] {
			score -= recentPenalty
		}
		add(suggestion(&skill, CategoryDeepen, score,
			fmt.Sprintf("El siguiente paso después de «%s»", current.Name)))
	}
}

// addConnect generates tier 2: other skills in the current skill's
// domain. Attempted-but-struggling skills are re-tagged reforzar and
// boosted; mastered or recently seen ones are penalized.
func addConnect(in Input, mastered, recent map[string]bool, add func(Suggestion)) {
	if in.CurrentSkill == "" {
		return
	}
	current, err := curriculum.GetSkill(in.CurrentSkill)
	if err != nil {
		return
	}

	for _, skill := range curriculum.ByDomain(current.Domain) {
		if skill.ID == in.CurrentSkill {
			continue
		}
		score := connectBase
		category := CategoryConnect
		reason := fmt.Sprintf("Otra destreza de %s", curriculum.DomainDisplayName(skill.Domain))

		p, attempted := in.Progress[skill.ID]
		if attempted && p.TotalAttempts > 0 && p.MasteryLevel < strugglingLevel {
			score += reinforceBonus
			category = CategoryReinforce
			reason = fmt.Sprintf("Refuerza «%s», aún se te resiste", skill.Name)
		}
		if mastered[skill.ID] {
			score -= masteredPenalty
		}
		if recent[skill.ID] {
			score -= recentPenalty
		}
		s := skill
		add(suggestion(&s, category, score, reason))
	}
}

// addApply generates tier 3: cross-domain bridges from the current skill.
func addApply(in Input, interests map[string]bool, add func(Suggestion)) {
	if in.CurrentSkill == "" {
		return
	}
	current, err := curriculum.GetSkill(in.CurrentSkill)
	if err != nil {
		return
	}

	for i, id := range curriculum.ApplyBridges[in.CurrentSkill] {
		skill, err := curriculum.GetSkill(id)
		if err != nil {
			continue
		}
		score := applyBase - float64(i)
		score += interestScore(&skill, interests, interestBonus)
		add(suggestion(&skill, CategoryApply,
			score, fmt.Sprintf("Aplica «%s» en un contexto nuevo", current.Name)))
	}
}

// addFallback generates tier 4: any unmastered, not-recently-seen skill
// in the age-eligible curriculum, by level order, lightly
// interest-weighted. Only the first fallbackPoolSize are considered.
func addFallback(in Input, interests, mastered, recent map[string]bool, add func(Suggestion)) {
	var pool []curriculum.Skill
	if in.Age > 0 {
		pool = curriculum.ForAge(in.Age)
	} else {
		pool = curriculum.AllSkills()
	}

	// ForAge/AllSkills return topological order; re-sort by level first
	// so easier material surfaces ahead of same-score harder material.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Level < pool[j].Level
	})

	added := 0
	for i := range pool {
		skill := pool[i]
		if mastered[skill.ID] || recent[skill.ID] {
			continue
		}
		if added >= fallbackPoolSize {
			break
		}
		score := fallbackBase + interestScore(&skill, interests, fallbackInterest)
		add(suggestion(&skill, CategoryConnect, score, "Algo nuevo para explorar"))
		added++
	}
}

func suggestion(s *curriculum.Skill, cat Category, score float64, reason string) Suggestion {
	return Suggestion{
		SkillID:     s.ID,
		Name:        s.Name,
		Description: s.Description,
		Domain:      s.Domain,
		Category:    cat,
		Reason:      reason,
		Score:       score,
	}
}

// interestScore returns bonus when any skill keyword matches a learner
// interest, 0 otherwise.
func interestScore(s *curriculum.Skill, interests map[string]bool, bonus float64) float64 {
	for _, kw := range s.Keywords {
		if interests[strings.ToLower(kw)] {
			return bonus
		}
	}
	return 0
}
