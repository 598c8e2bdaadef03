package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the curriculum DAG with precomputed indices.
type graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byDomain   map[Domain][]Skill
	byLevel    map[int][]Skill
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of skills.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byDomain:   make(map[Domain][]Skill),
		byLevel:    make(map[int][]Skill),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}

	// Reverse edges (dependents).
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Skill
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		skill := gr.byID[id]
		topoOrder = append(topoOrder, *skill)

		deps := gr.dependents[id]
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, s := range gr.topoOrder {
		gr.topoIndex[s.ID] = i
	}

	for i := range gr.skills {
		if len(gr.skills[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.skills[i])
		}
	}

	// Group by domain, sorted by level asc then topo index.
	domainGroups := make(map[Domain][]Skill)
	for i := range gr.skills {
		s := gr.skills[i]
		domainGroups[s.Domain] = append(domainGroups[s.Domain], s)
	}
	for domain, skills := range domainGroups {
		sorted := make([]Skill, len(skills))
		copy(sorted, skills)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Level != sorted[j].Level {
				return sorted[i].Level < sorted[j].Level
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byDomain[domain] = sorted
	}

	// Group by level, sorted by domain order then topo index.
	domainIdx := make(map[Domain]int, len(AllDomains()))
	for i, d := range AllDomains() {
		domainIdx[d] = i
	}
	levelGroups := make(map[int][]Skill)
	for i := range gr.skills {
		s := gr.skills[i]
		levelGroups[s.Level] = append(levelGroups[s.Level], s)
	}
	for level, skills := range levelGroups {
		sorted := make([]Skill, len(skills))
		copy(sorted, skills)
		sort.Slice(sorted, func(i, j int) bool {
			if domainIdx[sorted[i].Domain] != domainIdx[sorted[j].Domain] {
				return domainIdx[sorted[i].Domain] < domainIdx[sorted[j].Domain]
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byLevel[level] = sorted
	}

	return gr
}

// GetSkill returns the skill with the given ID.
func GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("unknown skill: %q", id)
	}
	return *s, nil
}

// AllSkills returns every skill in topological order.
func AllSkills() []Skill {
	return slices.Clone(g.topoOrder)
}

// ByDomain returns all skills for a domain, ordered by level then topological position.
func ByDomain(domain Domain) []Skill {
	return slices.Clone(g.byDomain[domain])
}

// ByLevel returns all skills for a curriculum level, ordered by domain then topological position.
func ByLevel(level int) []Skill {
	return slices.Clone(g.byLevel[level])
}

// ForAge returns all skills appropriate for the given age, in topological order.
func ForAge(age int) []Skill {
	var result []Skill
	for i := range g.topoOrder {
		if g.topoOrder[i].InAgeRange(age) {
			result = append(result, g.topoOrder[i])
		}
	}
	return result
}

// RootSkills returns all skills with no prerequisites.
func RootSkills() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// IsUnlocked returns true if all prerequisites for the given skill are in the mastered set.
// A skill with no prerequisites is always unlocked.
func IsUnlocked(id string, mastered map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// AvailableSkills returns all skills that are unlocked but not yet mastered.
func AvailableSkills(mastered map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if !mastered[s.ID] && IsUnlocked(s.ID, mastered) {
			result = append(result, s)
		}
	}
	return result
}

// TopologicalOrder returns all skills in a valid topological order.
func TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// TopoIndex returns the topological position of a skill, or -1 if unknown.
func TopoIndex(id string) int {
	if idx, ok := g.topoIndex[id]; ok {
		return idx
	}
	return -1
}

// Validate checks the graph for structural issues, then checks the
// hand-authored reference tables against the graph's skill set.
func Validate() error {
	if err := validateSkills(g.skills); err != nil {
		return err
	}
	return validateReferenceTables(g.byID)
}
