package curriculum

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	domainSet := make(map[Domain]bool)

	// Check for duplicate IDs
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
		domainSet[s.Domain] = true
	}

	// Check for dangling prerequisites
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(skills) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	// Check all declared domains are populated
	for _, domain := range AllDomains() {
		if !domainSet[domain] {
			errs = append(errs, fmt.Sprintf("domain %q has no skills", domain))
		}
	}

	// Check age ranges and levels are sane
	for _, s := range skills {
		if s.Level < 1 || s.Level > 4 {
			errs = append(errs, fmt.Sprintf("skill %q: level must be 1-4, got %d", s.ID, s.Level))
		}
		if s.AgeMin <= 0 {
			errs = append(errs, fmt.Sprintf("skill %q: AgeMin must be > 0, got %d", s.ID, s.AgeMin))
		}
		if s.AgeMax > 0 && s.AgeMax < s.AgeMin {
			errs = append(errs, fmt.Sprintf("skill %q: AgeMax %d is below AgeMin %d", s.ID, s.AgeMax, s.AgeMin))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateReferenceTables checks that the vowel progression order and the
// hand-authored edge tables only reference skills present in the graph.
// Split from validateSkills so structural checks can run on arbitrary sets.
func validateReferenceTables(idSet map[string]*Skill) error {
	var errs []string

	for _, id := range VowelOrder {
		if _, ok := idSet[id]; !ok {
			errs = append(errs, fmt.Sprintf("vowel order references nonexistent skill %q", id))
		}
	}

	for from, targets := range DeepenEdges {
		if _, ok := idSet[from]; !ok {
			errs = append(errs, fmt.Sprintf("deepen table keys nonexistent skill %q", from))
		}
		for _, to := range targets {
			if _, ok := idSet[to]; !ok {
				errs = append(errs, fmt.Sprintf("deepen table %q references nonexistent skill %q", from, to))
			}
		}
	}
	for from, targets := range ApplyBridges {
		if _, ok := idSet[from]; !ok {
			errs = append(errs, fmt.Sprintf("apply table keys nonexistent skill %q", from))
		}
		for _, to := range targets {
			if _, ok := idSet[to]; !ok {
				errs = append(errs, fmt.Sprintf("apply table %q references nonexistent skill %q", from, to))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
