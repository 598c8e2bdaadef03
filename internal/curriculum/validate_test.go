package curriculum

import (
	"strings"
	"testing"
)

func validSkillPair() []Skill {
	return []Skill{
		{ID: "a", Name: "A", Domain: DomainVocales, Level: 1, AgeMin: 3},
		{ID: "b", Name: "B", Domain: DomainSilabas, Level: 1, AgeMin: 4, Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Domain: DomainPalabras, Level: 2, AgeMin: 5, Prerequisites: []string{"b"}},
		{ID: "d", Name: "D", Domain: DomainFrases, Level: 2, AgeMin: 5, Prerequisites: []string{"c"}},
		{ID: "e", Name: "E", Domain: DomainCuentos, Level: 3, AgeMin: 6, Prerequisites: []string{"d"}},
		{ID: "f", Name: "F", Domain: DomainComprension, Level: 3, AgeMin: 6, Prerequisites: []string{"e"}},
	}
}

func TestValidate_SeedGraph(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed curriculum should validate: %v", err)
	}
}

func TestValidateSkills_DuplicateID(t *testing.T) {
	skills := validSkillPair()
	skills = append(skills, Skill{ID: "a", Name: "A2", Domain: DomainVocales, Level: 1, AgeMin: 3})
	err := validateSkills(skills)
	if err == nil || !strings.Contains(err.Error(), "duplicate skill ID") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestValidateSkills_DanglingPrereq(t *testing.T) {
	skills := validSkillPair()
	skills[1].Prerequisites = []string{"missing"}
	err := validateSkills(skills)
	if err == nil || !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("expected dangling prerequisite error, got %v", err)
	}
}

func TestValidateSkills_Cycle(t *testing.T) {
	skills := validSkillPair()
	skills[0].Prerequisites = []string{"c"}
	err := validateSkills(skills)
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestValidateSkills_BadLevel(t *testing.T) {
	skills := validSkillPair()
	skills[0].Level = 7
	err := validateSkills(skills)
	if err == nil || !strings.Contains(err.Error(), "level must be 1-4") {
		t.Errorf("expected level error, got %v", err)
	}
}

func TestValidateSkills_BadAgeRange(t *testing.T) {
	skills := validSkillPair()
	skills[0].AgeMin = 6
	skills[0].AgeMax = 4
	err := validateSkills(skills)
	if err == nil || !strings.Contains(err.Error(), "AgeMax") {
		t.Errorf("expected age range error, got %v", err)
	}
}
