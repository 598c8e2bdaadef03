package curriculum

import (
	"testing"
)

func TestGetSkill_Exists(t *testing.T) {
	s, err := GetSkill("silabas-m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Sílabas con M" {
		t.Errorf("got name %q, want %q", s.Name, "Sílabas con M")
	}
	if s.Domain != DomainSilabas {
		t.Errorf("got domain %q, want %q", s.Domain, DomainSilabas)
	}
	if s.Level != 1 {
		t.Errorf("got level %d, want 1", s.Level)
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	_, err := GetSkill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := AllSkills()
	if len(all) != 25 {
		t.Errorf("got %d skills, want 25", len(all))
	}
}

func TestByDomain(t *testing.T) {
	tests := []struct {
		domain Domain
		want   int
	}{
		{DomainVocales, 5},
		{DomainSilabas, 7},
		{DomainPalabras, 4},
		{DomainFrases, 3},
		{DomainCuentos, 3},
		{DomainComprension, 3},
	}
	for _, tt := range tests {
		skills := ByDomain(tt.domain)
		if len(skills) != tt.want {
			t.Errorf("ByDomain(%q): got %d skills, want %d", tt.domain, len(skills), tt.want)
		}
	}
}

func TestByDomain_SortedByLevel(t *testing.T) {
	for _, domain := range AllDomains() {
		skills := ByDomain(domain)
		for i := 1; i < len(skills); i++ {
			if skills[i].Level < skills[i-1].Level {
				t.Errorf("ByDomain(%q): skill %q (level %d) appears after %q (level %d)",
					domain, skills[i].ID, skills[i].Level, skills[i-1].ID, skills[i-1].Level)
			}
		}
	}
}

func TestTopologicalOrder_PrereqsComeFirst(t *testing.T) {
	order := TopologicalOrder()
	pos := make(map[string]int, len(order))
	for i, s := range order {
		pos[s.ID] = i
	}
	for _, s := range order {
		for _, prereq := range s.Prerequisites {
			if pos[prereq] >= pos[s.ID] {
				t.Errorf("skill %q appears before its prerequisite %q", s.ID, prereq)
			}
		}
	}
}

func TestRootSkills(t *testing.T) {
	roots := RootSkills()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "vocal-a" {
		t.Errorf("got root %q, want vocal-a", roots[0].ID)
	}
}

func TestIsUnlocked_NoPrereqs(t *testing.T) {
	if !IsUnlocked("vocal-a", nil) {
		t.Error("vocal-a has no prerequisites, should always be unlocked")
	}
}

func TestIsUnlocked_WithPrereqs(t *testing.T) {
	mastered := map[string]bool{"vocal-a": true}
	if !IsUnlocked("vocal-e", mastered) {
		t.Error("vocal-e should be unlocked when vocal-a is mastered")
	}
	if IsUnlocked("vocal-i", mastered) {
		t.Error("vocal-i should be locked while vocal-e is unmastered")
	}
}

func TestIsUnlocked_UnknownSkill(t *testing.T) {
	if IsUnlocked("nonexistent", nil) {
		t.Error("unknown skill should never be unlocked")
	}
}

func TestAvailableSkills_Empty(t *testing.T) {
	available := AvailableSkills(nil)
	if len(available) != 1 {
		t.Fatalf("with nothing mastered, got %d available skills, want 1", len(available))
	}
	if available[0].ID != "vocal-a" {
		t.Errorf("got %q, want vocal-a", available[0].ID)
	}
}

func TestAvailableSkills_ExcludesMastered(t *testing.T) {
	mastered := map[string]bool{"vocal-a": true}
	available := AvailableSkills(mastered)
	for _, s := range available {
		if s.ID == "vocal-a" {
			t.Error("mastered skill appears in available set")
		}
	}
	found := false
	for _, s := range available {
		if s.ID == "vocal-e" {
			found = true
		}
	}
	if !found {
		t.Error("vocal-e should be available after mastering vocal-a")
	}
}

func TestPrerequisites(t *testing.T) {
	prereqs := Prerequisites("palabras-trabadas")
	if len(prereqs) != 2 {
		t.Fatalf("got %d prerequisites, want 2", len(prereqs))
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("silabas-m")
	ids := make(map[string]bool)
	for _, d := range deps {
		ids[d.ID] = true
	}
	if !ids["silabas-p"] || !ids["silabas-l"] {
		t.Errorf("dependents of silabas-m = %v, want silabas-p and silabas-l", ids)
	}
}

func TestForAge(t *testing.T) {
	forFour := ForAge(4)
	for _, s := range forFour {
		if s.AgeMin > 4 || (s.AgeMax > 0 && s.AgeMax < 4) {
			t.Errorf("skill %q (ages %d-%d) returned for age 4", s.ID, s.AgeMin, s.AgeMax)
		}
	}
	// All vowels and the level-1 syllables fit a four-year-old.
	if len(forFour) != 8 {
		t.Errorf("ForAge(4): got %d skills, want 8", len(forFour))
	}
}

func TestVowelOrder_AllExist(t *testing.T) {
	if len(VowelOrder) != 5 {
		t.Fatalf("vowel order has %d entries, want 5", len(VowelOrder))
	}
	for _, id := range VowelOrder {
		if _, err := GetSkill(id); err != nil {
			t.Errorf("vowel order entry %q: %v", id, err)
		}
	}
}

func TestNivelConfig_Clamps(t *testing.T) {
	if Nivel(0).ExpectedWPM() != Nivel1.ExpectedWPM() {
		t.Error("nivel below range should clamp to Nivel1")
	}
	if Nivel(9).ExpectedWPM() != Nivel4.ExpectedWPM() {
		t.Error("nivel above range should clamp to Nivel4")
	}
}

func TestNivelConfig_Monotonic(t *testing.T) {
	prev := 0.0
	for n := Nivel1; n <= Nivel4; n++ {
		wpm := n.ExpectedWPM()
		if wpm <= prev {
			t.Errorf("nivel %d expected WPM %.1f not increasing", n, wpm)
		}
		prev = wpm
	}
}
