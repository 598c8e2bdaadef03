package recommend

import (
	"testing"
)

func masteredProgress() Progress {
	return Progress{TotalAttempts: 12, MasteryLevel: 0.95, Mastered: true}
}

func TestRecommend_ExcludesCurrentSkill(t *testing.T) {
	out := Recommend(Input{
		Age:          6,
		CurrentSkill: "silabas-m",
		Progress:     map[string]Progress{"silabas-m": masteredProgress()},
		Limit:        20,
	})
	if len(out) == 0 {
		t.Fatal("expected suggestions")
	}
	for _, s := range out {
		if s.SkillID == "silabas-m" {
			t.Error("current skill appeared in its own suggestions")
		}
	}
}

func TestRecommend_DeepenOutranksFallback(t *testing.T) {
	out := Recommend(Input{
		Age:          6,
		CurrentSkill: "silabas-m",
		Progress:     map[string]Progress{"silabas-m": masteredProgress()},
		Limit:        3,
	})
	if len(out) == 0 {
		t.Fatal("expected suggestions")
	}
	if out[0].Category != CategoryDeepen {
		t.Errorf("top suggestion category = %q, want %q", out[0].Category, CategoryDeepen)
	}
	// The deepen table for silabas-m points at the next consonants.
	if out[0].SkillID != "silabas-p" {
		t.Errorf("top suggestion = %q, want silabas-p", out[0].SkillID)
	}
}

func TestRecommend_OnlyUnlockedFilters(t *testing.T) {
	// Nothing mastered: the root vowel is the only unlocked skill.
	out := Recommend(Input{
		Age:          8,
		Progress:     map[string]Progress{},
		Limit:        20,
		OnlyUnlocked: true,
	})
	if len(out) != 1 {
		t.Fatalf("got %d suggestions, want only the root", len(out))
	}
	if out[0].SkillID != "vocal-a" {
		t.Errorf("suggested %q, want vocal-a", out[0].SkillID)
	}
}

func TestRecommend_UnlockedRespectsProgress(t *testing.T) {
	progress := map[string]Progress{
		"vocal-a": masteredProgress(),
	}
	out := Recommend(Input{
		Age:          5,
		CurrentSkill: "vocal-a",
		Progress:     progress,
		Limit:        10,
		OnlyUnlocked: true,
	})
	if len(out) == 0 {
		t.Fatal("expected at least vocal-e")
	}
	for _, s := range out {
		if s.SkillID != "vocal-e" {
			t.Errorf("unexpected unlocked skill %q (only vocal-e unlocks after vocal-a)", s.SkillID)
		}
	}
}

func TestRecommend_StrugglingRetaggedReforzar(t *testing.T) {
	// silabas-t is in the current skill's domain but not in its deepen
	// tier, so the connect-tier re-tag is what surfaces it.
	progress := map[string]Progress{
		"silabas-m": masteredProgress(),
		"silabas-t": {TotalAttempts: 6, MasteryLevel: 0.4},
	}
	out := Recommend(Input{
		Age:          6,
		CurrentSkill: "silabas-m",
		Progress:     progress,
		Limit:        20,
	})
	found := false
	for _, s := range out {
		if s.SkillID == "silabas-t" {
			found = true
			if s.Category != CategoryReinforce {
				t.Errorf("struggling skill category = %q, want %q (score %v)", s.Category, CategoryReinforce, s.Score)
			}
		}
	}
	if !found {
		t.Error("struggling same-domain skill missing from suggestions")
	}
}

func TestRecommend_ReinforceBeatsPlainConnect(t *testing.T) {
	progress := map[string]Progress{
		"silabas-l": {TotalAttempts: 6, MasteryLevel: 0.3},
	}
	out := Recommend(Input{
		Age:          6,
		CurrentSkill: "silabas-t",
		Progress:     progress,
		Limit:        20,
	})
	var reinforcePos, connectPos = -1, -1
	for i, s := range out {
		if s.Category == CategoryReinforce && reinforcePos == -1 {
			reinforcePos = i
		}
		if s.Category == CategoryConnect && connectPos == -1 {
			connectPos = i
		}
	}
	if reinforcePos == -1 {
		t.Fatal("expected a reforzar suggestion")
	}
	if connectPos != -1 && connectPos < reinforcePos {
		t.Errorf("plain conectar at %d ranked above reforzar at %d", connectPos, reinforcePos)
	}
}

func TestRecommend_RecentPenaltyDemotes(t *testing.T) {
	base := Input{
		Age:          6,
		CurrentSkill: "silabas-m",
		Progress:     map[string]Progress{"silabas-m": masteredProgress()},
		Limit:        1,
	}
	top := Recommend(base)[0]

	withRecent := base
	withRecent.RecentHistory = []string{top.SkillID}
	demoted := Recommend(withRecent)[0]

	if demoted.SkillID == top.SkillID {
		t.Errorf("recently seen skill %q kept the top slot", top.SkillID)
	}
}

func TestRecommend_InterestBonusPromotes(t *testing.T) {
	// cuentos-cortos carries the "cuentos" keyword; an interest match
	// should rank it above its uninterested score.
	neutral := Recommend(Input{
		Age:          7,
		CurrentSkill: "frases-simples",
		Progress:     map[string]Progress{"frases-simples": masteredProgress()},
		Limit:        20,
	})
	interested := Recommend(Input{
		Age:          7,
		Interests:    []string{"cuentos"},
		CurrentSkill: "frases-simples",
		Progress:     map[string]Progress{"frases-simples": masteredProgress()},
		Limit:        20,
	})
	pos := func(out []Suggestion, id string) int {
		for i, s := range out {
			if s.SkillID == id {
				return i
			}
		}
		return len(out)
	}
	if pos(interested, "cuentos-cortos") > pos(neutral, "cuentos-cortos") {
		t.Error("interest match should not rank cuentos-cortos lower")
	}
}

func TestRecommend_LimitAndDefault(t *testing.T) {
	in := Input{Age: 8, CurrentSkill: "silabas-m", Limit: 2}
	if out := Recommend(in); len(out) > 2 {
		t.Errorf("limit 2: got %d suggestions", len(out))
	}
	in.Limit = 0
	if out := Recommend(in); len(out) > DefaultLimit {
		t.Errorf("default limit: got %d suggestions, want <= %d", len(out), DefaultLimit)
	}
}

func TestRecommend_NoCurrentSkillFallsBack(t *testing.T) {
	out := Recommend(Input{Age: 4, Limit: 10})
	if len(out) == 0 {
		t.Fatal("fallback tier should produce suggestions without a current skill")
	}
	for _, s := range out {
		if s.Category == CategoryDeepen || s.Category == CategoryApply {
			t.Errorf("tier %q requires a current skill, got suggestion %q", s.Category, s.SkillID)
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	in := Input{
		Age:          6,
		Interests:    []string{"animales"},
		CurrentSkill: "silabas-m",
		Progress:     map[string]Progress{"silabas-m": masteredProgress()},
		Limit:        10,
	}
	first := Recommend(in)
	for i := 0; i < 20; i++ {
		again := Recommend(in)
		if len(again) != len(first) {
			t.Fatalf("run %d: %d suggestions, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].SkillID != first[j].SkillID {
				t.Fatalf("run %d: order diverged at %d: %q vs %q", i, j, again[j].SkillID, first[j].SkillID)
			}
		}
	}
}

func TestRecommend_EmptyProgressNeverPanics(t *testing.T) {
	out := Recommend(Input{CurrentSkill: "nonexistent", Limit: 5})
	// Unknown current skill: deepen/connect/apply find nothing, the
	// age-unbounded fallback still produces candidates.
	if len(out) == 0 {
		t.Error("expected fallback suggestions for unknown current skill")
	}
}
