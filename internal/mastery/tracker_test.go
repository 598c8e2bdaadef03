package mastery

import (
	"math"
	"testing"
)

func record(t *Tracker, skillID string, outcomes ...bool) {
	for _, c := range outcomes {
		t.Record(Attempt{SkillID: skillID, Kind: "recognition", Correct: c})
	}
}

func repeat(correct bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = correct
	}
	return out
}

func TestMastery_NoAttempts(t *testing.T) {
	tr := NewTracker()
	r := tr.Mastery("vocal-a")
	if r.Ratio != 0 || r.Mastered || r.Attempts != 0 {
		t.Errorf("got %+v, want zero result", r)
	}
}

func TestMastery_GatedBelowMinAttempts(t *testing.T) {
	// Perfect accuracy on up to 4 attempts must never count as mastery.
	for n := 1; n <= 4; n++ {
		tr := NewTracker()
		record(tr, "vocal-a", repeat(true, n)...)
		r := tr.Mastery("vocal-a")
		if r.Mastered {
			t.Errorf("%d/%d correct: mastered = true, want false", n, n)
		}
		if r.Ratio != 1.0 {
			t.Errorf("%d attempts: ratio = %f, want 1.0", n, r.Ratio)
		}
	}
}

func TestMastery_FiveCorrect(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(true, 5)...)
	r := tr.Mastery("vocal-a")
	if !r.Mastered {
		t.Error("5/5 correct should be mastered")
	}
	if r.Ratio != 1.0 {
		t.Errorf("ratio = %f, want 1.0", r.Ratio)
	}
	if r.Attempts != 5 {
		t.Errorf("attempts = %d, want 5", r.Attempts)
	}
}

func TestMastery_ThresholdBoundary(t *testing.T) {
	// 9/10 in the window is mastered; 8/10 is not.
	tr := NewTracker()
	record(tr, "vocal-a", false)
	record(tr, "vocal-a", repeat(true, 9)...)
	if r := tr.Mastery("vocal-a"); !r.Mastered {
		t.Errorf("9/10 window: mastered = false (ratio %f), want true", r.Ratio)
	}

	tr = NewTracker()
	record(tr, "vocal-a", false, false)
	record(tr, "vocal-a", repeat(true, 8)...)
	if r := tr.Mastery("vocal-a"); r.Mastered {
		t.Errorf("8/10 window: mastered = true (ratio %f), want false", r.Ratio)
	}
}

func TestMastery_SlidingWindowForgetsOldFailures(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(false, 5)...)
	record(tr, "vocal-a", repeat(true, 10)...)

	r := tr.Mastery("vocal-a")
	if r.Ratio != 1.0 {
		t.Errorf("ratio = %f, want 1.0 (early failures must slide out)", r.Ratio)
	}
	if !r.Mastered {
		t.Error("should be mastered on the last-10 window")
	}
	if r.Attempts != 15 {
		t.Errorf("attempts = %d, want 15", r.Attempts)
	}
}

func TestMastery_WindowShorterThanCapacity(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", true, true, false)
	r := tr.Mastery("vocal-a")
	want := 2.0 / 3.0
	if math.Abs(r.Ratio-want) > 1e-9 {
		t.Errorf("ratio = %f, want %f", r.Ratio, want)
	}
}

func TestNextVowel_Progression(t *testing.T) {
	tr := NewTracker()

	next, ok := tr.NextVowel()
	if !ok || next != "vocal-a" {
		t.Fatalf("fresh tracker: next = %q ok=%v, want vocal-a", next, ok)
	}

	record(tr, "vocal-a", repeat(true, 5)...)
	next, ok = tr.NextVowel()
	if !ok || next != "vocal-e" {
		t.Errorf("after mastering vocal-a: next = %q ok=%v, want vocal-e", next, ok)
	}

	if p := tr.OverallProgress(); math.Abs(p-0.2) > 1e-9 {
		t.Errorf("overall progress = %f, want 0.2", p)
	}
}

func TestNextVowel_AllMastered(t *testing.T) {
	tr := NewTracker()
	for _, id := range []string{"vocal-a", "vocal-e", "vocal-i", "vocal-o", "vocal-u"} {
		record(tr, id, repeat(true, 5)...)
	}
	if _, ok := tr.NextVowel(); ok {
		t.Error("all vowels mastered: NextVowel should report terminal")
	}
	if p := tr.OverallProgress(); p != 1.0 {
		t.Errorf("overall progress = %f, want 1.0", p)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(true, 5)...)
	record(tr, "vocal-e", repeat(true, 5)...)

	tr.Reset()

	if r := tr.Mastery("vocal-a"); r.Attempts != 0 || r.Mastered {
		t.Errorf("after reset: %+v, want zero result", r)
	}
	if next, _ := tr.NextVowel(); next != "vocal-a" {
		t.Errorf("after reset: next = %q, want vocal-a", next)
	}
}

func TestResetSkill_Scoped(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(true, 5)...)
	record(tr, "vocal-e", repeat(true, 5)...)

	tr.ResetSkill("vocal-a")

	if r := tr.Mastery("vocal-a"); r.Attempts != 0 {
		t.Errorf("vocal-a after scoped reset: %+v, want zero", r)
	}
	if r := tr.Mastery("vocal-e"); !r.Mastered {
		t.Error("vocal-e should be untouched by vocal-a reset")
	}
}

func TestMasteredSkills_Derived(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(true, 5)...)
	record(tr, "vocal-e", true, true) // gated

	mastered := tr.MasteredSkills()
	if !mastered["vocal-a"] {
		t.Error("vocal-a should be in the mastered set")
	}
	if mastered["vocal-e"] {
		t.Error("vocal-e is below the attempt gate, must not be mastered")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr := NewTracker()
	record(tr, "vocal-a", repeat(false, 5)...)
	record(tr, "vocal-a", repeat(true, 10)...)
	record(tr, "silabas-m", true, false, true)

	restored := NewTrackerFromSnapshot(tr.SnapshotData())

	for _, id := range []string{"vocal-a", "silabas-m"} {
		got := restored.Mastery(id)
		want := tr.Mastery(id)
		if got != want {
			t.Errorf("%s: restored %+v, want %+v", id, got, want)
		}
	}
}

func TestWindow_Circular(t *testing.T) {
	var w outcomeWindow
	for i := 0; i < 25; i++ {
		w.Push(i%2 == 0)
	}
	if w.Len() != WindowSize {
		t.Fatalf("len = %d, want %d", w.Len(), WindowSize)
	}
	out := w.Outcomes()
	// Entries 15..24: parity of the index.
	for i, correct := range out {
		want := (15+i)%2 == 0
		if correct != want {
			t.Errorf("outcome[%d] = %v, want %v", i, correct, want)
		}
	}
}
