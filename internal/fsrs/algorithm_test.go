package fsrs

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-4

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.6f, want %.6f (diff %.6f)", name, got, want, math.Abs(got-want))
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRetrievability_ZeroElapsed(t *testing.T) {
	assertFloat(t, "R(2.5, 0)", Retrievability(2.5, 0), 1.0)
}

func TestRetrievability_AtStability(t *testing.T) {
	// The curve is calibrated so an elapsed time equal to the stability
	// gives 90% recall.
	for _, s := range []float64{0.5, 1, 2.5, 10, 100} {
		assertFloat(t, "R(s, s)", Retrievability(s, s), 0.9)
	}
}

func TestRetrievability_Monotone(t *testing.T) {
	prev := 1.1
	for days := 0.0; days <= 60; days++ {
		r := Retrievability(3.0, days)
		if r > prev {
			t.Fatalf("retrievability increased at t=%.0f: %.6f > %.6f", days, r, prev)
		}
		if r < 0 || r > 1 {
			t.Fatalf("retrievability out of [0,1] at t=%.0f: %.6f", days, r)
		}
		prev = r
	}
}

func TestRetrievability_DegenerateStability(t *testing.T) {
	// Zero and negative stability floor to the minimum instead of
	// dividing by zero.
	for _, s := range []float64{0, -1, -100} {
		r := Retrievability(s, 5)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Fatalf("R(%v, 5) = %v, want finite", s, r)
		}
		if r < 0 || r > 1 {
			t.Fatalf("R(%v, 5) = %v, want in [0,1]", s, r)
		}
	}
}

func TestIntervalDays_EqualsStabilityAtDefaultRetention(t *testing.T) {
	// With the 19/81 factor and -0.5 decay, the interval at 90% desired
	// retention is exactly the stability.
	tests := []struct {
		stability float64
		want      int
	}{
		{0.5, 1}, // floored at 1 day
		{1, 1},
		{2.5, 3},
		{7, 7},
		{30, 30},
	}
	for _, tt := range tests {
		got := IntervalDays(tt.stability, DefaultRetention)
		if got != tt.want {
			t.Errorf("IntervalDays(%v, 0.9) = %d, want %d", tt.stability, got, tt.want)
		}
	}
}

func TestIntervalDays_MonotoneInStability(t *testing.T) {
	prev := 0
	for s := 0.1; s < 200; s += 0.7 {
		d := IntervalDays(s, DefaultRetention)
		if d < prev {
			t.Fatalf("interval decreased at stability %.1f: %d < %d", s, d, prev)
		}
		prev = d
	}
}

func TestIntervalDays_BadRetentionDefaults(t *testing.T) {
	want := IntervalDays(10, DefaultRetention)
	for _, r := range []float64{0, 1, -0.5, 2} {
		if got := IntervalDays(10, r); got != want {
			t.Errorf("IntervalDays(10, %v) = %d, want %d (default retention)", r, got, want)
		}
	}
}

func TestInit_RatingTables(t *testing.T) {
	now := date(2026, 3, 1)
	tests := []struct {
		rating         Rating
		wantDifficulty float64
		wantStability  float64
		wantLapses     int
		wantInterval   int
	}{
		{Again, 8.0, 0.5, 1, 1},
		{Hard, 6.5, 1.2, 0, 1}, // round(1×0.7) floors at 1
		{Good, 5.0, 3.0, 0, 3},
		{Easy, 3.5, 7.0, 0, 8}, // round(7×1.2), min 2
	}
	for _, tt := range tests {
		res := Init(now, tt.rating)
		if res.Card.Difficulty != tt.wantDifficulty {
			t.Errorf("%v: difficulty = %v, want %v", tt.rating, res.Card.Difficulty, tt.wantDifficulty)
		}
		if res.Card.Stability != tt.wantStability {
			t.Errorf("%v: stability = %v, want %v", tt.rating, res.Card.Stability, tt.wantStability)
		}
		if res.Card.Reps != 1 {
			t.Errorf("%v: reps = %d, want 1", tt.rating, res.Card.Reps)
		}
		if res.Card.Lapses != tt.wantLapses {
			t.Errorf("%v: lapses = %d, want %d", tt.rating, res.Card.Lapses, tt.wantLapses)
		}
		if res.IntervalDays != tt.wantInterval {
			t.Errorf("%v: interval = %d, want %d", tt.rating, res.IntervalDays, tt.wantInterval)
		}
		wantDue := now.AddDate(0, 0, tt.wantInterval)
		if !res.Due.Equal(wantDue) {
			t.Errorf("%v: due = %v, want %v", tt.rating, res.Due, wantDue)
		}
		if res.Retrievability != 1 {
			t.Errorf("%v: retrievability = %v, want 1", tt.rating, res.Retrievability)
		}
	}
}

func TestReview_AgainLapse(t *testing.T) {
	// Worked example: a two-day-old card lapses.
	prev := Card{
		Difficulty: 5,
		Stability:  2.5,
		Reps:       3,
		Lapses:     0,
		LastReview: date(2026, 2, 18),
	}
	res := Review(prev, date(2026, 2, 20), Again)

	if res.Card.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", res.Card.Lapses)
	}
	if res.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 (Again always reschedules tomorrow)", res.IntervalDays)
	}
	if res.Card.Reps != 4 {
		t.Errorf("reps = %d, want 4", res.Card.Reps)
	}
	assertFloat(t, "difficulty", res.Card.Difficulty, 6.2)
	if res.Card.Stability >= prev.Stability {
		t.Errorf("stability = %v, want shrink below %v", res.Card.Stability, prev.Stability)
	}
	if res.Card.Stability < minStability {
		t.Errorf("stability = %v, below floor", res.Card.Stability)
	}
	// R(2.5, 2) = (1 + 0.234568·2/2.5)^-0.5
	assertFloat(t, "retrievability", res.Retrievability, 0.91763)
}

func TestReview_GoodGrowsStability(t *testing.T) {
	prev := Card{Difficulty: 5, Stability: 3, Reps: 1, LastReview: date(2026, 3, 1)}
	res := Review(prev, date(2026, 3, 4), Good)

	if res.Card.Stability <= prev.Stability {
		t.Errorf("stability = %v, want growth above %v", res.Card.Stability, prev.Stability)
	}
	if res.Card.Difficulty >= prev.Difficulty {
		t.Errorf("difficulty = %v, want slight drop from %v on Good", res.Card.Difficulty, prev.Difficulty)
	}
	if res.Card.Reps != 2 {
		t.Errorf("reps = %d, want 2", res.Card.Reps)
	}
}

func TestReview_HardBelowGoodBelowEasy(t *testing.T) {
	prev := Card{Difficulty: 5, Stability: 3, Reps: 1, LastReview: date(2026, 3, 1)}
	now := date(2026, 3, 5)

	hard := Review(prev, now, Hard).Card.Stability
	good := Review(prev, now, Good).Card.Stability
	easy := Review(prev, now, Easy).Card.Stability

	if !(hard < good && good < easy) {
		t.Errorf("stability ordering hard=%v good=%v easy=%v, want hard < good < easy", hard, good, easy)
	}
}

func TestReview_GrowthLargerAfterMoreForgetting(t *testing.T) {
	prev := Card{Difficulty: 5, Stability: 3, Reps: 1, LastReview: date(2026, 3, 1)}

	soon := Review(prev, date(2026, 3, 2), Good).Card.Stability
	late := Review(prev, date(2026, 3, 15), Good).Card.Stability

	if late <= soon {
		t.Errorf("recall after heavy decay should grow stability more: soon=%v late=%v", soon, late)
	}
}

func TestReview_BoundsHoldUnderAnySequence(t *testing.T) {
	ratings := []Rating{Again, Hard, Good, Easy}
	now := date(2026, 1, 1)

	for _, first := range ratings {
		res := Init(now, first)
		// Cycle through ratings for fifty reviews.
		for i := 0; i < 50; i++ {
			now = now.AddDate(0, 0, res.IntervalDays)
			res = Review(res.Card, now, ratings[i%len(ratings)])

			if res.Card.Difficulty < 1 || res.Card.Difficulty > 10 {
				t.Fatalf("difficulty out of bounds after review %d: %v", i, res.Card.Difficulty)
			}
			if res.Card.Stability <= 0 || math.IsNaN(res.Card.Stability) || math.IsInf(res.Card.Stability, 0) {
				t.Fatalf("stability degenerate after review %d: %v", i, res.Card.Stability)
			}
			if res.Card.Reps != i+2 {
				t.Fatalf("reps = %d after review %d, want %d", res.Card.Reps, i, i+2)
			}
			if res.IntervalDays < 1 {
				t.Fatalf("interval %d after review %d, want >= 1", res.IntervalDays, i)
			}
		}
	}
}

func TestReview_PastTimestampTreatedAsZeroElapsed(t *testing.T) {
	prev := Card{Difficulty: 5, Stability: 3, Reps: 1, LastReview: date(2026, 3, 10)}
	res := Review(prev, date(2026, 3, 8), Good)
	assertFloat(t, "retrievability", res.Retrievability, 1.0)
}
