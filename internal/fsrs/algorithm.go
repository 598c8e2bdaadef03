package fsrs

import (
	"math"
	"time"
)

// Forgetting curve R = (1 + factor·t/S)^decay, tuned so that
// R(S, S) = 0.9: an interval equal to the stability yields 90% recall.
const (
	curveFactor = 19.0 / 81.0
	curveDecay  = -0.5
)

// DefaultRetention is the recall probability the scheduler aims for.
const DefaultRetention = 0.9

// Bounds applied before any curve formula to keep the math finite.
const (
	minStability  = 0.1
	minDifficulty = 1.0
	maxDifficulty = 10.0
)

// Difficulty update constants.
const (
	againDifficultyStep = 1.2  // fixed increment on a lapse
	difficultyRetention = 0.8  // EMA weight kept on the previous difficulty
	hardDelta           = 0.35 // EMA targets: previous difficulty + delta
	goodDelta           = -0.10
	easyDelta           = -0.45
)

// Stability growth constants for successful reviews. Growth is larger
// when difficulty is low, stability is still small, and more forgetting
// had accumulated since the last review.
const (
	growthLog     = 1.2  // e^growthLog scales the whole increment
	stabilityDamp = 0.1  // S^-damp: diminishing returns at high stability
	forgetWeight  = 1.5  // e^((1-R)·weight)-1: reward recall after decay
	hardPenalty   = 0.85
	easyBonus     = 1.25
)

// Interval direction multipliers.
const (
	hardIntervalMul = 0.7
	easyIntervalMul = 1.2
	easyMinInterval = 2
)

// Rating-indexed starting states for a fact's first review.
var initialStates = map[Rating]struct {
	difficulty float64
	stability  float64
}{
	Again: {difficulty: 8.0, stability: 0.5},
	Hard:  {difficulty: 6.5, stability: 1.2},
	Good:  {difficulty: 5.0, stability: 3.0},
	Easy:  {difficulty: 3.5, stability: 7.0},
}

// Retrievability predicts recall probability after elapsedDays given the
// fact's stability. Degenerate inputs are floored, result clamped to [0,1].
func Retrievability(stability, elapsedDays float64) float64 {
	s := math.Max(stability, minStability)
	t := math.Max(elapsedDays, 0)
	r := math.Pow(1+curveFactor*t/s, curveDecay)
	return clamp(r, 0, 1)
}

// IntervalDays inverts the forgetting curve: the number of days after
// which retrievability decays to desiredRetention. Floored at 1 day.
func IntervalDays(stability, desiredRetention float64) int {
	s := math.Max(stability, minStability)
	if desiredRetention <= 0 || desiredRetention >= 1 {
		desiredRetention = DefaultRetention
	}
	ivl := s / curveFactor * (math.Pow(desiredRetention, 1/curveDecay) - 1)
	days := int(math.Round(ivl))
	if days < 1 {
		days = 1
	}
	return days
}

// Init creates the card state for a fact's first-ever review.
func Init(now time.Time, rating Rating) ReviewResult {
	if !rating.Valid() {
		rating = Good
	}
	st := initialStates[rating]

	card := Card{
		Difficulty: st.difficulty,
		Stability:  st.stability,
		Reps:       1,
		LastReview: now,
	}
	if rating == Again {
		card.Lapses = 1
	}

	interval := directedInterval(card.Stability, rating)
	return ReviewResult{
		Card:           card,
		Due:            now.AddDate(0, 0, interval),
		IntervalDays:   interval,
		Retrievability: 1,
		Rating:         rating,
	}
}

// Review applies one rated review to an existing card. Reviews must be
// submitted in non-decreasing time order per fact; an earlier timestamp
// is treated as zero elapsed time rather than rejected.
func Review(prev Card, now time.Time, rating Rating) ReviewResult {
	if !rating.Valid() {
		rating = Good
	}

	s := math.Max(prev.Stability, minStability)
	d := clamp(prev.Difficulty, minDifficulty, maxDifficulty)

	elapsed := now.Sub(prev.LastReview).Hours() / 24
	retr := Retrievability(s, elapsed)

	card := prev
	if rating == Again {
		// The better the predicted recall was, the less the lapse says
		// about the underlying memory: shrink stability less.
		card.Stability = math.Max(minStability, s*(0.2+0.3*retr))
		card.Difficulty = clamp(d+againDifficultyStep, minDifficulty, maxDifficulty)
		card.Lapses = prev.Lapses + 1
	} else {
		card.Stability = math.Max(minStability, s*(1+recallGrowth(d, s, retr, rating)))
		target := d + deltaFor(rating)
		card.Difficulty = clamp(difficultyRetention*d+(1-difficultyRetention)*target, minDifficulty, maxDifficulty)
	}
	card.Reps = prev.Reps + 1
	card.LastReview = now

	interval := directedInterval(card.Stability, rating)
	return ReviewResult{
		Card:           card,
		Due:            now.AddDate(0, 0, interval),
		IntervalDays:   interval,
		Retrievability: retr,
		Rating:         rating,
	}
}

// recallGrowth is the fractional stability increase for Hard/Good/Easy.
func recallGrowth(d, s, retr float64, rating Rating) float64 {
	growth := math.Exp(growthLog) *
		(11 - d) / 10 *
		math.Pow(s, -stabilityDamp) *
		(math.Exp((1-retr)*forgetWeight) - 1)
	switch rating {
	case Hard:
		growth *= hardPenalty
	case Easy:
		growth *= easyBonus
	}
	if growth < 0 {
		growth = 0
	}
	return growth
}

func deltaFor(rating Rating) float64 {
	switch rating {
	case Hard:
		return hardDelta
	case Easy:
		return easyDelta
	default:
		return goodDelta
	}
}

// directedInterval converts stability into the next interval, applying
// the per-rating direction multipliers and floors.
func directedInterval(stability float64, rating Rating) int {
	days := IntervalDays(stability, DefaultRetention)
	switch rating {
	case Again:
		return 1
	case Hard:
		days = int(math.Round(float64(days) * hardIntervalMul))
		if days < 1 {
			days = 1
		}
	case Easy:
		days = int(math.Round(float64(days) * easyIntervalMul))
		if days < easyMinInterval {
			days = easyMinInterval
		}
	}
	return days
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
