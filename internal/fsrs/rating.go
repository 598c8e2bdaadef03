package fsrs

// Rating grades one review outcome.
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

// Latency cutoffs for deriving a rating from a timed answer.
const (
	fastAnswerMs = 2500
	slowAnswerMs = 7000
)

// RateOutcome derives a rating from correctness and response latency.
// Incorrect answers are always Again; correct answers grade by speed.
func RateOutcome(correct bool, latencyMs int) Rating {
	if !correct {
		return Again
	}
	switch {
	case latencyMs < fastAnswerMs:
		return Easy
	case latencyMs > slowAnswerMs:
		return Hard
	default:
		return Good
	}
}

// Valid reports whether r is one of the four defined ratings.
func (r Rating) Valid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	switch r {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	default:
		return "unknown"
	}
}

// RatingFromString parses a rating name. Unknown names yield Good so a
// corrupt persisted value degrades to the neutral rating instead of failing.
func RatingFromString(s string) Rating {
	switch s {
	case "again":
		return Again
	case "hard":
		return Hard
	case "good":
		return Good
	case "easy":
		return Easy
	default:
		return Good
	}
}
