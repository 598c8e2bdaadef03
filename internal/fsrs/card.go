package fsrs

import "time"

// Card is the long-horizon memory state for a single fact.
// Created by Init on the first review, mutated by Review on every
// subsequent one, never deleted: the forgetting curve needs continuity.
type Card struct {
	Difficulty float64   // [1,10]
	Stability  float64   // days, always > 0
	Reps       int       // strictly increases with every review
	Lapses     int       // count of Again reviews
	LastReview time.Time // UTC timestamp of the most recent review
}

// ReviewResult is the immutable output of one scheduling step.
type ReviewResult struct {
	Card           Card
	Due            time.Time
	IntervalDays   int
	Retrievability float64 // predicted recall probability at review time
	Rating         Rating
}
