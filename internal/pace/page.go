// Package pace turns raw per-page reading timings into robust
// words-per-minute figures and cross-session trends. Everything here is
// a pure computation over in-memory samples; persistence and display
// belong to the caller.
package pace

import "github.com/abhisek/lectio/internal/curriculum"

// PageFlag classifies a sanitized page sample. The values are the wire
// labels persisted with each reading event.
type PageFlag string

const (
	FlagValid   PageFlag = "valid"
	FlagTooFast PageFlag = "too_fast"
	FlagTooSlow PageFlag = "too_slow"
)

const (
	// minElapsedMs flags taps faster than a child could plausibly read.
	minElapsedMs = 1500
	// maxElapsedMs flags pages left open (walked away, got distracted).
	maxElapsedMs = 5 * 60 * 1000

	// WPM bounds are the nivel's expected WPM scaled by these factors,
	// clamped to an absolute floor and ceiling.
	lowerBoundFactor = 0.3
	upperBoundFactor = 2.5
	absoluteMinWPM   = 5.0
	absoluteMaxWPM   = 400.0

	// minJudgeableWords: below this the WPM figure is too noisy to
	// flag on, so the page always counts as valid.
	minJudgeableWords = 5
)

// PageSample is one raw page reading as reported by the session.
type PageSample struct {
	PageIndex int `json:"page_index"`
	WordCount int `json:"word_count"`
	ElapsedMs int `json:"elapsed_ms"`
}

// SanitizedPage is a page sample with its computed WPM and flag.
// Derived value, never mutated after construction.
type SanitizedPage struct {
	PageIndex int      `json:"page_index"`
	WPM       float64  `json:"wpm"`
	WordCount int      `json:"word_count"`
	ElapsedMs int      `json:"elapsed_ms"`
	Flag      PageFlag `json:"flag"`
}

// WPMBounds returns the plausible WPM range for a reading level.
func WPMBounds(nivel curriculum.Nivel) (lo, hi float64) {
	expected := nivel.ExpectedWPM()
	lo = expected * lowerBoundFactor
	hi = expected * upperBoundFactor
	if lo < absoluteMinWPM {
		lo = absoluteMinWPM
	}
	if hi > absoluteMaxWPM {
		hi = absoluteMaxWPM
	}
	return lo, hi
}

// SanitizePage computes a page's WPM and flags it against the nivel's
// plausible range. Pages with fewer than minJudgeableWords words are
// always valid.
func SanitizePage(s PageSample, nivel curriculum.Nivel) SanitizedPage {
	out := SanitizedPage{
		PageIndex: s.PageIndex,
		WPM:       computeWPM(s.WordCount, s.ElapsedMs),
		WordCount: s.WordCount,
		ElapsedMs: s.ElapsedMs,
		Flag:      FlagValid,
	}
	if s.WordCount < minJudgeableWords {
		return out
	}

	lo, hi := WPMBounds(nivel)
	switch {
	case s.ElapsedMs < minElapsedMs:
		out.Flag = FlagTooFast
	case s.ElapsedMs > maxElapsedMs:
		out.Flag = FlagTooSlow
	case out.WPM > hi:
		out.Flag = FlagTooFast
	case out.WPM < lo:
		out.Flag = FlagTooSlow
	}
	return out
}

// SanitizePages sanitizes a whole session's pages in order.
func SanitizePages(samples []PageSample, nivel curriculum.Nivel) []SanitizedPage {
	pages := make([]SanitizedPage, len(samples))
	for i, s := range samples {
		pages[i] = SanitizePage(s, nivel)
	}
	return pages
}

func computeWPM(words, elapsedMs int) float64 {
	if elapsedMs <= 0 || words <= 0 {
		return 0
	}
	return float64(words) / (float64(elapsedMs) / 60000.0)
}
