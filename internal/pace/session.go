package pace

import "sort"

// Confidence tags how much to trust a session's robust WPM.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	highConfidencePages   = 4
	mediumConfidencePages = 2
)

// SessionResult is the session-level aggregate over sanitized pages.
type SessionResult struct {
	// WPM is the robust (winsorized) session figure.
	WPM float64 `json:"wpm"`
	// PlainWPM is the unweighted mean, kept for comparison.
	PlainWPM   float64    `json:"plain_wpm"`
	Confidence Confidence `json:"confidence"`
	ValidPages int        `json:"valid_pages"`
	TotalPages int        `json:"total_pages"`
}

// AggregateSession reduces a session's sanitized pages to one robust
// WPM figure. Only valid pages contribute; when three or more are
// valid the first one is dropped as orientation time. Empty input
// yields a zero-value, low-confidence result.
func AggregateSession(pages []SanitizedPage) SessionResult {
	var valid []SanitizedPage
	for _, p := range pages {
		if p.Flag == FlagValid {
			valid = append(valid, p)
		}
	}

	result := SessionResult{
		Confidence: ConfidenceLow,
		ValidPages: len(valid),
		TotalPages: len(pages),
	}
	if len(valid) == 0 {
		return result
	}

	effective := valid
	if len(valid) >= 3 {
		effective = valid[1:]
	}
	if len(effective) == 0 {
		effective = valid
	}

	values := make([]float64, len(effective))
	for i, p := range effective {
		values[i] = p.WPM
	}

	result.WPM = robustMean(values)
	result.PlainWPM = mean(values)
	switch {
	case len(effective) >= highConfidencePages:
		result.Confidence = ConfidenceHigh
	case len(effective) >= mediumConfidencePages:
		result.Confidence = ConfidenceMedium
	}
	return result
}

// robustMean is a 10% winsorized mean: the extreme tails are clamped to
// the nearest kept value before averaging. With two or fewer values the
// median is used instead.
func robustMean(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n <= 2 {
		return median(sorted)
	}

	// Round the 10% tail up so small sessions still clamp one value
	// per side.
	k := (n + 9) / 10
	if 2*k >= n {
		k = (n - 1) / 2
	}
	for i := 0; i < k; i++ {
		sorted[i] = sorted[k]
		sorted[n-1-i] = sorted[n-1-k]
	}
	return mean(sorted)
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
