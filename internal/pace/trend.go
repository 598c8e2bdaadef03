package pace

import (
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
)

const (
	// defaultAlpha is the EWA smoothing factor for back-to-back sessions.
	defaultAlpha = 0.3
	// gapAlpha replaces it after a long layoff, letting fresh data
	// dominate the stale average.
	gapAlpha = 0.5
	// layoffGap is the snapshot-to-snapshot gap that triggers gapAlpha.
	layoffGap = 14 * 24 * time.Hour
)

// SessionSnapshot is one persisted per-session WPM figure, the input to
// the cross-session trend. Snapshots must be in chronological order.
type SessionSnapshot struct {
	At         time.Time        `json:"at"`
	WPM        float64          `json:"wpm"`
	Confidence Confidence       `json:"confidence"`
	Nivel      curriculum.Nivel `json:"nivel"`
}

// TrendPoint is one point in the smoothed cross-session series.
type TrendPoint struct {
	At          time.Time        `json:"at"`
	RawWPM      float64          `json:"raw_wpm"`
	SmoothedWPM float64          `json:"smoothed_wpm"`
	Confidence  Confidence       `json:"confidence"`
	Nivel       curriculum.Nivel `json:"nivel"`
}

// Trend smooths chronologically ordered session snapshots with an
// exponentially weighted average. Low-confidence sessions get a trend
// point but contribute no weight: the smoothed value carries forward
// unchanged. The average is seeded with the first usable raw value.
func Trend(snapshots []SessionSnapshot) []TrendPoint {
	if len(snapshots) == 0 {
		return nil
	}

	points := make([]TrendPoint, 0, len(snapshots))
	var (
		smoothed float64
		seeded   bool
		prevAt   time.Time
	)
	for _, s := range snapshots {
		usable := s.Confidence != ConfidenceLow
		switch {
		case usable && !seeded:
			smoothed = s.WPM
			seeded = true
		case usable:
			alpha := defaultAlpha
			if !prevAt.IsZero() && s.At.Sub(prevAt) > layoffGap {
				alpha = gapAlpha
			}
			smoothed = alpha*s.WPM + (1-alpha)*smoothed
		}

		points = append(points, TrendPoint{
			At:          s.At,
			RawWPM:      s.WPM,
			SmoothedWPM: smoothed,
			Confidence:  s.Confidence,
			Nivel:       s.Nivel,
		})
		prevAt = s.At
	}
	return points
}
