package pace

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
)

const epsilon = 1e-6

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSanitizePage_ElapsedBoundary(t *testing.T) {
	// 5 words at nivel 4 keeps the computed WPM inside the plausible
	// range at exactly 1500ms, so the elapsed-time rule is the only
	// thing that can flag it.
	atBoundary := SanitizePage(PageSample{WordCount: 5, ElapsedMs: 1500}, curriculum.Nivel4)
	if atBoundary.Flag != FlagValid {
		t.Errorf("1500ms page flagged %q, want valid", atBoundary.Flag)
	}
	below := SanitizePage(PageSample{WordCount: 5, ElapsedMs: 1499}, curriculum.Nivel4)
	if below.Flag != FlagTooFast {
		t.Errorf("1499ms page flagged %q, want too_fast", below.Flag)
	}
}

func TestSanitizePage_TooSlowElapsed(t *testing.T) {
	p := SanitizePage(PageSample{WordCount: 40, ElapsedMs: 5*60*1000 + 1}, curriculum.Nivel3)
	if p.Flag != FlagTooSlow {
		t.Errorf("flag = %q, want too_slow", p.Flag)
	}
}

func TestSanitizePage_WPMBounds(t *testing.T) {
	// Nivel 4 expects 95 WPM, so bounds are [28.5, 237.5].
	fast := SanitizePage(PageSample{WordCount: 100, ElapsedMs: 10_000}, curriculum.Nivel4)
	if fast.Flag != FlagTooFast {
		t.Errorf("600 WPM page flagged %q, want too_fast", fast.Flag)
	}
	assertFloat(t, "fast WPM", fast.WPM, 600)

	slow := SanitizePage(PageSample{WordCount: 10, ElapsedMs: 120_000}, curriculum.Nivel4)
	if slow.Flag != FlagTooSlow {
		t.Errorf("5 WPM page flagged %q, want too_slow", slow.Flag)
	}

	ok := SanitizePage(PageSample{WordCount: 30, ElapsedMs: 20_000}, curriculum.Nivel4)
	if ok.Flag != FlagValid {
		t.Errorf("90 WPM page flagged %q, want valid", ok.Flag)
	}
}

func TestSanitizePage_ShortPagesAlwaysValid(t *testing.T) {
	p := SanitizePage(PageSample{WordCount: 4, ElapsedMs: 100}, curriculum.Nivel1)
	if p.Flag != FlagValid {
		t.Errorf("4-word page flagged %q, want valid", p.Flag)
	}
}

func TestSanitizePage_ZeroElapsed(t *testing.T) {
	p := SanitizePage(PageSample{WordCount: 10, ElapsedMs: 0}, curriculum.Nivel2)
	assertFloat(t, "WPM", p.WPM, 0)
	if p.Flag != FlagTooFast {
		t.Errorf("flag = %q, want too_fast", p.Flag)
	}
}

func TestWPMBounds(t *testing.T) {
	lo, hi := WPMBounds(curriculum.Nivel2)
	assertFloat(t, "nivel 2 lower", lo, 13.5)
	assertFloat(t, "nivel 2 upper", hi, 112.5)

	// Nivel 1's raw lower bound (6) stays above the absolute floor.
	lo, _ = WPMBounds(curriculum.Nivel1)
	assertFloat(t, "nivel 1 lower", lo, 6)
}

func validPage(index int, wpm float64) SanitizedPage {
	return SanitizedPage{PageIndex: index, WPM: wpm, WordCount: 20, Flag: FlagValid}
}

func TestAggregateSession_Empty(t *testing.T) {
	r := AggregateSession(nil)
	assertFloat(t, "WPM", r.WPM, 0)
	if r.Confidence != ConfidenceLow {
		t.Errorf("confidence = %q, want low", r.Confidence)
	}
	if r.ValidPages != 0 || r.TotalPages != 0 {
		t.Errorf("page counts = %d/%d, want 0/0", r.ValidPages, r.TotalPages)
	}
}

func TestAggregateSession_AllInvalid(t *testing.T) {
	pages := []SanitizedPage{
		{PageIndex: 0, WPM: 600, Flag: FlagTooFast},
		{PageIndex: 1, WPM: 2, Flag: FlagTooSlow},
	}
	r := AggregateSession(pages)
	assertFloat(t, "WPM", r.WPM, 0)
	if r.ValidPages != 0 || r.TotalPages != 2 {
		t.Errorf("page counts = %d/%d, want 0/2", r.ValidPages, r.TotalPages)
	}
}

func TestAggregateSession_DropsFirstPageWhenEnough(t *testing.T) {
	// Orientation page reads slow; with three valid pages it is dropped.
	pages := []SanitizedPage{validPage(0, 10), validPage(1, 50), validPage(2, 60)}
	r := AggregateSession(pages)
	assertFloat(t, "WPM", r.WPM, 55)
	assertFloat(t, "plain WPM", r.PlainWPM, 55)
	if r.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", r.Confidence)
	}
	if r.ValidPages != 3 {
		t.Errorf("valid pages = %d, want 3", r.ValidPages)
	}
}

func TestAggregateSession_KeepsFirstPageWhenFew(t *testing.T) {
	pages := []SanitizedPage{validPage(0, 40), validPage(1, 60)}
	r := AggregateSession(pages)
	assertFloat(t, "WPM", r.WPM, 50)
	if r.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", r.Confidence)
	}
}

func TestAggregateSession_SinglePageLowConfidence(t *testing.T) {
	r := AggregateSession([]SanitizedPage{validPage(0, 42)})
	assertFloat(t, "WPM", r.WPM, 42)
	if r.Confidence != ConfidenceLow {
		t.Errorf("confidence = %q, want low", r.Confidence)
	}
}

func TestAggregateSession_HighConfidence(t *testing.T) {
	pages := []SanitizedPage{
		validPage(0, 48), validPage(1, 50), validPage(2, 52),
		validPage(3, 49), validPage(4, 51),
	}
	r := AggregateSession(pages)
	if r.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q, want high", r.Confidence)
	}
}

func TestAggregateSession_WinsorizedRobustness(t *testing.T) {
	// One wild outlier among consistent pages should pull the robust
	// mean far less than it pulls the plain mean.
	pages := []SanitizedPage{
		validPage(0, 60), validPage(1, 62), validPage(2, 58),
		validPage(3, 61), validPage(4, 59), validPage(5, 200),
	}
	r := AggregateSession(pages)

	const cluster = 60.0
	robustDrift := math.Abs(r.WPM - cluster)
	plainDrift := math.Abs(r.PlainWPM - cluster)
	if robustDrift >= plainDrift {
		t.Errorf("robust WPM %v drifts %v from the cluster, plain mean %v drifts %v",
			r.WPM, robustDrift, r.PlainWPM, plainDrift)
	}
	// After dropping page 1 the values are {62,58,61,59,200}; the 10%
	// winsorization clamps one value per side.
	assertFloat(t, "robust WPM", r.WPM, (59+59+61+62+62)/5.0)
}

func TestRobustMean_MedianForTwo(t *testing.T) {
	assertFloat(t, "two values", robustMean([]float64{40, 60}), 50)
	assertFloat(t, "one value", robustMean([]float64{40}), 40)
	assertFloat(t, "empty", robustMean(nil), 0)
}

func day(n int) time.Time {
	return time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func snapshot(at time.Time, wpm float64, c Confidence) SessionSnapshot {
	return SessionSnapshot{At: at, WPM: wpm, Confidence: c, Nivel: curriculum.Nivel2}
}

func TestTrend_Empty(t *testing.T) {
	if got := Trend(nil); got != nil {
		t.Errorf("expected nil for empty input, got %d points", len(got))
	}
}

func TestTrend_SeedsWithFirstUsable(t *testing.T) {
	points := Trend([]SessionSnapshot{
		snapshot(day(0), 40, ConfidenceHigh),
		snapshot(day(1), 60, ConfidenceHigh),
	})
	assertFloat(t, "seed", points[0].SmoothedWPM, 40)
	assertFloat(t, "second", points[1].SmoothedWPM, 0.3*60+0.7*40)
}

func TestTrend_LowConfidenceCarriesForward(t *testing.T) {
	points := Trend([]SessionSnapshot{
		snapshot(day(0), 50, ConfidenceHigh),
		snapshot(day(1), 999, ConfidenceLow),
		snapshot(day(2), 60, ConfidenceHigh),
	})
	assertFloat(t, "before", points[0].SmoothedWPM, 50)
	assertFloat(t, "carried", points[1].SmoothedWPM, 50)
	assertFloat(t, "after", points[2].SmoothedWPM, 0.3*60+0.7*50)
	assertFloat(t, "raw preserved", points[1].RawWPM, 999)
}

func TestTrend_LeadingLowBeforeSeed(t *testing.T) {
	points := Trend([]SessionSnapshot{
		snapshot(day(0), 30, ConfidenceLow),
		snapshot(day(1), 45, ConfidenceMedium),
	})
	assertFloat(t, "unseeded", points[0].SmoothedWPM, 0)
	assertFloat(t, "seed", points[1].SmoothedWPM, 45)
}

func TestTrend_LayoffUsesHigherAlpha(t *testing.T) {
	points := Trend([]SessionSnapshot{
		snapshot(day(0), 40, ConfidenceHigh),
		snapshot(day(20), 60, ConfidenceHigh),
	})
	assertFloat(t, "after layoff", points[1].SmoothedWPM, 0.5*60+0.5*40)
}

func TestTrend_GapMeasuredFromPreviousSnapshot(t *testing.T) {
	// The low-confidence session 10 days in resets the gap clock even
	// though it carries no weight, so the last step uses the default
	// alpha despite 13 days since the previous usable session.
	points := Trend([]SessionSnapshot{
		snapshot(day(0), 40, ConfidenceHigh),
		snapshot(day(10), 35, ConfidenceLow),
		snapshot(day(13), 60, ConfidenceHigh),
	})
	assertFloat(t, "last", points[2].SmoothedWPM, 0.3*60+0.7*40)
}

func TestSanitizePages_PreservesOrder(t *testing.T) {
	samples := []PageSample{
		{PageIndex: 0, WordCount: 30, ElapsedMs: 30_000},
		{PageIndex: 1, WordCount: 4, ElapsedMs: 100},
		{PageIndex: 2, WordCount: 40, ElapsedMs: 1_000},
	}
	pages := SanitizePages(samples, curriculum.Nivel3)
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, p := range pages {
		if p.PageIndex != i {
			t.Errorf("page %d has index %d", i, p.PageIndex)
		}
	}
	if pages[2].Flag != FlagTooFast {
		t.Errorf("1s page flagged %q, want too_fast", pages[2].Flag)
	}
}
