package attendance

import (
	"math"
	"time"
)

const (
	// clockOutGrace is the tolerance before the scheduled end within which an
	// early clock-out is not penalized. It exists for back-to-back handoffs
	// ("shift terusan"): the outgoing guard closes a few minutes early so the
	// incoming one can open on time.
	clockOutGrace = 5 * time.Minute

	// actionWindow bounds how far from the scheduled instant a clock action
	// is accepted at all.
	actionWindow = 2 * time.Hour

	penaltyPerMinute = 0.5
	penaltyCap       = 30.0
)

type ClockInResult struct {
	IsLate      bool
	LateMinutes int
}

// ClassifyClockIn applies the strict lateness rule: any instant after the
// scheduled start is late, with no tolerance. Minutes are truncated; the
// minimum reportable lateness is 1 minute.
func ClassifyClockIn(actual, scheduledStart time.Time) ClockInResult {
	if !actual.After(scheduledStart) {
		return ClockInResult{}
	}
	mins := int(actual.Sub(scheduledStart).Minutes())
	if mins < 1 {
		mins = 1
	}
	return ClockInResult{IsLate: true, LateMinutes: mins}
}

type ClockOutResult struct {
	IsEarlyLeave      bool
	EarlyLeaveMinutes int
}

// ClassifyClockOut flags an early leave only when the clock-out falls more
// than the grace interval before the scheduled end.
func ClassifyClockOut(actual, scheduledEnd time.Time) ClockOutResult {
	diff := scheduledEnd.Sub(actual)
	if diff <= clockOutGrace {
		return ClockOutResult{}
	}
	return ClockOutResult{IsEarlyLeave: true, EarlyLeaveMinutes: int(diff.Minutes())}
}

// WithinActionWindow reports whether actual falls inside the +-2h window
// centered on the scheduled instant. Clock actions outside it are rejected.
func WithinActionWindow(actual, scheduled time.Time) bool {
	diff := actual.Sub(scheduled)
	if diff < 0 {
		diff = -diff
	}
	return diff <= actionWindow
}

// PerformanceScore derives the reporting score from classifier output. Each
// penalty is capped at 30 points on its own before summing; the caps are
// deliberately independent, not one combined cap.
func PerformanceScore(lateMinutes, earlyLeaveMinutes int) float64 {
	latePenalty := math.Min(float64(lateMinutes)*penaltyPerMinute, penaltyCap)
	earlyPenalty := math.Min(float64(earlyLeaveMinutes)*penaltyPerMinute, penaltyCap)
	score := 100 - latePenalty - earlyPenalty
	if score < 0 {
		score = 0
	}
	return score
}
