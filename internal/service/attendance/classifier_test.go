package attendance

import (
	"testing"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
)

var scheduledStart = time.Date(2026, 1, 1, 8, 0, 0, 0, timeutil.ClusterZone)
var scheduledEnd = time.Date(2026, 1, 1, 20, 0, 0, 0, timeutil.ClusterZone)

func TestClassifyClockInOnTime(t *testing.T) {
	res := ClassifyClockIn(scheduledStart, scheduledStart)
	if res.IsLate {
		t.Errorf("clock-in exactly at scheduled start flagged late")
	}
	if res.LateMinutes != 0 {
		t.Errorf("LateMinutes = %d, want 0", res.LateMinutes)
	}

	res = ClassifyClockIn(scheduledStart.Add(-10*time.Minute), scheduledStart)
	if res.IsLate {
		t.Errorf("early clock-in flagged late")
	}
}

func TestClassifyClockInStrictBoundary(t *testing.T) {
	// One second past the start is already late, reported as 1 minute.
	res := ClassifyClockIn(scheduledStart.Add(time.Second), scheduledStart)
	if !res.IsLate {
		t.Fatalf("clock-in one second late not flagged")
	}
	if res.LateMinutes < 1 {
		t.Errorf("LateMinutes = %d, want >= 1", res.LateMinutes)
	}

	res = ClassifyClockIn(scheduledStart.Add(time.Minute), scheduledStart)
	if !res.IsLate || res.LateMinutes != 1 {
		t.Errorf("one minute late: got %+v, want IsLate with 1 minute", res)
	}

	res = ClassifyClockIn(scheduledStart.Add(47*time.Minute+30*time.Second), scheduledStart)
	if res.LateMinutes != 47 {
		t.Errorf("LateMinutes = %d, want 47 (truncated)", res.LateMinutes)
	}
}

func TestClassifyClockOutGraceBoundary(t *testing.T) {
	// Exactly 5 minutes before the end stays unpenalized.
	res := ClassifyClockOut(scheduledEnd.Add(-5*time.Minute), scheduledEnd)
	if res.IsEarlyLeave {
		t.Errorf("clock-out 5 minutes early flagged despite grace window")
	}

	// Six minutes before is an early leave of 6 minutes.
	res = ClassifyClockOut(scheduledEnd.Add(-6*time.Minute), scheduledEnd)
	if !res.IsEarlyLeave {
		t.Fatalf("clock-out 6 minutes early not flagged")
	}
	if res.EarlyLeaveMinutes != 6 {
		t.Errorf("EarlyLeaveMinutes = %d, want 6", res.EarlyLeaveMinutes)
	}
}

func TestClassifyClockOutAfterEnd(t *testing.T) {
	res := ClassifyClockOut(scheduledEnd.Add(30*time.Minute), scheduledEnd)
	if res.IsEarlyLeave {
		t.Errorf("clock-out after scheduled end flagged as early leave")
	}
}

func TestWithinActionWindow(t *testing.T) {
	cases := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{-2 * time.Hour, true},
		{2 * time.Hour, true},
		{-2*time.Hour - time.Minute, false},
		{2*time.Hour + time.Minute, false},
	}
	for _, c := range cases {
		got := WithinActionWindow(scheduledStart.Add(c.offset), scheduledStart)
		if got != c.want {
			t.Errorf("WithinActionWindow(start%+v) = %v, want %v", c.offset, got, c.want)
		}
	}
}

func TestPerformanceScore(t *testing.T) {
	cases := []struct {
		late, early int
		want        float64
	}{
		{0, 0, 100},
		{10, 0, 95},
		{0, 20, 90},
		{60, 0, 70},    // 30 capped
		{200, 0, 70},   // still 30 capped
		{80, 80, 40},   // two independent caps: 100 - 30 - 30, not 0
		{400, 400, 40}, // caps hold however large the minutes
	}
	for _, c := range cases {
		if got := PerformanceScore(c.late, c.early); got != c.want {
			t.Errorf("PerformanceScore(%d, %d) = %v, want %v", c.late, c.early, got, c.want)
		}
	}
}
