package timeutil

import (
	"testing"
	"time"
)

func TestStartEndOfCivilDayBracketInput(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 16, 59, 59, 0, time.UTC),  // 23:59:59 WIB
		time.Date(2026, 1, 1, 17, 0, 0, 0, time.UTC),    // 00:00 WIB next civil day
		time.Date(2026, 6, 15, 3, 30, 0, 0, ClusterZone),
	}
	for _, x := range cases {
		start := StartOfCivilDay(x)
		end := EndOfCivilDay(x)
		if start.After(x) {
			t.Errorf("StartOfCivilDay(%v) = %v, after input", x, start)
		}
		if end.Before(x) {
			t.Errorf("EndOfCivilDay(%v) = %v, before input", x, end)
		}
	}
}

func TestCivilDayBoundariesIdempotent(t *testing.T) {
	// Every instant within one civil day must map to the same boundaries.
	morning := time.Date(2026, 3, 10, 6, 15, 0, 0, ClusterZone)
	evening := time.Date(2026, 3, 10, 23, 45, 0, 0, ClusterZone)

	if !StartOfCivilDay(morning).Equal(StartOfCivilDay(evening)) {
		t.Errorf("StartOfCivilDay differs within one civil day: %v vs %v",
			StartOfCivilDay(morning), StartOfCivilDay(evening))
	}
	if !EndOfCivilDay(morning).Equal(EndOfCivilDay(evening)) {
		t.Errorf("EndOfCivilDay differs within one civil day: %v vs %v",
			EndOfCivilDay(morning), EndOfCivilDay(evening))
	}
}

func TestCivilDayBoundaryNearUTCRollover(t *testing.T) {
	// 18:00 UTC is already 01:00 WIB of the next civil date.
	x := time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC)
	if got := CivilDate(x); got != "2026-01-02" {
		t.Errorf("CivilDate(%v) = %s, want 2026-01-02", x, got)
	}
	start := StartOfCivilDay(x)
	if got := start.UTC(); !got.Equal(time.Date(2026, 1, 1, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfCivilDay(%v) = %v, want 2026-01-01T17:00:00Z", x, got)
	}
}

func TestCivilDaysBetween(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, ClusterZone)
	cases := []struct {
		b    time.Time
		want int
	}{
		{time.Date(2026, 1, 1, 23, 59, 0, 0, ClusterZone), 0},
		{time.Date(2026, 1, 2, 0, 0, 1, 0, ClusterZone), 1},
		{time.Date(2026, 1, 6, 12, 0, 0, 0, ClusterZone), 5},
		{time.Date(2025, 12, 31, 23, 0, 0, 0, ClusterZone), -1},
		{time.Date(2025, 12, 27, 1, 0, 0, 0, ClusterZone), -5},
	}
	for _, c := range cases {
		if got := CivilDaysBetween(ref, c.b); got != c.want {
			t.Errorf("CivilDaysBetween(ref, %v) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestCivilWeekdayUsesLocalCalendar(t *testing.T) {
	// 2026-01-03 18:00 UTC is Sunday 2026-01-04 in WIB.
	x := time.Date(2026, 1, 3, 18, 0, 0, 0, time.UTC)
	if got := CivilWeekday(x); got != time.Sunday {
		t.Errorf("CivilWeekday(%v) = %v, want Sunday", x, got)
	}
}
