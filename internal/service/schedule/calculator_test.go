package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
)

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, timeutil.ClusterZone)
}

func TestShiftForRotationEpochSequence(t *testing.T) {
	// Day zero of the rotation is 2026-01-01 WIB; offset 0 walks the
	// sequence P, PM, M, OFF, OFF from there.
	cases := []struct {
		day  int
		want schedule.ShiftCode
	}{
		{1, schedule.ShiftPagi},
		{2, schedule.ShiftPagiMalam},
		{3, schedule.ShiftMalam},
		{4, schedule.ShiftOff},
		{5, schedule.ShiftOff},
		{6, schedule.ShiftPagi},
	}
	for _, c := range cases {
		got := ShiftForRotation(0, civilDate(2026, time.January, c.day))
		if got != c.want {
			t.Errorf("ShiftForRotation(0, 2026-01-%02d) = %s, want %s", c.day, got, c.want)
		}
	}
}

func TestShiftForRotationPeriodicity(t *testing.T) {
	for offset := -3; offset <= 3; offset++ {
		for day := 0; day < 30; day++ {
			d := civilDate(2026, time.March, 1).AddDate(0, 0, day)
			a := ShiftForRotation(offset, d)
			b := ShiftForRotation(offset, d.AddDate(0, 0, 5))
			if a != b {
				t.Errorf("offset %d: shift on %v = %s but %s five days later", offset, d, a, b)
			}
		}
	}
}

func TestShiftForRotationOffsetShiftInvariance(t *testing.T) {
	// Shifting the offset by n is the same as asking n days later.
	d := civilDate(2026, time.February, 10)
	for offset := 0; offset < 5; offset++ {
		a := ShiftForRotation(offset, d)
		b := ShiftForRotation(0, d.AddDate(0, 0, offset))
		if a != b {
			t.Errorf("ShiftForRotation(%d, d) = %s, want %s (= ShiftForRotation(0, d+%dd))", offset, a, b, offset)
		}
	}
}

func TestShiftForRotationNegativeOffset(t *testing.T) {
	// Offset -1 at the epoch must wrap to index 4 (OFF), not a negative index.
	got := ShiftForRotation(-1, civilDate(2026, time.January, 1))
	if got != schedule.ShiftOff {
		t.Errorf("ShiftForRotation(-1, epoch) = %s, want OFF", got)
	}
}

func TestShiftForRotationBeforeEpoch(t *testing.T) {
	// 2025-12-31 is one civil day before the epoch: index 4 -> OFF.
	got := ShiftForRotation(0, civilDate(2025, time.December, 31))
	if got != schedule.ShiftOff {
		t.Errorf("ShiftForRotation(0, 2025-12-31) = %s, want OFF", got)
	}
	// Five days before the epoch lands back on P.
	got = ShiftForRotation(0, civilDate(2025, time.December, 27))
	if got != schedule.ShiftPagi {
		t.Errorf("ShiftForRotation(0, 2025-12-27) = %s, want P", got)
	}
}

func TestShiftForRotationIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 1, 1, 1, 0, 0, 0, timeutil.ClusterZone)
	night := time.Date(2026, 1, 1, 23, 59, 0, 0, timeutil.ClusterZone)
	if ShiftForRotation(0, morning) != ShiftForRotation(0, night) {
		t.Errorf("rotation result changed within one civil day")
	}
}

func TestShiftForFixedRole(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := civilDate(2026, time.January, 5)
	cases := []struct {
		role    employee.Role
		dayName string
		date    time.Time
		want    schedule.ShiftCode
	}{
		{employee.RoleLingkungan, "Monday", monday, schedule.ShiftLingkungan},
		{employee.RoleLingkungan, "Friday", monday.AddDate(0, 0, 4), schedule.ShiftLingkungan},
		{employee.RoleLingkungan, "Saturday", monday.AddDate(0, 0, 5), schedule.ShiftOff},
		{employee.RoleLingkungan, "Sunday", monday.AddDate(0, 0, 6), schedule.ShiftOff},
		{employee.RoleKebersihan, "Monday", monday, schedule.ShiftKebersihan},
		{employee.RoleKebersihan, "Saturday", monday.AddDate(0, 0, 5), schedule.ShiftKebersihan},
		{employee.RoleKebersihan, "Sunday", monday.AddDate(0, 0, 6), schedule.ShiftOff},
		{employee.Role("unknown"), "Monday", monday, schedule.ShiftOff},
	}
	for _, c := range cases {
		if got := ShiftForFixedRole(c.role, c.date); got != c.want {
			t.Errorf("ShiftForFixedRole(%s, %s) = %s, want %s", c.role, c.dayName, got, c.want)
		}
	}
}

func TestWindowForMorningShift(t *testing.T) {
	w, err := WindowFor(schedule.ShiftPagi, civilDate(2026, time.January, 1))
	if err != nil {
		t.Fatalf("WindowFor(P) returned error: %v", err)
	}
	wantStart := time.Date(2026, 1, 1, 8, 0, 0, 0, timeutil.ClusterZone)
	wantEnd := time.Date(2026, 1, 1, 20, 0, 0, 0, timeutil.ClusterZone)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Errorf("WindowFor(P) = [%v, %v), want [%v, %v)", w.Start, w.End, wantStart, wantEnd)
	}
}

func TestWindowForOvernightShift(t *testing.T) {
	d := civilDate(2026, time.January, 3)
	w, err := WindowFor(schedule.ShiftMalam, d)
	if err != nil {
		t.Fatalf("WindowFor(M) returned error: %v", err)
	}
	if !w.End.After(w.Start) {
		t.Fatalf("WindowFor(M) end %v not after start %v", w.End, w.Start)
	}
	if got := timeutil.CivilDate(w.End); got != "2026-01-04" {
		t.Errorf("WindowFor(M) end falls on %s, want the following civil day 2026-01-04", got)
	}
	if got := w.End.Sub(w.Start); got != 12*time.Hour {
		t.Errorf("WindowFor(M) duration = %v, want 12h", got)
	}
}

func TestWindowForAfternoonShiftStaysSameDay(t *testing.T) {
	// PM is coded 13:00-20:00 same-day even though its label reads PAGI-MALAM.
	d := civilDate(2026, time.January, 2)
	w, err := WindowFor(schedule.ShiftPagiMalam, d)
	if err != nil {
		t.Fatalf("WindowFor(PM) returned error: %v", err)
	}
	if got := timeutil.CivilDate(w.End); got != "2026-01-02" {
		t.Errorf("WindowFor(PM) end falls on %s, want same civil day", got)
	}
}

func TestWindowForOff(t *testing.T) {
	w, err := WindowFor(schedule.ShiftOff, civilDate(2026, time.January, 4))
	if err != nil {
		t.Fatalf("WindowFor(OFF) returned error: %v", err)
	}
	if w != nil {
		t.Errorf("WindowFor(OFF) = %v, want nil (not scheduled)", w)
	}
}

func TestWindowForUnknownCode(t *testing.T) {
	w, err := WindowFor(schedule.ShiftCode("ZZZ"), civilDate(2026, time.January, 4))
	if !errors.Is(err, schedule.ErrUnknownShiftCode) {
		t.Fatalf("WindowFor(ZZZ) error = %v, want ErrUnknownShiftCode", err)
	}
	if w != nil {
		t.Errorf("WindowFor(ZZZ) window = %v, want nil", w)
	}
}

func TestWindowForDerivesFromConcreteDate(t *testing.T) {
	// Same code, different dates, different windows: results must never be
	// cached keyed only by shift code.
	w1, _ := WindowFor(schedule.ShiftPagi, civilDate(2026, time.January, 1))
	w2, _ := WindowFor(schedule.ShiftPagi, civilDate(2026, time.January, 2))
	if w1.Start.Equal(w2.Start) {
		t.Errorf("windows for different dates share a start instant: %v", w1.Start)
	}
}
