package schedule

import (
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
)

// rotationEpoch returns day zero of the security rotation as an absolute
// instant at the start of the epoch civil day.
func rotationEpoch() time.Time {
	return time.Date(schedule.RotationEpochYear, schedule.RotationEpochMonth, schedule.RotationEpochDay,
		0, 0, 0, 0, timeutil.ClusterZone)
}

// ShiftForRotation computes the rotation slot for a security employee on the
// civil day containing targetDate. offset shifts the employee's position
// within the 5-slot sequence; employees with a nil stored offset pass 0.
// Pure function of its arguments.
func ShiftForRotation(offset int, targetDate time.Time) schedule.ShiftCode {
	diffDays := timeutil.CivilDaysBetween(rotationEpoch(), targetDate)
	// Go's % keeps the dividend's sign, so dates before the epoch and
	// negative offsets need the double mod to land in [0,5).
	index := ((diffDays+offset)%5 + 5) % 5
	return schedule.RotationSequence[index]
}

// ShiftForFixedRole computes the weekly-pattern shift for non-rotating roles:
// lingkungan works LNK Monday-Friday, kebersihan works KBR Monday-Saturday.
// Roles outside the table resolve to OFF.
func ShiftForFixedRole(role employee.Role, targetDate time.Time) schedule.ShiftCode {
	weekday := timeutil.CivilWeekday(targetDate)
	switch role {
	case employee.RoleLingkungan:
		if weekday == time.Saturday || weekday == time.Sunday {
			return schedule.ShiftOff
		}
		return schedule.ShiftLingkungan
	case employee.RoleKebersihan:
		if weekday == time.Sunday {
			return schedule.ShiftOff
		}
		return schedule.ShiftKebersihan
	default:
		return schedule.ShiftOff
	}
}

// WindowFor maps a shift code and a target date to the absolute [start, end)
// working window on the civil day containing targetDate. OFF yields
// (nil, nil): not scheduled, not an error. Codes outside the fixed table
// yield ErrUnknownShiftCode; callers should log and treat the day as OFF.
// Overnight codes check out on the following civil day.
func WindowFor(code schedule.ShiftCode, targetDate time.Time) (*schedule.ShiftWindow, error) {
	if code == schedule.ShiftOff {
		return nil, nil
	}

	st, ok := schedule.ShiftTimeFor(code)
	if !ok {
		return nil, schedule.ErrUnknownShiftCode
	}

	local := timeutil.ToLocalCivil(targetDate)
	start := time.Date(local.Year(), local.Month(), local.Day(),
		st.StartHour, st.StartMinute, 0, 0, timeutil.ClusterZone)
	end := time.Date(local.Year(), local.Month(), local.Day(),
		st.EndHour, st.EndMinute, 0, 0, timeutil.ClusterZone)
	if st.IsNextDayCheckout() {
		end = end.AddDate(0, 0, 1)
	}

	return &schedule.ShiftWindow{Start: start.UTC(), End: end.UTC()}, nil
}
