package schedule

import "time"

// ShiftCode identifies the work pattern assigned to one employee for one
// civil day.
type ShiftCode string

const (
	ShiftPagi       ShiftCode = "P"   // rotation slot, morning
	ShiftPagiMalam  ShiftCode = "PM"  // rotation slot, afternoon
	ShiftMalam      ShiftCode = "M"   // rotation slot, overnight
	ShiftOff        ShiftCode = "OFF" // rest day, no window
	ShiftLingkungan ShiftCode = "LNK" // fixed weekly, environmental staff
	ShiftKebersihan ShiftCode = "KBR" // fixed weekly, cleaning staff
)

var ShiftCodeValues = []string{
	string(ShiftPagi),
	string(ShiftPagiMalam),
	string(ShiftMalam),
	string(ShiftOff),
	string(ShiftLingkungan),
	string(ShiftKebersihan),
}

// ShiftTime holds the civil clock times of a shift code. Codes whose
// end reads earlier than their start check out on the next civil day.
type ShiftTime struct {
	Label       string
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// IsNextDayCheckout reports whether the shift crosses midnight.
func (s ShiftTime) IsNextDayCheckout() bool {
	endMins := s.EndHour*60 + s.EndMinute
	startMins := s.StartHour*60 + s.StartMinute
	return endMins <= startMins
}

// shiftTimes is the single source of truth for shift clock times. It is
// read-only after init; UI and export consumers read it through ShiftTimeFor
// and ShiftLabelFor. The PM label says PAGI-MALAM but its coded window is
// 13:00-20:00 same-day; the window is what classification runs against.
var shiftTimes = map[ShiftCode]ShiftTime{
	ShiftPagi:       {Label: "PAGI", StartHour: 8, StartMinute: 0, EndHour: 20, EndMinute: 0},
	ShiftPagiMalam:  {Label: "PAGI-MALAM", StartHour: 13, StartMinute: 0, EndHour: 20, EndMinute: 0},
	ShiftMalam:      {Label: "MALAM", StartHour: 20, StartMinute: 0, EndHour: 8, EndMinute: 0},
	ShiftLingkungan: {Label: "LINGKUNGAN", StartHour: 8, StartMinute: 0, EndHour: 16, EndMinute: 0},
	ShiftKebersihan: {Label: "KEBERSIHAN", StartHour: 6, StartMinute: 0, EndHour: 14, EndMinute: 0},
}

// ShiftTimeFor returns the clock-time definition of a shift code. The second
// return is false for OFF and for codes outside the fixed table.
func ShiftTimeFor(code ShiftCode) (ShiftTime, bool) {
	st, ok := shiftTimes[code]
	return st, ok
}

// ShiftLabelFor returns the display label of a shift code.
func ShiftLabelFor(code ShiftCode) string {
	if code == ShiftOff {
		return "LIBUR"
	}
	if st, ok := shiftTimes[code]; ok {
		return st.Label
	}
	return string(code)
}

// RotationSequence is the 5-slot security rotation, indexed by
// ((civil days since RotationEpoch + offset) mod 5), Euclidean.
var RotationSequence = [5]ShiftCode{ShiftPagi, ShiftPagiMalam, ShiftMalam, ShiftOff, ShiftOff}

// RotationEpochYear/Month/Day pin day zero of the rotation, in civil (WIB)
// terms. All deployments reading shared historical data must agree on this
// value; changing it retroactively reassigns every past shift code and
// requires a data migration.
const (
	RotationEpochYear  = 2026
	RotationEpochMonth = time.January
	RotationEpochDay   = 1
)

// ShiftWindow is a computed absolute [Start, End) working window for one
// shift code on one civil date. It is derived on demand and never persisted
// by the scheduling core.
type ShiftWindow struct {
	Start time.Time
	End   time.Time
}

// ScheduleOverride is an admin-written entry that supersedes the computed
// rotation or static schedule for one employee on one civil date.
type ScheduleOverride struct {
	ID         string
	EmployeeID string
	Date       time.Time // civil date, stored as DATE
	ShiftCode  ShiftCode
	Reason     *string
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
