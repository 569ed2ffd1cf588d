package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // civil working date, not a timestamp
	ShiftCode  string

	// Window snapshot taken at clock-in. Clock-out classification reads
	// these, never a re-resolved schedule, so a later override for the same
	// date cannot rewrite an already-recorded result.
	ScheduledStart time.Time
	ScheduledEnd   time.Time

	ClockIn           *time.Time
	ClockOut          *time.Time
	WorkMinutes       *int
	LateMinutes       *int
	EarlyLeaveMinutes *int
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}

const (
	StatusPresent = "present"
	StatusLate    = "late"
)
