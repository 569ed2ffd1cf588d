package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyCheckedIn      = errors.New("you have already checked in for this shift")
	ErrNotScheduled          = errors.New("no shift scheduled for this date")
	ErrOutsideClockInWindow  = errors.New("clock-in is only allowed within 2 hours of the scheduled start")
	ErrNotCheckedIn          = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out")
	ErrOutsideClockOutWindow = errors.New("clock-out is only allowed within 2 hours of the scheduled end")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
