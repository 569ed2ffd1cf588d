package schedule

import "errors"

var (
	// Shift code errors
	ErrUnknownShiftCode = errors.New("unknown shift code")
	ErrInvalidShiftCode = errors.New("shift code must be one of P, PM, M, OFF, LNK, KBR")

	// Override errors
	ErrOverrideNotFound = errors.New("schedule override not found")

	// Validation errors
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)
