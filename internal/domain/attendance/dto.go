package attendance

import (
	"github.com/graha-asri/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Note *string `json:"note,omitempty"`
}

type ClockOutRequest struct {
	Note *string `json:"note,omitempty"`
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	Date              string   `json:"date"`
	ShiftCode         string   `json:"shift_code"`
	ShiftLabel        string   `json:"shift_label"`
	ScheduledStart    string   `json:"scheduled_start"`
	ScheduledEnd      string   `json:"scheduled_end"`
	ClockInTime       *string  `json:"clock_in_time,omitempty"`
	ClockOutTime      *string  `json:"clock_out_time,omitempty"`
	WorkingHours      *float64 `json:"working_hours,omitempty"`
	Status            string   `json:"status"`
	IsLate            bool     `json:"is_late"`
	IsEarlyLeave      bool     `json:"is_early_leave"`
	LateMinutes       *int     `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int     `json:"early_leave_minutes,omitempty"`
	PerformanceScore  *float64 `json:"performance_score,omitempty"`
}

type MyAttendanceFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
