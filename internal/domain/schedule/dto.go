package schedule

import (
	"github.com/graha-asri/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type SetOverrideRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD, civil date
	ShiftCode  string  `json:"shift_code"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *SetOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.ShiftCode, ShiftCodeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_code",
			Message: "shift_code must be one of P, PM, M, OFF, LNK, KBR",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OverrideResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ShiftCode  string  `json:"shift_code"`
	ShiftLabel string  `json:"shift_label"`
	Reason     *string `json:"reason,omitempty"`
	CreatedBy  *string `json:"created_by,omitempty"`
}

type DayScheduleResponse struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ShiftCode  string  `json:"shift_code"`
	ShiftLabel string  `json:"shift_label"`
	StartTime  *string `json:"start_time,omitempty"` // absolute, RFC3339; nil when OFF
	EndTime    *string `json:"end_time,omitempty"`
	IsOverride bool    `json:"is_override"`
}

type MonthlyScheduleResponse struct {
	EmployeeID string                `json:"employee_id"`
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	Days       []DayScheduleResponse `json:"days"`
}

// ShiftCodeInfo describes one entry of the shift table for UI and export
// consumers.
type ShiftCodeInfo struct {
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	StartTime *string `json:"start_time,omitempty"` // civil clock time HH:MM; nil when OFF
	EndTime   *string `json:"end_time,omitempty"`
	Overnight bool    `json:"overnight"`
}
