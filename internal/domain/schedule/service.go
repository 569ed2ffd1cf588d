package schedule

import (
	"context"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
)

// ScheduleService defines business logic for shift resolution and rosters
type ScheduleService interface {
	// ResolveShiftCode returns the shift code for an employee on a civil
	// date: a persisted override when present, the computed rotation or
	// fixed-weekly result otherwise.
	ResolveShiftCode(ctx context.Context, emp employee.Employee, targetDate time.Time) (ShiftCode, error)

	// GetDaySchedule resolves one employee's shift and working window for one date
	GetDaySchedule(ctx context.Context, employeeID string, targetDate time.Time) (DayScheduleResponse, error)

	// GetMonthlySchedule resolves one employee's roster for a whole month
	GetMonthlySchedule(ctx context.Context, employeeID string, year int, month time.Month) (MonthlyScheduleResponse, error)

	// SetOverride creates or replaces the override for (employee, date) - admin action
	SetOverride(ctx context.Context, req SetOverrideRequest) (OverrideResponse, error)

	// DeleteOverride removes the override for (employee, date) - admin action
	DeleteOverride(ctx context.Context, employeeID string, date string) error

	// ListOverrides lists persisted overrides for an employee within a date range
	ListOverrides(ctx context.Context, employeeID string, startDate, endDate string) ([]OverrideResponse, error)
}
