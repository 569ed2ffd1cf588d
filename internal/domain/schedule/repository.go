package schedule

import (
	"context"
	"time"
)

// ScheduleOverrideRepository persists admin-written per-employee-per-date
// shift overrides. At most one row exists per (employee, civil date); Upsert
// replaces an existing entry for the same key.
type ScheduleOverrideRepository interface {
	Upsert(ctx context.Context, override ScheduleOverride) (ScheduleOverride, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ScheduleOverride, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]ScheduleOverride, error)
	Delete(ctx context.Context, employeeID string, date time.Time) error
}
