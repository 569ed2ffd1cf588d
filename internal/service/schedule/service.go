package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleOverrideRepository
	employee.EmployeeRepository
}

func NewScheduleService(
	overrideRepo schedule.ScheduleOverrideRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleOverrideRepository: overrideRepo,
		EmployeeRepository:         employeeRepo,
	}
}

// ResolveShiftCode implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ResolveShiftCode(ctx context.Context, emp employee.Employee, targetDate time.Time) (schedule.ShiftCode, error) {
	code, _, err := s.resolveWithSource(ctx, emp, targetDate)
	return code, err
}

// resolveWithSource resolves the shift code for one employee and date and
// reports whether it came from a persisted override.
func (s *ScheduleServiceImpl) resolveWithSource(ctx context.Context, emp employee.Employee, targetDate time.Time) (schedule.ShiftCode, bool, error) {
	civilDate := timeutil.StartOfCivilDay(targetDate)

	override, err := s.ScheduleOverrideRepository.GetByEmployeeAndDate(ctx, emp.ID, civilDate)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return schedule.ShiftOff, false, fmt.Errorf("failed to look up schedule override: %w", err)
	}
	if override != nil {
		return override.ShiftCode, true, nil
	}

	if emp.Role.IsRotating() {
		offset := 0
		if emp.RotationOffset != nil {
			offset = *emp.RotationOffset
		}
		return ShiftForRotation(offset, targetDate), false, nil
	}

	return ShiftForFixedRole(emp.Role, targetDate), false, nil
}

// GetDaySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetDaySchedule(ctx context.Context, employeeID string, targetDate time.Time) (schedule.DayScheduleResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return schedule.DayScheduleResponse{}, err
	}

	code, isOverride, err := s.resolveWithSource(ctx, emp, targetDate)
	if err != nil {
		return schedule.DayScheduleResponse{}, err
	}

	return s.buildDaySchedule(emp.ID, code, isOverride, targetDate), nil
}

func (s *ScheduleServiceImpl) buildDaySchedule(employeeID string, code schedule.ShiftCode, isOverride bool, targetDate time.Time) schedule.DayScheduleResponse {
	resp := schedule.DayScheduleResponse{
		EmployeeID: employeeID,
		Date:       timeutil.CivilDate(targetDate),
		ShiftCode:  string(code),
		ShiftLabel: schedule.ShiftLabelFor(code),
		IsOverride: isOverride,
	}

	window, err := WindowFor(code, targetDate)
	if err != nil {
		// A bad code can only come from persisted override data; surface the
		// day as OFF and leave a trace for operators.
		slog.Warn("unknown shift code in schedule data, treating as OFF",
			"employee_id", employeeID, "shift_code", string(code), "date", resp.Date)
		resp.ShiftCode = string(schedule.ShiftOff)
		resp.ShiftLabel = schedule.ShiftLabelFor(schedule.ShiftOff)
		return resp
	}
	if window != nil {
		start := window.Start.Format(time.RFC3339)
		end := window.End.Format(time.RFC3339)
		resp.StartTime = &start
		resp.EndTime = &end
	}

	return resp
}

// GetMonthlySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetMonthlySchedule(ctx context.Context, employeeID string, year int, month time.Month) (schedule.MonthlyScheduleResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return schedule.MonthlyScheduleResponse{}, err
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, timeutil.ClusterZone)
	lastDay := firstDay.AddDate(0, 1, -1)

	// One range query instead of a lookup per day.
	overrides, err := s.ScheduleOverrideRepository.ListByEmployeeRange(ctx, employeeID, firstDay, lastDay)
	if err != nil {
		return schedule.MonthlyScheduleResponse{}, fmt.Errorf("failed to list schedule overrides: %w", err)
	}
	overrideByDate := make(map[string]schedule.ScheduleOverride, len(overrides))
	for _, o := range overrides {
		overrideByDate[timeutil.CivilDate(o.Date)] = o
	}

	days := make([]schedule.DayScheduleResponse, 0, lastDay.Day())
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		var code schedule.ShiftCode
		isOverride := false
		if o, ok := overrideByDate[timeutil.CivilDate(d)]; ok {
			code = o.ShiftCode
			isOverride = true
		} else if emp.Role.IsRotating() {
			offset := 0
			if emp.RotationOffset != nil {
				offset = *emp.RotationOffset
			}
			code = ShiftForRotation(offset, d)
		} else {
			code = ShiftForFixedRole(emp.Role, d)
		}
		days = append(days, s.buildDaySchedule(emp.ID, code, isOverride, d))
	}

	return schedule.MonthlyScheduleResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      int(month),
		Days:       days,
	}, nil
}

// SetOverride implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SetOverride(ctx context.Context, req schedule.SetOverrideRequest) (schedule.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.OverrideResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.OverrideResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timeutil.ClusterZone)
	if err != nil {
		return schedule.OverrideResponse{}, schedule.ErrInvalidDateFormat
	}

	override := schedule.ScheduleOverride{
		EmployeeID: emp.ID,
		Date:       date,
		ShiftCode:  schedule.ShiftCode(req.ShiftCode),
		Reason:     req.Reason,
	}

	saved, err := s.ScheduleOverrideRepository.Upsert(ctx, override)
	if err != nil {
		return schedule.OverrideResponse{}, fmt.Errorf("failed to save schedule override: %w", err)
	}

	return mapOverrideToResponse(saved), nil
}

// DeleteOverride implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteOverride(ctx context.Context, employeeID string, dateStr string) error {
	date, err := time.ParseInLocation("2006-01-02", dateStr, timeutil.ClusterZone)
	if err != nil {
		return schedule.ErrInvalidDateFormat
	}

	if err := s.ScheduleOverrideRepository.Delete(ctx, employeeID, date); err != nil {
		if errors.Is(err, schedule.ErrOverrideNotFound) {
			return schedule.ErrOverrideNotFound
		}
		return fmt.Errorf("failed to delete schedule override: %w", err)
	}

	return nil
}

// ListOverrides implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListOverrides(ctx context.Context, employeeID string, startDateStr, endDateStr string) ([]schedule.OverrideResponse, error) {
	startDate, err := time.ParseInLocation("2006-01-02", startDateStr, timeutil.ClusterZone)
	if err != nil {
		return nil, schedule.ErrInvalidDateFormat
	}
	endDate, err := time.ParseInLocation("2006-01-02", endDateStr, timeutil.ClusterZone)
	if err != nil {
		return nil, schedule.ErrInvalidDateFormat
	}

	overrides, err := s.ScheduleOverrideRepository.ListByEmployeeRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule overrides: %w", err)
	}

	responses := make([]schedule.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, mapOverrideToResponse(o))
	}

	return responses, nil
}

func mapOverrideToResponse(o schedule.ScheduleOverride) schedule.OverrideResponse {
	return schedule.OverrideResponse{
		ID:         o.ID,
		EmployeeID: o.EmployeeID,
		Date:       timeutil.CivilDate(o.Date),
		ShiftCode:  string(o.ShiftCode),
		ShiftLabel: schedule.ShiftLabelFor(o.ShiftCode),
		Reason:     o.Reason,
		CreatedBy:  o.CreatedBy,
	}
}
