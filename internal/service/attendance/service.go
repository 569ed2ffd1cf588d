package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/graha-asri/presensi-backend-go/internal/domain/attendance"
	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/clock"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
	schedulesvc "github.com/graha-asri/presensi-backend-go/internal/service/schedule"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	scheduleService schedule.ScheduleService
	clock           clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		scheduleService:      scheduleService,
		clock:                clk,
	}
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.In(timeutil.ClusterZone).Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.clock.Now().UTC()

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	code, err := a.scheduleService.ResolveShiftCode(ctx, emp, nowUTC)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift code: %w", err)
	}

	window, err := schedulesvc.WindowFor(code, nowUTC)
	if err != nil {
		if errors.Is(err, schedule.ErrUnknownShiftCode) {
			slog.Warn("unknown shift code during clock-in, treating as not scheduled",
				"employee_id", employeeID, "shift_code", string(code))
			return attendance.AttendanceResponse{}, attendance.ErrNotScheduled
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to compute shift window: %w", err)
	}
	if window == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotScheduled
	}

	civilDay := timeutil.StartOfCivilDay(nowUTC)
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, civilDay)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	if !WithinActionWindow(nowUTC, window.Start) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideClockInWindow
	}

	result := ClassifyClockIn(nowUTC, window.Start)
	status := attendance.StatusPresent
	if result.IsLate {
		status = attendance.StatusLate
	}

	data := attendance.Attendance{
		EmployeeID: employeeID,

		// Date is the working civil day, not a timestamp
		Date:      civilDay,
		ShiftCode: string(code),

		// Window snapshot: clock-out and reports read these, so a later
		// override for this date cannot rewrite what was recorded here.
		ScheduledStart: window.Start,
		ScheduledEnd:   window.End,

		ClockIn:     &nowUTC,
		Status:      status,
		LateMinutes: &result.LateMinutes,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.clock.Now().UTC()

	att, err := a.AttendanceRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// Gate against the snapshot taken at clock-in, never a re-resolved window.
	if !WithinActionWindow(nowUTC, att.ScheduledEnd) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideClockOutWindow
	}

	result := ClassifyClockOut(nowUTC, att.ScheduledEnd)

	workMinutes := 0
	if att.ClockIn != nil {
		workMinutes = int(nowUTC.Sub(*att.ClockIn).Minutes())
	}

	att.ClockOut = &nowUTC
	att.EarlyLeaveMinutes = &result.EarlyLeaveMinutes
	att.WorkMinutes = &workMinutes

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.GetMyAttendance(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return buildListResponse(responses, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return buildListResponse(responses, total, filter.Page, filter.Limit), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

func buildListResponse(responses []attendance.AttendanceResponse, total int64, page, limit int) attendance.ListAttendanceResponse {
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	showing := fmt.Sprintf("%d-%d of %d", (page-1)*limit+1, min(page*limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	var workingHours *float64
	if att.WorkMinutes != nil {
		hours := float64(*att.WorkMinutes) / 60.0
		workingHours = &hours
	}

	isLate := att.LateMinutes != nil && *att.LateMinutes > 0
	isEarlyLeave := att.EarlyLeaveMinutes != nil && *att.EarlyLeaveMinutes > 0

	// The score only makes sense for a closed session.
	var score *float64
	if att.ClockOut != nil {
		late, early := 0, 0
		if att.LateMinutes != nil {
			late = *att.LateMinutes
		}
		if att.EarlyLeaveMinutes != nil {
			early = *att.EarlyLeaveMinutes
		}
		s := PerformanceScore(late, early)
		score = &s
	}

	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      employeeName,
		Date:              timeutil.CivilDate(att.Date),
		ShiftCode:         att.ShiftCode,
		ShiftLabel:        schedule.ShiftLabelFor(schedule.ShiftCode(att.ShiftCode)),
		ScheduledStart:    att.ScheduledStart.In(timeutil.ClusterZone).Format(time.RFC3339),
		ScheduledEnd:      att.ScheduledEnd.In(timeutil.ClusterZone).Format(time.RFC3339),
		ClockInTime:       timePtrToString(att.ClockIn),
		ClockOutTime:      timePtrToString(att.ClockOut),
		WorkingHours:      workingHours,
		Status:            att.Status,
		IsLate:            isLate,
		IsEarlyLeave:      isEarlyLeave,
		LateMinutes:       att.LateMinutes,
		EarlyLeaveMinutes: att.EarlyLeaveMinutes,
		PerformanceScore:  score,
	}
}
