package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories, keyed the same way the SQL ones are.

type fakeOverrideRepo struct {
	entries map[string]schedule.ScheduleOverride // employeeID|date
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{entries: make(map[string]schedule.ScheduleOverride)}
}

func overrideKey(employeeID string, date time.Time) string {
	return employeeID + "|" + timeutil.CivilDate(date)
}

func (f *fakeOverrideRepo) Upsert(_ context.Context, o schedule.ScheduleOverride) (schedule.ScheduleOverride, error) {
	if o.ID == "" {
		o.ID = "ov-" + timeutil.CivilDate(o.Date)
	}
	f.entries[overrideKey(o.EmployeeID, o.Date)] = o
	return o, nil
}

func (f *fakeOverrideRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*schedule.ScheduleOverride, error) {
	if o, ok := f.entries[overrideKey(employeeID, date)]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f *fakeOverrideRepo) ListByEmployeeRange(_ context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.ScheduleOverride, error) {
	var out []schedule.ScheduleOverride
	for _, o := range f.entries {
		if o.EmployeeID == employeeID && !o.Date.Before(startDate) && !o.Date.After(endDate) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, employeeID string, date time.Time) error {
	key := overrideKey(employeeID, date)
	if _, ok := f.entries[key]; !ok {
		return schedule.ErrOverrideNotFound
	}
	delete(f.entries, key)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func newTestService() (schedule.ScheduleService, *fakeOverrideRepo, *fakeEmployeeRepo) {
	overrideRepo := newFakeOverrideRepo()
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	return NewScheduleService(overrideRepo, employeeRepo), overrideRepo, employeeRepo
}

func securityEmployee(id string, offset int) employee.Employee {
	return employee.Employee{
		ID:               id,
		FullName:         "Budi Santoso",
		Role:             employee.RoleSecurity,
		RotationOffset:   &offset,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

func TestResolveShiftCodeComputedRotation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	code, err := svc.ResolveShiftCode(ctx, emp, civilDate(2026, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftPagi, code)
}

func TestResolveShiftCodeNilOffsetTreatedAsZero(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	emp.RotationOffset = nil
	code, err := svc.ResolveShiftCode(ctx, emp, civilDate(2026, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftPagi, code)
}

func TestResolveShiftCodeOverridePrecedence(t *testing.T) {
	svc, overrideRepo, _ := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	d := civilDate(2026, time.January, 1) // computed code is P

	_, err := overrideRepo.Upsert(ctx, schedule.ScheduleOverride{
		EmployeeID: emp.ID,
		Date:       d,
		ShiftCode:  schedule.ShiftMalam,
	})
	require.NoError(t, err)

	code, err := svc.ResolveShiftCode(ctx, emp, d)
	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftMalam, code, "persisted override must win over the computed rotation")

	// The neighbouring date is untouched by the override.
	code, err = svc.ResolveShiftCode(ctx, emp, d.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftPagiMalam, code)
}

func TestResolveShiftCodeFixedRole(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	emp := employee.Employee{ID: "emp-2", Role: employee.RoleLingkungan}
	monday := civilDate(2026, time.January, 5)

	code, err := svc.ResolveShiftCode(ctx, emp, monday)
	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftLingkungan, code)

	code, err = svc.ResolveShiftCode(ctx, emp, monday.AddDate(0, 0, 6)) // Sunday
	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftOff, code)
}

func TestSetOverrideThenDaySchedule(t *testing.T) {
	svc, _, employeeRepo := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	employeeRepo.employees[emp.ID] = emp

	_, err := svc.SetOverride(ctx, schedule.SetOverrideRequest{
		EmployeeID: emp.ID,
		Date:       "2026-01-01",
		ShiftCode:  "M",
	})
	require.NoError(t, err)

	day, err := svc.GetDaySchedule(ctx, emp.ID, civilDate(2026, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "M", day.ShiftCode)
	assert.True(t, day.IsOverride)
	require.NotNil(t, day.StartTime)
	require.NotNil(t, day.EndTime)
}

func TestSetOverrideRejectsBadShiftCode(t *testing.T) {
	svc, _, employeeRepo := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	employeeRepo.employees[emp.ID] = emp

	_, err := svc.SetOverride(ctx, schedule.SetOverrideRequest{
		EmployeeID: emp.ID,
		Date:       "2026-01-01",
		ShiftCode:  "NIGHTLY",
	})
	assert.Error(t, err)
}

func TestGetMonthlyScheduleMarksOverrides(t *testing.T) {
	svc, overrideRepo, employeeRepo := newTestService()
	ctx := context.Background()

	emp := securityEmployee("emp-1", 0)
	employeeRepo.employees[emp.ID] = emp

	_, err := overrideRepo.Upsert(ctx, schedule.ScheduleOverride{
		EmployeeID: emp.ID,
		Date:       civilDate(2026, time.January, 15),
		ShiftCode:  schedule.ShiftOff,
	})
	require.NoError(t, err)

	month, err := svc.GetMonthlySchedule(ctx, emp.ID, 2026, time.January)
	require.NoError(t, err)
	require.Len(t, month.Days, 31)

	overridden := 0
	for _, day := range month.Days {
		if day.IsOverride {
			overridden++
			assert.Equal(t, "2026-01-15", day.Date)
			assert.Equal(t, "OFF", day.ShiftCode)
		}
	}
	assert.Equal(t, 1, overridden)

	// Rotation fills the rest: the 1st is P, the 6th is P again.
	assert.Equal(t, "P", month.Days[0].ShiftCode)
	assert.Equal(t, "P", month.Days[5].ShiftCode)
}
