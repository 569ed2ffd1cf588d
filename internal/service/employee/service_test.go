package employee

import (
	"context"
	"strconv"
	"testing"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.NIK == emp.NIK {
			return employee.Employee{}, employee.ErrNIKExists
		}
	}
	f.seq++
	emp.ID = "emp-" + strconv.Itoa(f.seq)
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
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	offset := 2
	return employee.CreateEmployeeRequest{
		FullName:       "Budi Santoso",
		NIK:            "3201234567890001",
		PhoneNumber:    "081234567890",
		Role:           "security",
		RotationOffset: &offset,
		HireDate:       "2025-06-01",
	}
}

func TestCreateEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	res, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "security", res.Role)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, "2025-06-01", res.HireDate)
	require.NotNil(t, res.RotationOffset)
	assert.Equal(t, 2, *res.RotationOffset)
}

func TestCreateEmployeeRejectsBadNIK(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.NIK = "12345"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateEmployeeRejectsOffsetForFixedRole(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.Role = "kebersihan"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateEmployeeDuplicateNIK(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrNIKExists)
}

func TestUpdateEmployeeOffsetOnFixedRole(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	req := validCreateRequest()
	req.Role = "lingkungan"
	req.RotationOffset = nil
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	offset := 1
	_, err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:             created.ID,
		RotationOffset: &offset,
	})
	assert.ErrorIs(t, err, employee.ErrInvalidRole)
}

func TestUpdateEmployeeRoleChangeDropsOffset(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	role := "kebersihan"
	res, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:   created.ID,
		Role: &role,
	})
	require.NoError(t, err)

	assert.Equal(t, "kebersihan", res.Role)
	assert.Nil(t, res.RotationOffset, "rotation offset is meaningless off the rotation")
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
