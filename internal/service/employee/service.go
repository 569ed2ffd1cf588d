package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.ParseInLocation("2006-01-02", req.HireDate, timeutil.ClusterZone)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	newEmployee := employee.Employee{
		FullName:         req.FullName,
		NIK:              req.NIK,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		Role:             employee.Role(req.Role),
		RotationOffset:   req.RotationOffset,
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	created, err := e.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrNIKExists) {
			return employee.EmployeeResponse{}, employee.ErrNIKExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
		if !emp.Role.IsRotating() {
			emp.RotationOffset = nil
		}
	}
	if req.RotationOffset != nil {
		if !emp.Role.IsRotating() {
			return employee.EmployeeResponse{}, employee.ErrInvalidRole
		}
		emp.RotationOffset = req.RotationOffset
	}
	if req.Status != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.Status)
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := e.EmployeeRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := e.EmployeeRepository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		NIK:            emp.NIK,
		PhoneNumber:    emp.PhoneNumber,
		Address:        emp.Address,
		Role:           string(emp.Role),
		RotationOffset: emp.RotationOffset,
		HireDate:       timeutil.CivilDate(emp.HireDate),
		Status:         string(emp.EmploymentStatus),
	}
}
