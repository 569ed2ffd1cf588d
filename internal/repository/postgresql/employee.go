package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, full_name, nik, phone_number, address,
			role, rotation_offset, hire_date, employment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, full_name, nik, phone_number, address,
				  role, rotation_offset, hire_date, employment_status,
				  created_at, updated_at, deleted_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.UserID,
		emp.FullName,
		emp.NIK,
		emp.PhoneNumber,
		emp.Address,
		emp.Role,
		emp.RotationOffset,
		emp.HireDate,
		emp.EmploymentStatus,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.FullName,
		&created.NIK,
		&created.PhoneNumber,
		&created.Address,
		&created.Role,
		&created.RotationOffset,
		&created.HireDate,
		&created.EmploymentStatus,
		&created.CreatedAt,
		&created.UpdatedAt,
		&created.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrNIKExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, nik, phone_number, address,
			   role, rotation_offset, hire_date, employment_status,
			   created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1
		  AND deleted_at IS NULL
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.FullName,
		&found.NIK,
		&found.PhoneNumber,
		&found.Address,
		&found.Role,
		&found.RotationOffset,
		&found.HireDate,
		&found.EmploymentStatus,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, nik, phone_number, address,
			   role, rotation_offset, hire_date, employment_status,
			   created_at, updated_at, deleted_at
		FROM employees
		WHERE user_id = $1
		  AND deleted_at IS NULL
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID,
		&found.UserID,
		&found.FullName,
		&found.NIK,
		&found.PhoneNumber,
		&found.Address,
		&found.Role,
		&found.RotationOffset,
		&found.HireDate,
		&found.EmploymentStatus,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Role != nil && *filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND employment_status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, user_id, full_name, nik, phone_number, address,
			   role, rotation_offset, hire_date, employment_status,
			   created_at, updated_at, deleted_at
		FROM employees
		WHERE %s
		ORDER BY full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.UserID,
			&emp.FullName,
			&emp.NIK,
			&emp.PhoneNumber,
			&emp.Address,
			&emp.Role,
			&emp.RotationOffset,
			&emp.HireDate,
			&emp.EmploymentStatus,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.DeletedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, phone_number = $2, address = $3, role = $4,
			rotation_offset = $5, employment_status = $6, updated_at = NOW()
		WHERE id = $7
		  AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		emp.FullName,
		emp.PhoneNumber,
		emp.Address,
		emp.Role,
		emp.RotationOffset,
		emp.EmploymentStatus,
		emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1
		  AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
