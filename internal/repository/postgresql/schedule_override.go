package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/database"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type scheduleOverrideRepositoryImpl struct {
	db *database.DB
}

func NewScheduleOverrideRepository(db *database.DB) schedule.ScheduleOverrideRepository {
	return &scheduleOverrideRepositoryImpl{db: db}
}

// Upsert implements schedule.ScheduleOverrideRepository. One override per
// employee per date: a second write for the same day replaces the first.
func (r *scheduleOverrideRepositoryImpl) Upsert(ctx context.Context, o schedule.ScheduleOverride) (schedule.ScheduleOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_overrides (id, employee_id, date, shift_code, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET shift_code = EXCLUDED.shift_code,
					  reason = EXCLUDED.reason,
					  created_by = EXCLUDED.created_by,
					  updated_at = NOW()
		RETURNING id, employee_id, date, shift_code, reason, created_by, created_at, updated_at
	`

	var saved schedule.ScheduleOverride
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		o.EmployeeID,
		timeutil.CivilDate(o.Date),
		o.ShiftCode,
		o.Reason,
		o.CreatedBy,
	).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.Date,
		&saved.ShiftCode,
		&saved.Reason,
		&saved.CreatedBy,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return schedule.ScheduleOverride{}, fmt.Errorf("failed to upsert schedule override: %w", err)
	}

	return saved, nil
}

// GetByEmployeeAndDate implements schedule.ScheduleOverrideRepository.
func (r *scheduleOverrideRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.ScheduleOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shift_code, reason, created_by, created_at, updated_at
		FROM schedule_overrides
		WHERE employee_id = $1
		  AND date = $2
	`

	var found schedule.ScheduleOverride
	err := q.QueryRow(ctx, query, employeeID, timeutil.CivilDate(date)).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Date,
		&found.ShiftCode,
		&found.Reason,
		&found.CreatedBy,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule override: %w", err)
	}

	return &found, nil
}

// ListByEmployeeRange implements schedule.ScheduleOverrideRepository.
func (r *scheduleOverrideRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.ScheduleOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, shift_code, reason, created_by, created_at, updated_at
		FROM schedule_overrides
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, timeutil.CivilDate(startDate), timeutil.CivilDate(endDate))
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule overrides: %w", err)
	}
	defer rows.Close()

	var overrides []schedule.ScheduleOverride
	for rows.Next() {
		var o schedule.ScheduleOverride
		err := rows.Scan(
			&o.ID,
			&o.EmployeeID,
			&o.Date,
			&o.ShiftCode,
			&o.Reason,
			&o.CreatedBy,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule override: %w", err)
		}
		overrides = append(overrides, o)
	}

	return overrides, nil
}

// Delete implements schedule.ScheduleOverrideRepository.
func (r *scheduleOverrideRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM schedule_overrides
		WHERE employee_id = $1
		  AND date = $2
	`

	tag, err := q.Exec(ctx, query, employeeID, timeutil.CivilDate(date))
	if err != nil {
		return fmt.Errorf("failed to delete schedule override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrOverrideNotFound
	}

	return nil
}
