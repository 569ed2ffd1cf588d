package response

import (
	"errors"
	"net/http"

	"github.com/graha-asri/presensi-backend-go/internal/domain/attendance"
	"github.com/graha-asri/presensi-backend-go/internal/domain/auth"
	"github.com/graha-asri/presensi-backend-go/internal/domain/employee"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/domain/user"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNIKExists):
		Conflict(w, "NIK already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrInvalidShiftCode), errors.Is(err, schedule.ErrUnknownShiftCode):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat), errors.Is(err, schedule.ErrEmployeeIDRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrOverrideNotFound):
		NotFound(w, "Schedule override not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotScheduled):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideClockInWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideClockOutWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
