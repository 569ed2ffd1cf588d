package employee

import (
	"github.com/graha-asri/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name"`
	NIK            string  `json:"nik"`
	PhoneNumber    string  `json:"phone_number"`
	Address        *string `json:"address,omitempty"`
	Role           string  `json:"role"`
	RotationOffset *int    `json:"rotation_offset,omitempty"`
	HireDate       string  `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidNIK(r.NIK) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: "nik must be a 16-digit number",
		})
	}

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is not a valid Indonesian phone number",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of security, lingkungan, kebersihan",
		})
	}

	if r.RotationOffset != nil && r.Role != string(RoleSecurity) {
		errs = append(errs, validator.ValidationError{
			Field:   "rotation_offset",
			Message: "rotation_offset only applies to the security role",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FullName       *string `json:"full_name,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	Role           *string `json:"role,omitempty"`
	RotationOffset *int    `json:"rotation_offset,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of security, lingkungan, kebersihan",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, resigned, terminated",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is not a valid Indonesian phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Role   *string
	Status *string
	Name   *string
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	NIK            string  `json:"nik"`
	PhoneNumber    string  `json:"phone_number"`
	Address        *string `json:"address,omitempty"`
	Role           string  `json:"role"`
	RotationOffset *int    `json:"rotation_offset,omitempty"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
