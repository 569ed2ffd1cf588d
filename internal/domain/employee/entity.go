package employee

import "time"

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	NIK              string
	PhoneNumber      string
	Address          *string
	Role             Role
	RotationOffset   *int // rotation slot shift, security role only; nil means 0
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Role string

const (
	RoleSecurity   Role = "security"   // 5-day rotation P/PM/M/OFF/OFF
	RoleLingkungan Role = "lingkungan" // fixed weekly, LNK Mon-Fri
	RoleKebersihan Role = "kebersihan" // fixed weekly, KBR Mon-Sat
)

var RoleValues = []string{
	string(RoleSecurity),
	string(RoleLingkungan),
	string(RoleKebersihan),
}

// IsRotating reports whether the role follows the security rotation rather
// than a fixed weekly pattern.
func (r Role) IsRotating() bool {
	return r == RoleSecurity
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}
