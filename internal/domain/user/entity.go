package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Cluster management - full access
	RoleEmployee Role = "employee" // Field staff
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if the user manages the cluster
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
