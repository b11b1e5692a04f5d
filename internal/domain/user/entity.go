package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role

	// EmployeeID links the login account to its directory record. Admin
	// accounts without a directory entry leave it nil.
	EmployeeID *string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
