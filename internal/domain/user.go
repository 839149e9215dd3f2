package domain

import "time"

// UserRole enumerates account roles. Admins are assigned at registration
// time via the email allow-list and never change afterwards.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// User is the domain model for registered campus users.
type User struct {
	ID           string
	Name         string
	UCID         string
	Email        string
	PasswordHash string
	Role         UserRole
	Phone        string
	Department   string
	Year         string
	Semester     string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
