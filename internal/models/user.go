package models

import "time"

// UserRole represents the portal's access roles.
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleFaculty UserRole = "Faculty"
	RoleStudent UserRole = "Student"
)

// UserStatus marks whether an account can sign in.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// User represents a portal account. Faculty accounts are linked to their
// faculty record by FacultyID and student accounts to their roll number by
// StudentID.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	LastLogin    time.Time  `json:"last_login"`
	StudentID    string     `json:"student_id,omitempty"`
	FacultyID    int        `json:"faculty_id,omitempty"`
}
