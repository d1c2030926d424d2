package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims is the signed payload carried in access tokens.
type JWTClaims struct {
	UserID    string   `json:"uid"`
	Role      UserRole `json:"role"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	StudentID string   `json:"student_id,omitempty"`
	FacultyID int      `json:"faculty_id,omitempty"`
	jwt.RegisteredClaims
}
