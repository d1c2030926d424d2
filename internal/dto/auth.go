package dto

import "github.com/noah-isme/uni-portal-api/internal/models"

// LoginResponse carries the issued token and the authenticated user,
// augmented with student/faculty linkage for role-based routing.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
