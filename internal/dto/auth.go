package dto

import (
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// LoginRequest is submitted by the login gate. Guests only need a name;
// admins need an allow-listed email and the shared password.
type LoginRequest struct {
	Mode     domain.Role `json:"mode" binding:"required,oneof=ADMIN GUEST"`
	Name     string      `json:"name" binding:"max=100"`
	Email    string      `json:"email" binding:"max=254"`
	Password string      `json:"password" binding:"max=128"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	User      domain.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// ToSessionResponse converts a domain.Session.
func ToSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{User: s.User, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt}
}
