package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// AuthSvcFacade is the login gate.
type AuthSvcFacade interface {
	// Login checks the request and records the attempt in the access log.
	// A rejected admin login returns apperrors.ErrInvalidCredentials and no session.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// RestoreSession resolves a token to its session, re-evaluating the admin role.
	RestoreSession(ctx context.Context, token string) (*domain.Session, error)

	// Logout drops the session behind token.
	Logout(ctx context.Context, token string) error
}
