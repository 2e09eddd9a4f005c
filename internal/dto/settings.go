package dto

import (
	"strings"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// AddAdminEmailRequest adds an email to the admin allow-list.
type AddAdminEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest replaces the shared system password.
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// ListAccessHistoryParams defines query parameters for the access log.
type ListAccessHistoryParams struct {
	Limit int `form:"limit,default=100" binding:"min=1,max=100"`
}

// SettingsResponse is the admin settings view. The password is never echoed back.
type SettingsResponse struct {
	AdminEmails    []string `json:"adminEmails"`
	PasswordMasked string   `json:"passwordMasked"`
}

// AccessHistoryResponse wraps the access log, newest first.
type AccessHistoryResponse struct {
	Records []domain.AccessRecord `json:"records"`
}

// ToSettingsResponse builds the settings view.
func ToSettingsResponse(adminEmails []string, password string) SettingsResponse {
	emails := adminEmails
	if emails == nil {
		emails = []string{}
	}
	return SettingsResponse{AdminEmails: emails, PasswordMasked: strings.Repeat("*", len(password))}
}
