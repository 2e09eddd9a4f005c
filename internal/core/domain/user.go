package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Role is the access level of a session or access record.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuest Role = "GUEST"
)

// GuestAccessEmail is recorded in place of an email for guest-labeled access records.
const GuestAccessEmail = "Guest Access"

// MaxAccessHistory is how many access records are retained, newest first.
const MaxAccessHistory = 100

// User is the identity carried by a session.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Session is the persisted marker that lets a user come back without logging in again.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AccessRecord is one entry of the login log.
type AccessRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"role"`
	Succeeded bool      `json:"succeeded"`
}

// NormalizeEmail lower-cases and trims an identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NameFromEmail derives a display name from the local part of an email:
// "nguyen.van.a@x.com" -> "Nguyen Van A".
func NameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	pieces := strings.Split(local, ".")
	for i, p := range pieces {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		pieces[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(pieces, " ")
}

// IsAdminEmail reports whether email is on the allow-list (case-insensitive).
func IsAdminEmail(adminEmails []string, email string) bool {
	needle := NormalizeEmail(email)
	if needle == "" {
		return false
	}
	for _, e := range adminEmails {
		if NormalizeEmail(e) == needle {
			return true
		}
	}
	return false
}
