// Package entity contains the core business objects of the account service.
package entity

import (
	"strings"
	"time"
)

// AuthState is the per-request view of whether a session is present.
type AuthState int

const (
	AuthStateUnknown AuthState = iota
	AuthStateAuthenticated
	AuthStateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is the client's view of the currently authenticated identity.
// It is owned by the identity provider and never persisted by this service.
type Session struct {
	UID          string
	Email        string
	DisplayName  string
	PhotoURL     string
	IDToken      string
	RefreshToken string
	AuthTime     time.Time
	ExpiresAt    time.Time
}

// IsRecentLogin reports whether the sign-in happened within window of now.
func (s *Session) IsRecentLogin(now time.Time, window time.Duration) bool {
	if s.AuthTime.IsZero() {
		return false
	}

	return now.Sub(s.AuthTime) <= window
}

// HeaderName is the name shown in the page header: the display name, or the email's local part.
func (s *Session) HeaderName() string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}

	local, _, _ := strings.Cut(s.Email, "@")

	return local
}

// ProfileUpdate carries the identity profile fields to change. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}
