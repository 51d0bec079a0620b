package service

import "time"

// SessionClaims are the facts a session token vouches for.
type SessionClaims struct {
	UID       string
	Email     string
	AuthTime  time.Time
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates session tokens for the built-in identity provider.
type TokenService interface {
	Issue(uid, email string, authTime time.Time) (string, *SessionClaims, error)
	Validate(token string) (*SessionClaims, error)
}
