package entity

import "time"

// Credential is an email/password identity managed by the built-in identity provider.
type Credential struct {
	UID          string
	Email        string
	PasswordHash string
	DisplayName  string
	PhotoURL     string
	Disabled     bool

	// TokensValidAfter invalidates every token issued before it; sign-out moves it forward.
	TokensValidAfter time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
