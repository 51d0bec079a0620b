// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// AuthUsecase covers signup, login, logout and session resolution.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout always succeeds from the caller's point of view; provider failures are only logged.
	Logout(ctx context.Context, session *entity.Session) *LogoutOutput

	// ResolveSession turns a session token into a session. A revoked session emits signed_out.
	ResolveSession(ctx context.Context, token string) (*entity.Session, error)

	Header(session *entity.Session) *HeaderView
}

// --- Input DTOs ---

// SignupInput defines the data required to register.
type SignupInput struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// --- Output DTOs ---

// SignupOutput tells the page to switch to the login tab after a delay.
type SignupOutput struct {
	UID             string `json:"uid"`
	Message         string `json:"message"`
	SwitchToLoginMs int64  `json:"switch_to_login_ms"`
}

// LoginOutput carries the new session and where the page should go next.
type LoginOutput struct {
	Session  *entity.Session `json:"-"`
	Header   *HeaderView     `json:"header"`
	Message  string          `json:"message"`
	Redirect string          `json:"redirect"`
}

// LogoutOutput tells the page where to go after logout.
type LogoutOutput struct {
	Redirect string `json:"redirect"`
}

// HeaderView is the logged-in affordance rendered in the page header.
type HeaderView struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}
