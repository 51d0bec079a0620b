package usecase

import (
	"context"
	"time"

	"recipebox/internal/domain/entity"
)

// ProfileUsecase defines the profile page operations.
type ProfileUsecase interface {
	// LoadProfile loads the user record, creating it on first visit, and resolves the avatar.
	LoadProfile(ctx context.Context, session *entity.Session) (*ProfileView, error)

	// UpdateProfile runs the profile update sequence. A failed step aborts the rest; finished steps stay.
	UpdateProfile(ctx context.Context, session *entity.Session, input *UpdateProfileInput) (*ProfileView, error)

	// RemoveAvatar replaces the photo with a fresh generated default.
	RemoveAvatar(ctx context.Context, session *entity.Session) (*ProfileView, error)

	// DeleteAccount removes avatar, record, recipes and identity, in that order.
	DeleteAccount(ctx context.Context, session *entity.Session, input *DeleteAccountInput) (*AccountDeletedOutput, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines a profile form submission. Image is nil when no file was selected.
type UpdateProfileInput struct {
	Name  string
	Image *entity.AvatarUpload
}

// DeleteAccountInput carries both confirmation gates of the profile page deletion.
type DeleteAccountInput struct {
	Confirmed    bool   `json:"confirmed"`
	Confirmation string `json:"confirmation"`
}

// --- Output DTOs ---

// ProfileView is what the profile form renders.
type ProfileView struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`

	// PhotoURL is the stored reference; AvatarURL is what the page should show.
	PhotoURL        string    `json:"photo_url"`
	AvatarURL       string    `json:"avatar_url"`
	IsDefaultAvatar bool      `json:"is_default_avatar"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Message         string    `json:"message,omitempty"`
}

// AccountDeletedOutput tells the page where to go once the account is gone.
type AccountDeletedOutput struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
