package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// SettingsUsecase defines the settings page operations.
type SettingsUsecase interface {
	ChangePassword(ctx context.Context, session *entity.Session, input *ChangePasswordInput) (*ChangePasswordOutput, error)

	// DeleteAccount deletes the identity first and the stored data afterwards.
	DeleteAccount(ctx context.Context, session *entity.Session, input *SettingsDeleteAccountInput) (*SettingsDeleteAccountOutput, error)
}

// --- Input DTOs ---

// ChangePasswordInput defines a password change form submission.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SettingsDeleteAccountInput carries the single confirmation of the settings page.
type SettingsDeleteAccountInput struct {
	Confirmed bool `json:"confirmed"`
}

// --- Output DTOs ---

// ChangePasswordOutput carries the session to keep using after the change.
type ChangePasswordOutput struct {
	Session *entity.Session `json:"-"`
	Message string          `json:"message"`
}

// SettingsDeleteAccountOutput reports how the deletion ended. When the provider asks for a
// recent login the identity is kept, the session is ended and Deleted is false.
type SettingsDeleteAccountOutput struct {
	Deleted  bool   `json:"deleted"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
