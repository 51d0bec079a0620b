package postgres

import (
	"context"
	"time"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	return nil
}

func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *credentialRepository) FindByUID(ctx context.Context, uid string) (*entity.Credential, error) {
	return repo.findOne(ctx, "uid = ?", uid)
}

func (repo *credentialRepository) findOne(ctx context.Context, query string, arg any) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).Where(query, arg).First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credentialM), nil
}

func (repo *credentialRepository) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error {
	updates := map[string]any{"updated_at": time.Now()}
	if update.DisplayName != nil {
		updates["display_name"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		updates["photo_url"] = *update.PhotoURL
	}

	return repo.update(ctx, uid, updates, "failed to update credential profile")
}

func (repo *credentialRepository) UpdatePasswordHash(ctx context.Context, uid, hash string) error {
	return repo.update(ctx, uid, map[string]any{
		"password_hash": hash,
		"updated_at":    time.Now(),
	}, "failed to update password hash")
}

func (repo *credentialRepository) RevokeTokens(ctx context.Context, uid string, validAfter time.Time) error {
	return repo.update(ctx, uid, map[string]any{"tokens_valid_after": validAfter}, "failed to revoke tokens")
}

func (repo *credentialRepository) update(ctx context.Context, uid string, updates map[string]any, details string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("uid = ?", uid).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) Delete(ctx context.Context, uid string) error {
	err := repo.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.CredentialModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete credential")
	}

	return nil
}

func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		UID:              m.UID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		DisplayName:      m.DisplayName,
		PhotoURL:         m.PhotoURL,
		Disabled:         m.Disabled,
		TokensValidAfter: m.TokensValidAfter,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromCredentialDomain(c *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		UID:              c.UID,
		Email:            c.Email,
		PasswordHash:     c.PasswordHash,
		DisplayName:      c.DisplayName,
		PhotoURL:         c.PhotoURL,
		Disabled:         c.Disabled,
		TokensValidAfter: c.TokensValidAfter,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
