// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRecordRepository implements the repository.UserRecordRepository interface using GORM.
type userRecordRepository struct {
	db *gorm.DB
}

// NewUserRecordRepository is the constructor for userRecordRepository.
func NewUserRecordRepository(db *gorm.DB) repository.UserRecordRepository {
	return &userRecordRepository{db: db}
}

// FindByUID retrieves the record of one identity.
func (repo *userRecordRepository) FindByUID(ctx context.Context, uid string) (*entity.UserRecord, error) {
	var recordM model.UserRecordModel
	err := repo.db.WithContext(ctx).Where("uid = ?", uid).First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find user record by uid")
	}

	return toUserRecordDomain(&recordM), nil
}

// CreateIfAbsent inserts the record unless a row already exists for its UID, then returns the stored row.
func (repo *userRecordRepository) CreateIfAbsent(ctx context.Context, record *entity.UserRecord) (*entity.UserRecord, bool, error) {
	recordM := fromUserRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "uid"}}, DoNothing: true}).
		Create(recordM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, false, domainerrors.ErrValidationFailed.WrapMessage("missing required user record information")
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create user record")
	}
	if result.RowsAffected > 0 {
		return toUserRecordDomain(recordM), true, nil
	}

	stored, err := repo.FindByUID(ctx, record.UID)
	if err != nil {
		return nil, false, err
	}

	return stored, false, nil
}

// Update applies the non-nil fields of update.
func (repo *userRecordRepository) Update(ctx context.Context, uid string, update entity.UserRecordUpdate) error {
	updates := map[string]any{"updated_at": update.UpdatedAt}
	if update.DisplayName != nil {
		updates["display_name"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		updates["photo_url"] = *update.PhotoURL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserRecordModel{}).
		Where("uid = ?", uid).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserRecordNotFound
	}

	return nil
}

// Delete removes the record. A missing row is not an error.
func (repo *userRecordRepository) Delete(ctx context.Context, uid string) error {
	err := repo.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.UserRecordModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user record")
	}

	return nil
}

func toUserRecordDomain(m *model.UserRecordModel) *entity.UserRecord {
	return &entity.UserRecord{
		UID:         m.UID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		PhotoURL:    m.PhotoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromUserRecordDomain(r *entity.UserRecord) *model.UserRecordModel {
	return &model.UserRecordModel{
		UID:         r.UID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
