package postgres

import (
	"context"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// ListByUserID returns the recipes owned by uid, newest first.
func (repo *recipeRepository) ListByUserID(ctx context.Context, uid string) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, &entity.Recipe{
			ID:        recipeMs[i].ID.String(),
			UserID:    recipeMs[i].UserID,
			Title:     recipeMs[i].Title,
			CreatedAt: recipeMs[i].CreatedAt,
		})
	}

	return recipes, nil
}

// DeleteByUserID removes every recipe owned by uid in one statement.
func (repo *recipeRepository) DeleteByUserID(ctx context.Context, uid string) (int, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", uid).Delete(&model.RecipeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipes")
	}

	return int(result.RowsAffected), nil
}
