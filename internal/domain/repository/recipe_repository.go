package repository

import (
	"context"

	"recipebox/internal/domain/entity"
)

// RecipeRepository exposes the recipe operations the account lifecycle needs.
type RecipeRepository interface {
	ListByUserID(ctx context.Context, uid string) ([]*entity.Recipe, error)

	// DeleteByUserID removes every recipe owned by uid and reports how many were removed.
	// With nothing left to delete it returns 0 and no error.
	DeleteByUserID(ctx context.Context, uid string) (int, error)
}
