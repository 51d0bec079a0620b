package firestore

import (
	"context"
	"log/slog"
	"time"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/errors"

	"cloud.google.com/go/firestore"
)

// recipeDocument is the part of a recipe document the account lifecycle reads.
type recipeDocument struct {
	UserID    string    `firestore:"userId"`
	Title     string    `firestore:"title"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type recipeRepository struct {
	client  *firestore.Client
	recipes *firestore.CollectionRef
	logger  *slog.Logger
}

// NewRecipeRepository reads and deletes recipe documents by their userId field.
func NewRecipeRepository(params Params) (repository.RecipeRepository, error) {
	client, err := params.App.Firestore()
	if err != nil {
		return nil, err
	}

	return &recipeRepository{
		client:  client,
		recipes: client.Collection(recipesCollection(params.Config)),
		logger:  params.Logger,
	}, nil
}

func (repo *recipeRepository) ListByUserID(ctx context.Context, uid string) ([]*entity.Recipe, error) {
	snapshots, err := repo.recipes.Where("userId", "==", uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(snapshots))
	for _, snapshot := range snapshots {
		var doc recipeDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode recipe %s", snapshot.Ref.ID)
		}
		recipes = append(recipes, &entity.Recipe{
			ID:        snapshot.Ref.ID,
			UserID:    doc.UserID,
			Title:     doc.Title,
			CreatedAt: doc.CreatedAt,
		})
	}

	return recipes, nil
}

// DeleteByUserID deletes the owned documents with a BulkWriter. Documents that fail
// to delete stay behind and are picked up by the next call.
func (repo *recipeRepository) DeleteByUserID(ctx context.Context, uid string) (int, error) {
	refs, err := repo.recipes.Where("userId", "==", uid).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Wrap(err, "failed to query recipes")
	}
	if len(refs) == 0 {
		return 0, nil
	}

	writer := repo.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	var errs []error
	for _, snapshot := range refs {
		job, err := writer.Delete(snapshot.Ref)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to enqueue delete of recipe %s", snapshot.Ref.ID))

			continue
		}
		jobs = append(jobs, job)
	}
	writer.End()

	deleted := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)

			continue
		}
		deleted++
	}

	if len(errs) > 0 {
		repo.logger.WarnContext(ctx, "Some recipes were not deleted",
			slog.String("uid", uid),
			slog.Int("deleted", deleted),
			slog.Int("failed", len(errs)),
		)

		return deleted, errors.Wrap(errors.Join(errs...), "failed to delete recipes")
	}

	return deleted, nil
}
