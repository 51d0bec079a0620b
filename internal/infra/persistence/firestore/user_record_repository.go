// Package firestore implements the user record and recipe repositories on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/errors"
	"recipebox/internal/infra/firebaseapp"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRecordDocument is the stored shape of a user record.
type userRecordDocument struct {
	UID         string    `firestore:"uid"`
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	PhotoURL    string    `firestore:"photoURL"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// Params holds dependencies for the Firestore repositories, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	App    *firebaseapp.App
}

type userRecordRepository struct {
	users  *firestore.CollectionRef
	logger *slog.Logger
}

// NewUserRecordRepository stores user records in the configured users collection, one document per UID.
func NewUserRecordRepository(params Params) (repository.UserRecordRepository, error) {
	client, err := params.App.Firestore()
	if err != nil {
		return nil, err
	}

	return &userRecordRepository{
		users:  client.Collection(usersCollection(params.Config)),
		logger: params.Logger,
	}, nil
}

func (repo *userRecordRepository) FindByUID(ctx context.Context, uid string) (*entity.UserRecord, error) {
	snapshot, err := repo.users.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to get user record")
	}

	return decodeUserRecord(snapshot)
}

func (repo *userRecordRepository) CreateIfAbsent(ctx context.Context, record *entity.UserRecord) (*entity.UserRecord, bool, error) {
	_, err := repo.users.Doc(record.UID).Create(ctx, userRecordDocument{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	})
	if err == nil {
		return record.Clone(), true, nil
	}
	if status.Code(err) != codes.AlreadyExists {
		return nil, false, errors.Wrap(err, "failed to create user record")
	}

	stored, err := repo.FindByUID(ctx, record.UID)
	if err != nil {
		return nil, false, err
	}

	return stored, false, nil
}

func (repo *userRecordRepository) Update(ctx context.Context, uid string, update entity.UserRecordUpdate) error {
	updates := []firestore.Update{{Path: "updatedAt", Value: update.UpdatedAt}}
	if update.DisplayName != nil {
		updates = append(updates, firestore.Update{Path: "displayName", Value: *update.DisplayName})
	}
	if update.PhotoURL != nil {
		updates = append(updates, firestore.Update{Path: "photoURL", Value: *update.PhotoURL})
	}

	if _, err := repo.users.Doc(uid).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserRecordNotFound
		}

		return errors.Wrap(err, "failed to update user record")
	}

	return nil
}

// Delete removes the document. Firestore treats deleting a missing document as success.
func (repo *userRecordRepository) Delete(ctx context.Context, uid string) error {
	if _, err := repo.users.Doc(uid).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete user record")
	}

	return nil
}

func decodeUserRecord(snapshot *firestore.DocumentSnapshot) (*entity.UserRecord, error) {
	var doc userRecordDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user record")
	}
	if doc.UID == "" {
		doc.UID = snapshot.Ref.ID
	}

	return &entity.UserRecord{
		UID:         doc.UID,
		Email:       doc.Email,
		DisplayName: doc.DisplayName,
		PhotoURL:    doc.PhotoURL,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func usersCollection(cfg *config.Config) string {
	if cfg.Documents != nil && cfg.Documents.UsersCollection != "" {
		return cfg.Documents.UsersCollection
	}

	return "users"
}

func recipesCollection(cfg *config.Config) string {
	if cfg.Documents != nil && cfg.Documents.RecipesCollection != "" {
		return cfg.Documents.RecipesCollection
	}

	return "recipes"
}
