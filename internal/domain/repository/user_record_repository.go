// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipebox/internal/domain/entity"
)

// ErrUserRecordNotFound is returned when no record exists for a UID.
var ErrUserRecordNotFound = errors.New("user record not found")

// UserRecordRepository persists one user record per identity.
type UserRecordRepository interface {
	// FindByUID returns ErrUserRecordNotFound when the record is absent.
	FindByUID(ctx context.Context, uid string) (*entity.UserRecord, error)

	// CreateIfAbsent stores record unless one already exists for its UID.
	// It returns the stored record and whether this call created it; an existing CreatedAt is never overwritten.
	CreateIfAbsent(ctx context.Context, record *entity.UserRecord) (*entity.UserRecord, bool, error)

	// Update applies a partial update. It returns ErrUserRecordNotFound when the record is absent.
	Update(ctx context.Context, uid string, update entity.UserRecordUpdate) error

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, uid string) error
}
