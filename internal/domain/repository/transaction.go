package repository

import "context"

// TransactionManager runs credential changes that span several statements in one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewCredentialRepository() CredentialRepository
}
