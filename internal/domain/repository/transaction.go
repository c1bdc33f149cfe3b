package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions without leaking a specific DB driver into use cases.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error the transaction is rolled back, otherwise committed. All
	// repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	// NewHelpRequestRepository returns a HelpRequestRepository bound to the current transaction.
	NewHelpRequestRepository() HelpRequestRepository

	// NewOfferRepository returns an OfferRepository bound to the current transaction.
	NewOfferRepository() OfferRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
