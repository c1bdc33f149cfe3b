package repository

import (
	"context"

	domainrepo "mutualaid/internal/domain/repository"
)

// FakeTransactionManager runs the callback immediately against a fixed
// factory, with no real transaction semantics. Useful for service tests.
type FakeTransactionManager struct {
	Factory domainrepo.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	return fn(f.Factory)
}

// FakeRepositoryFactory hands out the mocks it was built with.
type FakeRepositoryFactory struct {
	HelpRepo  domainrepo.HelpRequestRepository
	OfferRepo domainrepo.OfferRepository
	UserRepo  domainrepo.UserRepository
}

func (f *FakeRepositoryFactory) NewHelpRequestRepository() domainrepo.HelpRequestRepository {
	return f.HelpRepo
}

func (f *FakeRepositoryFactory) NewOfferRepository() domainrepo.OfferRepository {
	return f.OfferRepo
}

func (f *FakeRepositoryFactory) NewUserRepository() domainrepo.UserRepository {
	return f.UserRepo
}

// NewFakeTransactionManager bundles the mocks into a passthrough
// transaction manager.
func NewFakeTransactionManager(helpRepo domainrepo.HelpRequestRepository, offerRepo domainrepo.OfferRepository, userRepo domainrepo.UserRepository) *FakeTransactionManager {
	return &FakeTransactionManager{
		Factory: &FakeRepositoryFactory{
			HelpRepo:  helpRepo,
			OfferRepo: offerRepo,
			UserRepo:  userRepo,
		},
	}
}
