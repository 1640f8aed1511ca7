package services

import (
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_master_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service writes as user.
func NewServiceContainer(repos portsrepo.RepositoryProvider, user string, opts ...Option) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}
	var err error

	if container.Currency, err = NewCurrencyService(repos.CurrencyRepo, repos.TxManager, user, opts...); err != nil {
		return nil, err
	}
	if container.Account, err = NewAccountService(repos.AccountRepo, repos.TxManager, user, opts...); err != nil {
		return nil, err
	}
	if container.Category, err = NewCategoryService(repos.CategoryRepo, repos.TxManager, user, opts...); err != nil {
		return nil, err
	}
	if container.Budget, err = NewBudgetService(repos.BudgetRepo, repos.TxManager, user, opts...); err != nil {
		return nil, err
	}

	// Operations check their references and resolve titles through the services above.
	container.Operation, err = NewOperationService(repos.OperationRepo, repos.TxManager, user,
		WithBaseOptions(opts...),
		WithReferenceReaders(repos.CurrencyRepo, repos.AccountRepo, repos.CategoryRepo),
		WithTitleResolvers(container.Currency, container.Account),
	)
	if err != nil {
		return nil, err
	}

	return container, nil
}
