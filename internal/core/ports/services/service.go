package services

// ServiceContainer holds instances of all the application services.
// Every service in a container stamps writes with the same user.
type ServiceContainer struct {
	Currency  CurrencySvcFacade
	Account   AccountSvcFacade
	Category  CategorySvcFacade
	Budget    BudgetSvcFacade
	Operation OperationSvcFacade
}

// UserScoped is implemented by services bound to a fixed user.
type UserScoped interface {
	// User returns the user stamped on every write.
	User() string

	// SetUser always fails: the user is fixed at construction.
	SetUser(user string) error
}
