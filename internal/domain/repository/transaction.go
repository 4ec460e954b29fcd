package repository

import "context"

// TransactionManager runs a unit of work inside a single database
// transaction, keeping the use case layer free of GORM.
type TransactionManager interface {
	// Execute begins a transaction, passes a factory of transaction-bound
	// repositories to fn, and commits or rolls back based on fn's error.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories bound to the transaction that
// Execute opened. Reads and writes obtained through it see each other's
// uncommitted state.
type RepositoryFactory interface {
	// OAuthStateRepo returns the authorization attempt repository.
	OAuthStateRepo() OAuthStateRepository

	// AtprotoSessionRepo returns the connection session repository.
	AtprotoSessionRepo() AtprotoSessionRepository

	// SkillRepo returns the skill record repository.
	SkillRepo() SkillRepository
}
