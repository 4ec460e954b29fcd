// Package postgres implements the persistence layer on GORM. Repositories
// come in two flavors: standalone, bound to the pool, and factory-made,
// bound to one open transaction.
package postgres

import (
	"context"
	"fmt"

	"dreamtree/internal/domain/repository"
	"dreamtree/internal/domain/service"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on GORM.
type gormTransactionManager struct {
	db        *gorm.DB
	encryptor service.Encryptor
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
// A *gorm.DB returned by Begin carries the transaction, so the factory can
// reuse the plain repository constructors.
type gormRepositoryFactory struct {
	tx        *gorm.DB
	encryptor service.Encryptor
}

// OAuthStateRepo creates an authorization attempt repository bound to the transaction.
func (f *gormRepositoryFactory) OAuthStateRepo() repository.OAuthStateRepository {
	return NewOAuthStateRepository(f.tx)
}

// AtprotoSessionRepo creates a session repository bound to the transaction.
func (f *gormRepositoryFactory) AtprotoSessionRepo() repository.AtprotoSessionRepository {
	return NewAtprotoSessionRepository(f.tx, f.encryptor)
}

// SkillRepo creates a skill repository bound to the transaction.
func (f *gormRepositoryFactory) SkillRepo() repository.SkillRepository {
	return NewSkillRepository(f.tx)
}

// NewTransactionManager creates the Fx-provided TransactionManager.
func NewTransactionManager(db *gorm.DB, encryptor service.Encryptor) repository.TransactionManager {
	return &gormTransactionManager{db: db, encryptor: encryptor}
}

// Execute runs fn inside one transaction: rollback on error or panic, commit
// otherwise. The state-token consumption and the session upsert in the
// callback flow ride the same transaction through the factory.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, encryptor: tm.encryptor}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
