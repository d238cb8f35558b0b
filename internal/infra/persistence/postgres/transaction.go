// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"
	"fmt"

	"multipost/internal/domain/repository"
	"multipost/internal/domain/service"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	cipher service.TokenCipher
}

func (f *gormRepositoryFactory) NewWorkspaceRepository() repository.WorkspaceRepository {
	return NewWorkspaceRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTokenRepository() repository.TokenRepository {
	return NewTokenRepository(f.tx, f.cipher)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cipher service.TokenCipher) repository.TransactionManager {
	return &gormTransactionManager{db: db, cipher: cipher}
}

// Execute runs the given function within a single database transaction.
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

	factory := &gormRepositoryFactory{tx: tx, cipher: tm.cipher}

	if err := fn(factory); err != nil {
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
