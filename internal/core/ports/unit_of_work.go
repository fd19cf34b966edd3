package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CarrierRepository returns a CarrierRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	CarrierRepository() CarrierRepository

	// CarrierAccountRepository returns a CarrierAccountRepository instance bound to the current transaction.
	CarrierAccountRepository() CarrierAccountRepository

	// ParcelRepository returns a ParcelRepository instance bound to the current transaction.
	ParcelRepository() ParcelRepository

	// ParcelEventRepository returns a ParcelEventRepository instance bound to the current transaction.
	ParcelEventRepository() ParcelEventRepository

	// ReturnIntakeRepository returns a ReturnIntakeRepository instance bound to the current transaction.
	ReturnIntakeRepository() ReturnIntakeRepository
}
