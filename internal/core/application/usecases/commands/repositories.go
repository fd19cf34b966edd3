// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// AccountRepoFactory provides access to the carrier account repository within a transaction.
	AccountRepoFactory interface {
		CarrierAccountRepository() ports.CarrierAccountRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// EventRepoFactory provides access to the append-only event log within a transaction.
	EventRepoFactory interface {
		ParcelEventRepository() ports.ParcelEventRepository
	}

	// ReturnRepoFactory provides access to the return intake log within a transaction.
	ReturnRepoFactory interface {
		ReturnIntakeRepository() ports.ReturnIntakeRepository
	}

	// CarrierUoW manages transactions for carrier configuration changes.
	// Includes parcels so carrier deletion can check for linked parcels.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
		ParcelRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// AccountUoW manages transactions for carrier account changes.
	// Includes carriers so account creation can check the carrier exists.
	AccountUoW interface {
		TxManager
		CarrierRepoFactory
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// ParcelUoW manages transactions for parcel status mutations.
	// Every status write pairs with exactly one event append in the same
	// transaction.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		EventRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ScanUoW manages transactions for outbound scan intake, which touches
	// the carrier registry, accounts, the parcel, and the event log.
	ScanUoW interface {
		TxManager
		CarrierRepoFactory
		AccountRepoFactory
		ParcelRepoFactory
		EventRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// ReturnUoW manages transactions for return scan intake.
	ReturnUoW interface {
		TxManager
		ParcelRepoFactory
		EventRepoFactory
		ReturnRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// SweepUoW manages one parcel's escalation within the SLA sweep.
	// The sweep opens a fresh transaction per parcel so one failure never
	// poisons the rest of the run.
	SweepUoW interface {
		TxManager
		CarrierRepoFactory
		ParcelRepoFactory
		EventRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
