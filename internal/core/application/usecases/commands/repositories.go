// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"zones/internal/core/ports"
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

	// TenantRepoFactory provides access to tenant repository within a transaction.
	TenantRepoFactory interface {
		TenantRepository() ports.TenantRepository
	}

	// ZoneRepoFactory provides access to zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// TenantUoW manages transactions for tenant-only operations.
	// Used when commands only modify tenant aggregates.
	TenantUoW interface {
		TxManager
		TenantRepoFactory
	}

	// TenantUoWFactory creates new tenant unit of work instances.
	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// ZoneUoW manages transactions for zone-only operations.
	// Used when commands only modify zone aggregates.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// UoW manages transactions across both tenant and zone aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tenantRepo := uow.TenantRepository()
	//   zoneRepo := uow.ZoneRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TenantRepoFactory
		ZoneRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
