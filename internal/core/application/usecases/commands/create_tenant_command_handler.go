package commands

import (
	"context"

	"zones/internal/core/domain/model/tenant"
)

// CreateTenantCommandHandler handles the business logic for tenant
// registration. Creates and persists new tenant aggregates.
//
// Example:
//
//	handler := NewCreateTenantCommandHandler(uowFactory)
//	cmd, _ := NewCreateTenantCommand("Pizza Presto", "pizza-presto")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("tenant registration failed: %w", err)
//	}
type CreateTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewCreateTenantCommandHandler creates a handler for tenant registration.
// Requires a TenantUoWFactory for transactional persistence operations.
func NewCreateTenantCommandHandler(uowFactory TenantUoWFactory) CreateTenantCommandHandler {
	return CreateTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tenant creation command.
// Creates a new tenant aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateTenantCommandHandler) Handle(ctx context.Context, cmd CreateTenantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenantRepo := uow.TenantRepository()
	tenantEntity, err := tenant.NewTenant(cmd.TenantID(), cmd.Name(), cmd.Slug())
	if err != nil {
		return err
	}

	if err = tenantRepo.Add(ctx, tenantEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
