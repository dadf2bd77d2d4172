package commands

import (
	"errors"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/pkg/guard"
)

var (
	ErrCreateTenantCommandIsNotConstructed = errors.New(
		"CreateTenantCommand must be created via NewCreateTenantCommand constructor",
	)
	ErrTenantNameIsRequired = errors.New("name is required")
	ErrTenantSlugIsRequired = errors.New("slug is required")
)

// CreateTenantCommand represents a request to register a new storefront on the
// platform. Encapsulates the data needed to create a tenant aggregate.
//
// Example:
//
//	cmd, err := NewCreateTenantCommand("Pizza Presto", "pizza-presto")
//	if err != nil {
//	    return fmt.Errorf("invalid tenant data: %w", err)
//	}
//
//	handler := NewCreateTenantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create tenant: %w", err)
//	}
//	fmt.Printf("Created tenant with ID: %s", cmd.TenantID())
type CreateTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	name     string
	slug     string

	guard guard.ConstructorGuard
}

// NewCreateTenantCommand creates a command to register a new tenant.
// Automatically generates a unique ID for the tenant.
// Validates that name and slug are not empty; slug format rules are
// enforced by the tenant aggregate itself.
func NewCreateTenantCommand(name string, slug string) (CreateTenantCommand, error) {
	command := CreateTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(kernel.NewUUID()),
		command.setName(name),
		command.setSlug(slug),
	); err != nil {
		return CreateTenantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTenantCommandIsNotConstructed if validation fails.
func (c CreateTenantCommand) Validate() error {
	return c.guard.Validate(ErrCreateTenantCommandIsNotConstructed)
}

// TenantID returns the generated tenant ID from the command.
func (c CreateTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the tenant display name from the command.
func (c CreateTenantCommand) Name() string {
	return c.name
}

// Slug returns the tenant URL-safe identifier from the command.
func (c CreateTenantCommand) Slug() string {
	return c.slug
}

func (c *CreateTenantCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tenantID = id
	return nil
}

func (c *CreateTenantCommand) setName(name string) error {
	if name == "" {
		return ErrTenantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTenantCommand) setSlug(slug string) error {
	if slug == "" {
		return ErrTenantSlugIsRequired
	}

	c.slug = slug
	return nil
}
