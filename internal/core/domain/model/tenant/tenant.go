package tenant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/pkg/errs"
)

// ErrTenantIsNotConstructed is returned when a Tenant instance was not created
// through the NewTenant or RestoreTenant factory methods.
var ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant constructor")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Tenant represents one branded storefront on the platform. It is the
// aggregate root that owns a set of delivery zones.
//
// Tenant follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Slug must be a lowercase URL-safe identifier
//   - Can only be created through NewTenant or RestoreTenant
type Tenant struct {
	id     kernel.UUID
	name   string
	slug   string
	active bool

	isConstructed bool
}

// NewTenant creates a new active Tenant with validation. This is the only way
// to create a valid tenant, ensuring all invariants are maintained.
func NewTenant(id kernel.UUID, name string, slug string) (*Tenant, error) {
	t := &Tenant{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTenant reconstructs a Tenant from persistence, including its
// active flag. Used only by the repository layer.
func RestoreTenant(id kernel.UUID, name string, slug string, active bool) (*Tenant, error) {
	t, err := NewTenant(id, name, slug)
	if err != nil {
		return nil, err
	}

	t.active = active
	return t, nil
}

// Validate ensures the Tenant instance was properly constructed.
func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}

	return nil
}

// IsEqual compares two tenants by their unique identifiers.
func (t *Tenant) IsEqual(other *Tenant) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tenant's unique identifier.
func (t *Tenant) ID() kernel.UUID {
	return t.id
}

// Name returns the tenant's display name.
func (t *Tenant) Name() string {
	return t.name
}

// Slug returns the tenant's URL-safe identifier.
func (t *Tenant) Slug() string {
	return t.slug
}

// IsActive reports whether the tenant is currently serving customers.
func (t *Tenant) IsActive() bool {
	return t.active
}

// Activate marks the tenant as serving customers.
func (t *Tenant) Activate() {
	t.active = true
}

// Deactivate stops the tenant from serving customers. Zone configuration
// is kept intact.
func (t *Tenant) Deactivate() {
	t.active = false
}

func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tenant) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = trimmed
	return nil
}

func (t *Tenant) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause(
			"slug is invalid", fmt.Errorf("%q is not a lowercase URL-safe identifier", slug))
	}
	t.slug = slug
	return nil
}
