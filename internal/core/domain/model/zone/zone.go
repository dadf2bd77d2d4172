package zone

import (
	"errors"
	"slices"
	"strings"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/pkg/errs"
)

var (
	// ErrZoneIsNotConstructed is returned when a DeliveryZone instance was not
	// created through the NewDeliveryZone or RestoreDeliveryZone factory methods.
	ErrZoneIsNotConstructed = errors.New("DeliveryZone must be created via NewDeliveryZone constructor")

	// ErrMatcherIsEmpty is returned when a zone is defined without any postal
	// code or city name. Such a zone could never match an address.
	ErrMatcherIsEmpty = errors.New("zone matcher must contain at least one postal code or city name")
)

// DeliveryZone represents a delivery area for a tenant. It is the aggregate
// root combining a geographic matcher with a pricing policy.
//
// DeliveryZone follows these invariants:
//   - Must have valid unique identifier and tenant identifier
//   - Name must be non-empty (display only, never used in matching)
//   - Delivery fee is non-negative integer cents; minimum order, when set,
//     is non-negative integer cents
//   - Matcher sets are stored in canonical form and never empty overall
//   - Can only be created through NewDeliveryZone or RestoreDeliveryZone
type DeliveryZone struct {
	id       kernel.UUID
	tenantID kernel.UUID
	name     string

	deliveryFee kernel.Money
	minOrder    *kernel.Money
	priority    int

	postalCodes []string
	cityNames   []string
	cityParts   []string

	active bool

	isConstructed bool
}

// NewDeliveryZone creates a new active DeliveryZone with validation.
// Matcher inputs are canonicalized: postal codes lose whitespace, city and
// city-part names are lowercased with diacritics stripped; duplicates after
// canonicalization collapse into one entry. minOrder may be nil when the zone
// has no minimum order value.
func NewDeliveryZone(
	id kernel.UUID,
	tenantID kernel.UUID,
	name string,
	deliveryFee kernel.Money,
	minOrder *kernel.Money,
	priority int,
	postalCodes []string,
	cityNames []string,
	cityParts []string,
) (*DeliveryZone, error) {
	z := &DeliveryZone{
		priority:      priority,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		z.setID(id),
		z.setTenantID(tenantID),
		z.setName(name),
		z.setDeliveryFee(deliveryFee),
		z.setMinOrder(minOrder),
		z.setMatcher(postalCodes, cityNames, cityParts),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreDeliveryZone reconstructs a DeliveryZone from persistence, including
// its active flag. Used only by the repository layer.
func RestoreDeliveryZone(
	id kernel.UUID,
	tenantID kernel.UUID,
	name string,
	deliveryFee kernel.Money,
	minOrder *kernel.Money,
	priority int,
	postalCodes []string,
	cityNames []string,
	cityParts []string,
	active bool,
) (*DeliveryZone, error) {
	z, err := NewDeliveryZone(id, tenantID, name, deliveryFee, minOrder, priority,
		postalCodes, cityNames, cityParts)
	if err != nil {
		return nil, err
	}

	z.active = active
	return z, nil
}

// Validate ensures the DeliveryZone instance was properly constructed.
func (z *DeliveryZone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}

	return nil
}

// IsEqual compares two zones by their unique identifiers.
func (z *DeliveryZone) IsEqual(other *DeliveryZone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *DeliveryZone) ID() kernel.UUID {
	return z.id
}

// TenantID returns the identifier of the owning tenant.
func (z *DeliveryZone) TenantID() kernel.UUID {
	return z.tenantID
}

// Name returns the zone's human-readable label. Names are display-only and
// play no part in matching.
func (z *DeliveryZone) Name() string {
	return z.name
}

// DeliveryFee returns the fee charged when this zone wins resolution.
func (z *DeliveryZone) DeliveryFee() kernel.Money {
	return z.deliveryFee
}

// MinOrder returns the minimum order value gate, or nil when the zone
// imposes none.
func (z *DeliveryZone) MinOrder() *kernel.Money {
	if z.minOrder == nil {
		return nil
	}
	m := *z.minOrder
	return &m
}

// HasMinOrder reports whether the zone imposes a minimum order value.
func (z *DeliveryZone) HasMinOrder() bool {
	return z.minOrder != nil
}

// Priority returns the zone's resolution priority. Higher values win.
func (z *DeliveryZone) Priority() int {
	return z.priority
}

// PostalCodes returns the canonical postal code matcher set.
func (z *DeliveryZone) PostalCodes() []string {
	return slices.Clone(z.postalCodes)
}

// CityNames returns the canonical city name matcher set.
func (z *DeliveryZone) CityNames() []string {
	return slices.Clone(z.cityNames)
}

// CityParts returns the canonical city part (district) matcher set.
// An empty set means the whole city matches.
func (z *DeliveryZone) CityParts() []string {
	return slices.Clone(z.cityParts)
}

// IsActive reports whether the zone participates in matching.
func (z *DeliveryZone) IsActive() bool {
	return z.active
}

// Activate makes the zone participate in matching again.
func (z *DeliveryZone) Activate() {
	z.active = true
}

// Deactivate excludes the zone from matching entirely.
func (z *DeliveryZone) Deactivate() {
	z.active = false
}

// MatchesAddress reports whether the zone covers the given address.
//
// A zone matches when it is active and at least one of the following holds:
//  1. the address postal code is in the zone's postal code set, or
//  2. the address city is in the zone's city name set and either the zone
//     has no city parts (whole city) or the address city part is in the
//     zone's city part set.
//
// Comparison happens on canonical forms on both sides, so case and
// diacritic variants of the seeded spellings still match.
func (z *DeliveryZone) MatchesAddress(addr kernel.Address) bool {
	if !z.active {
		return false
	}

	if slices.Contains(z.postalCodes, addr.PostalKey()) {
		return true
	}

	if !slices.Contains(z.cityNames, addr.CityKey()) {
		return false
	}

	if len(z.cityParts) == 0 {
		return true
	}

	return addr.HasCityPart() && slices.Contains(z.cityParts, addr.CityPartKey())
}

// SameDefinition reports whether two zones are configured identically:
// same name, pricing policy, priority, matcher sets, and active flag.
// Identifiers are not compared. The bulk-replace flow uses this to skip
// zones that do not need an update.
func (z *DeliveryZone) SameDefinition(other *DeliveryZone) bool {
	if other == nil {
		return false
	}

	if z.name != other.name ||
		z.priority != other.priority ||
		z.active != other.active ||
		!z.deliveryFee.IsEqual(other.deliveryFee) {
		return false
	}

	if (z.minOrder == nil) != (other.minOrder == nil) {
		return false
	}
	if z.minOrder != nil && !z.minOrder.IsEqual(*other.minOrder) {
		return false
	}

	return slices.Equal(z.postalCodes, other.postalCodes) &&
		slices.Equal(z.cityNames, other.cityNames) &&
		slices.Equal(z.cityParts, other.cityParts)
}

func (z *DeliveryZone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *DeliveryZone) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	z.tenantID = tenantID
	return nil
}

func (z *DeliveryZone) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = trimmed
	return nil
}

func (z *DeliveryZone) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	z.deliveryFee = fee
	return nil
}

func (z *DeliveryZone) setMinOrder(minOrder *kernel.Money) error {
	if minOrder == nil {
		z.minOrder = nil
		return nil
	}
	if err := minOrder.Validate(); err != nil {
		return err
	}
	m := *minOrder
	z.minOrder = &m
	return nil
}

func (z *DeliveryZone) setMatcher(postalCodes []string, cityNames []string, cityParts []string) error {
	z.postalCodes = canonicalSet(postalCodes, kernel.NormalizePostalCode)
	z.cityNames = canonicalSet(cityNames, kernel.NormalizeText)
	z.cityParts = canonicalSet(cityParts, kernel.NormalizeText)

	if len(z.postalCodes) == 0 && len(z.cityNames) == 0 {
		return ErrMatcherIsEmpty
	}

	return nil
}

// canonicalSet normalizes every entry, drops empties and duplicates, and
// sorts the result so definitions compare deterministically.
func canonicalSet(values []string, normalize func(string) string) []string {
	set := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		key := normalize(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		set = append(set, key)
	}

	slices.Sort(set)
	return set
}
