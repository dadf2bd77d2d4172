package services

import (
	"slices"
	"strings"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
)

// Resolution is the outcome of zone resolution for one address.
// The zero value means "undeliverable", which is a normal business outcome,
// never an error.
type Resolution struct {
	winner    *zone.DeliveryZone
	ambiguous bool
}

// Deliverable reports whether any zone covers the address.
func (r Resolution) Deliverable() bool {
	return r.winner != nil
}

// Zone returns the winning zone, or nil when the address is undeliverable.
func (r Resolution) Zone() *zone.DeliveryZone {
	return r.winner
}

// Ambiguous reports whether more than one zone tied at the winning priority.
// The winner is still deterministic, but a tie indicates overlapping zone
// definitions that should be cleaned up administratively; callers are
// expected to log it as a configuration smell.
func (r Resolution) Ambiguous() bool {
	return r.ambiguous
}

// ZoneResolver is a domain service that determines which delivery zone, if
// any, covers a given address. It is stateless; the zone snapshot comes in
// as an argument on every call.
//
// Example:
//
//	resolver := services.NewZoneResolver()
//	matched, err := resolver.MatchZones(zones, addr)
//	if err != nil {
//	    return err
//	}
//	resolution := resolver.Resolve(matched)
//	if !resolution.Deliverable() {
//	    // no zone covers this address
//	}
type ZoneResolver struct{}

// NewZoneResolver creates a new ZoneResolver instance.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// MatchZones returns every active zone in the snapshot that covers the
// address. The result may be empty, hold one zone, or hold several when
// zone definitions overlap.
//
// The address must be valid and every zone must have been constructed
// through the zone package constructors.
func (r ZoneResolver) MatchZones(zones []*zone.DeliveryZone, addr kernel.Address) ([]*zone.DeliveryZone, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*zone.DeliveryZone, 0, 1)
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if z.MatchesAddress(addr) {
			matched = append(matched, z)
		}
	}

	return matched, nil
}

// Resolve picks exactly one zone from the candidate set, or reports the
// address undeliverable when the set is empty.
//
// Candidates are ordered by priority descending, so a stricter outlying
// zone (seeded with a higher priority) beats a broader standard zone that
// covers the same postal code. Equal top priorities are broken by the
// lexicographically smallest zone ID; the rule is arbitrary but
// deterministic and independent of input order, which keeps pricing
// reproducible. Such ties are also reported via Resolution.Ambiguous.
func (r ZoneResolver) Resolve(matched []*zone.DeliveryZone) Resolution {
	if len(matched) == 0 {
		return Resolution{}
	}

	candidates := slices.Clone(matched)
	slices.SortFunc(candidates, func(a, b *zone.DeliveryZone) int {
		if a.Priority() != b.Priority() {
			return b.Priority() - a.Priority()
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})

	winner := candidates[0]
	ambiguous := len(candidates) > 1 && candidates[1].Priority() == winner.Priority()

	return Resolution{
		winner:    winner,
		ambiguous: ambiguous,
	}
}
