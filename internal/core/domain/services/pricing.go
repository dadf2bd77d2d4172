package services

import (
	"zones/internal/core/domain/model/kernel"
)

// PricingResult is the pricing decision for one quote request. It carries
// the data the checkout flow needs to display the fee, block submission, or
// reject the address; it performs no rejection of its own.
type PricingResult struct {
	deliverable  bool
	fee          kernel.Money
	minOrder     *kernel.Money
	meetsMinimum bool
	shortfall    kernel.Money
}

// Deliverable reports whether a zone covers the address. When false, the
// checkout flow must reject the order rather than defaulting to some fee;
// no other field of the result is meaningful.
func (p PricingResult) Deliverable() bool {
	return p.deliverable
}

// Fee returns the delivery fee of the winning zone. The fee is charged
// regardless of subtotal; only the minimum-order gate looks at the subtotal.
func (p PricingResult) Fee() kernel.Money {
	return p.fee
}

// MinOrder returns the winning zone's minimum order value, or nil when the
// zone imposes none.
func (p PricingResult) MinOrder() *kernel.Money {
	if p.minOrder == nil {
		return nil
	}
	m := *p.minOrder
	return &m
}

// HasMinimum reports whether a minimum-order gate applies. MeetsMinimum and
// Shortfall are only meaningful when this is true.
func (p PricingResult) HasMinimum() bool {
	return p.minOrder != nil
}

// MeetsMinimum reports whether the subtotal covers the zone minimum.
// The boundary is inclusive: a subtotal exactly at the minimum meets it.
func (p PricingResult) MeetsMinimum() bool {
	return p.meetsMinimum
}

// Shortfall returns how much the subtotal is below the zone minimum, for
// the "minimum order for this area is X" checkout message. Zero when the
// minimum is met or no minimum applies.
func (p PricingResult) Shortfall() kernel.Money {
	return p.shortfall
}

// PricingService is a domain service that derives the final delivery fee
// and minimum-order gate from a zone resolution. It is a pure function over
// its inputs: identical inputs always yield identical results.
//
// All money values are integer cents; no floating point is involved.
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// PriceOrder computes the pricing decision for a resolved zone and an order
// subtotal (pre-delivery, integer cents).
//
// Behavior:
//   - Undeliverable resolution: the result only says so; no fee or minimum
//     is computed.
//   - Zone without minimum: the fee applies, no subtotal gate.
//   - Zone with minimum N: the fee applies and MeetsMinimum reports
//     subtotal >= N. Blocking checkout on a failed gate is the caller's
//     responsibility, which keeps this service side-effect-free.
func (s PricingService) PriceOrder(resolution Resolution, subtotal kernel.Money) (PricingResult, error) {
	if err := subtotal.Validate(); err != nil {
		return PricingResult{}, err
	}

	if !resolution.Deliverable() {
		return PricingResult{deliverable: false}, nil
	}

	winner := resolution.Zone()
	result := PricingResult{
		deliverable: true,
		fee:         winner.DeliveryFee(),
	}

	minOrder := winner.MinOrder()
	if minOrder == nil {
		return result, nil
	}

	result.minOrder = minOrder
	result.meetsMinimum = subtotal.Covers(*minOrder)
	result.shortfall = subtotal.Shortfall(*minOrder)

	return result, nil
}
