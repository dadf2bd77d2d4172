package queries

import (
	"errors"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/pkg/guard"
)

var (
	ErrQuoteDeliveryQueryIsNotConstructed = errors.New(
		"QuoteDeliveryQuery must be created via NewQuoteDeliveryQuery constructor",
	)
)

// QuoteDeliveryQuery asks whether a tenant delivers to an address and at
// what price. This is the hot-path operation of the system: checkout calls
// it on every address entry.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Bratislava", "Staré Mesto", "811 01")
//	subtotal, _ := kernel.NewMoney(2550)
//	query, err := NewQuoteDeliveryQuery(tenantID, addr, subtotal)
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	if !quote.Deliverable {
//	    // reject the order
//	}
type QuoteDeliveryQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	address  kernel.Address
	subtotal kernel.Money

	guard guard.ConstructorGuard
}

// NewQuoteDeliveryQuery creates a quote request for one tenant, address and
// order subtotal (pre-delivery, integer cents).
func NewQuoteDeliveryQuery(
	tenantID kernel.UUID,
	address kernel.Address,
	subtotal kernel.Money,
) (QuoteDeliveryQuery, error) {
	query := QuoteDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setTenantID(tenantID),
		query.setAddress(address),
		query.setSubtotal(subtotal),
	); err != nil {
		return QuoteDeliveryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrQuoteDeliveryQueryIsNotConstructed if validation fails.
func (q QuoteDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryQueryIsNotConstructed)
}

// TenantID returns the tenant being quoted.
func (q QuoteDeliveryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Address returns the delivery destination.
func (q QuoteDeliveryQuery) Address() kernel.Address {
	return q.address
}

// Subtotal returns the order subtotal the minimum-order gate is checked
// against.
func (q QuoteDeliveryQuery) Subtotal() kernel.Money {
	return q.subtotal
}

func (q *QuoteDeliveryQuery) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.tenantID = id
	return nil
}

func (q *QuoteDeliveryQuery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	q.address = address
	return nil
}

func (q *QuoteDeliveryQuery) setSubtotal(subtotal kernel.Money) error {
	if err := subtotal.Validate(); err != nil {
		return err
	}

	q.subtotal = subtotal
	return nil
}

// QuoteDeliveryQueryResponse is the pricing decision read model returned to
// checkout. When Deliverable is false every other field is zero; an
// undeliverable address is a valid business outcome, not an error.
//
// Money values are integer cents. MinOrderCents is nil when the winning zone
// imposes no minimum; MeetsMinimum and ShortfallCents are only meaningful
// when it is set.
type QuoteDeliveryQueryResponse struct {
	Deliverable    bool
	ZoneID         *kernel.UUID
	ZoneName       string
	FeeCents       int64
	MinOrderCents  *int64
	MeetsMinimum   bool
	ShortfallCents int64
}
