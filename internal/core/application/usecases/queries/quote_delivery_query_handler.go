package queries

import (
	"context"
	"log/slog"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
	"zones/internal/core/domain/services"
)

// ActiveZoneReader supplies the active zone snapshot quote resolution runs
// against. Satisfied by the zone repository.
type ActiveZoneReader interface {
	GetActiveByTenant(ctx context.Context, tenantID kernel.UUID) ([]*zone.DeliveryZone, error)
}

// QuoteDeliveryQueryHandler resolves a quote request against the tenant's
// active zones and derives the pricing decision.
//
// Unlike the other read handlers it goes through domain aggregates rather
// than raw SQL: matching and priority resolution are domain logic, and the
// read must see exactly the semantics the zone aggregate defines.
type QuoteDeliveryQueryHandler struct {
	zones    ActiveZoneReader
	resolver services.ZoneResolver
	pricing  services.PricingService
	log      *slog.Logger
}

// NewQuoteDeliveryQueryHandler creates a handler for delivery quote queries.
func NewQuoteDeliveryQueryHandler(zones ActiveZoneReader, log *slog.Logger) QuoteDeliveryQueryHandler {
	return QuoteDeliveryQueryHandler{
		zones:    zones,
		resolver: services.NewZoneResolver(),
		pricing:  services.NewPricingService(),
		log:      log,
	}
}

// Handle executes the quote request.
//
// A tenant with no active zones, or an address no zone covers, yields an
// undeliverable response with a nil error. Ties between equal-priority zones
// resolve deterministically and are logged as a configuration smell; they
// never fail the request.
func (h QuoteDeliveryQueryHandler) Handle(
	ctx context.Context,
	query QuoteDeliveryQuery,
) (QuoteDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	activeZones, err := h.zones.GetActiveByTenant(ctx, query.TenantID())
	if err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	matched, err := h.resolver.MatchZones(activeZones, query.Address())
	if err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	resolution := h.resolver.Resolve(matched)
	if resolution.Ambiguous() {
		h.log.WarnContext(ctx, "equal-priority zones overlap at address",
			"tenant_id", query.TenantID().String(),
			"zone_id", resolution.Zone().ID().String(),
			"zone_name", resolution.Zone().Name(),
			"priority", resolution.Zone().Priority(),
		)
	}

	result, err := h.pricing.PriceOrder(resolution, query.Subtotal())
	if err != nil {
		return QuoteDeliveryQueryResponse{}, err
	}

	return toQuoteResponse(resolution, result), nil
}

func toQuoteResponse(resolution services.Resolution, result services.PricingResult) QuoteDeliveryQueryResponse {
	if !result.Deliverable() {
		return QuoteDeliveryQueryResponse{Deliverable: false}
	}

	winner := resolution.Zone()
	winnerID := winner.ID()

	response := QuoteDeliveryQueryResponse{
		Deliverable: true,
		ZoneID:      &winnerID,
		ZoneName:    winner.Name(),
		FeeCents:    result.Fee().Cents(),
	}

	if result.HasMinimum() {
		minCents := result.MinOrder().Cents()
		response.MinOrderCents = &minCents
		response.MeetsMinimum = result.MeetsMinimum()
		response.ShortfallCents = result.Shortfall().Cents()
	}

	return response
}
