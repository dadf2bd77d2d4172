package http

import (
	"net/http"

	"zones/internal/core/application/usecases/commands"
	"zones/internal/core/application/usecases/queries"
	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
	"zones/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTenantHandler commands.CreateTenantCommandHandler
	replaceZonesHandler commands.ReplaceZonesCommandHandler

	// Query handlers
	getZonesHandler      queries.GetZonesQueryHandler
	quoteDeliveryHandler queries.QuoteDeliveryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTenantHandler commands.CreateTenantCommandHandler,
	replaceZonesHandler commands.ReplaceZonesCommandHandler,
	getZonesHandler queries.GetZonesQueryHandler,
	quoteDeliveryHandler queries.QuoteDeliveryQueryHandler,
) *Server {
	return &Server{
		createTenantHandler:  createTenantHandler,
		replaceZonesHandler:  replaceZonesHandler,
		getZonesHandler:      getZonesHandler,
		quoteDeliveryHandler: quoteDeliveryHandler,
	}
}

// GetHealth handles GET /api/v1/health - service liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// CreateTenant handles POST /api/v1/tenants - registers a new storefront.
func (s *Server) CreateTenant(ctx echo.Context) error {
	var newTenant servers.NewTenant
	if err := ctx.Bind(&newTenant); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateTenantCommand(newTenant.Name, newTenant.Slug)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant data: " + err.Error(),
		})
	}

	if handleErr := s.createTenantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create tenant",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.Tenant{
		Id:     cmd.TenantID().Bytes(),
		Name:   cmd.Name(),
		Slug:   cmd.Slug(),
		Active: true,
	})
}

// GetZones handles GET /api/v1/tenants/{tenantId}/zones - lists the tenant's
// zone configuration.
func (s *Server) GetZones(ctx echo.Context, tenantId openapitypes.UUID) error {
	tenantID, err := kernel.UUIDFromBytes(tenantId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant identifier",
		})
	}

	query, err := queries.NewGetZonesQuery(tenantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant identifier",
		})
	}

	zones, err := s.getZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve zones",
		})
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{
			Id:            z.ID.Bytes(),
			Name:          z.Name,
			FeeCents:      z.FeeCents,
			MinOrderCents: z.MinOrderCents,
			Priority:      z.Priority,
			PostalCodes:   z.PostalCodes,
			CityNames:     z.CityNames,
			CityParts:     z.CityParts,
			Active:        z.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReplaceZones handles PUT /api/v1/tenants/{tenantId}/zones - swaps the
// tenant's full zone configuration atomically.
func (s *Server) ReplaceZones(ctx echo.Context, tenantId openapitypes.UUID) error {
	tenantID, err := kernel.UUIDFromBytes(tenantId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant identifier",
		})
	}

	var body servers.ReplaceZonesJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	zones := make([]*zone.DeliveryZone, 0, len(body))
	for _, newZone := range body {
		z, zoneErr := toDomainZone(tenantID, newZone)
		if zoneErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid zone data: " + zoneErr.Error(),
			})
		}
		zones = append(zones, z)
	}

	cmd, err := commands.NewReplaceZonesCommand(tenantID, zones)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid zone configuration: " + err.Error(),
		})
	}

	if handleErr := s.replaceZonesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to replace zones",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDeliveryQuote handles POST /api/v1/tenants/{tenantId}/delivery-quotes.
// An undeliverable address is a 200 response with deliverable=false; only
// malformed input is an error.
func (s *Server) CreateDeliveryQuote(ctx echo.Context, tenantId openapitypes.UUID) error {
	tenantID, err := kernel.UUIDFromBytes(tenantId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant identifier",
		})
	}

	var request servers.QuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cityPart := ""
	if request.Address.CityPart != nil {
		cityPart = *request.Address.CityPart
	}

	address, err := kernel.NewAddress(request.Address.City, cityPart, request.Address.PostalCode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid address: " + err.Error(),
		})
	}

	subtotal, err := kernel.NewMoney(request.SubtotalCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subtotal: " + err.Error(),
		})
	}

	query, err := queries.NewQuoteDeliveryQuery(tenantID, address, subtotal)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote request: " + err.Error(),
		})
	}

	quote, err := s.quoteDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute quote",
		})
	}

	return ctx.JSON(http.StatusOK, toQuoteResponse(quote))
}

// toDomainZone builds a zone aggregate from its API representation.
// Zones are created with fresh identifiers; the replace command reconciles
// them against stored identities by name.
func toDomainZone(tenantID kernel.UUID, newZone servers.NewZone) (*zone.DeliveryZone, error) {
	fee, err := kernel.NewMoney(newZone.FeeCents)
	if err != nil {
		return nil, err
	}

	var minOrder *kernel.Money
	if newZone.MinOrderCents != nil {
		m, minErr := kernel.NewMoney(*newZone.MinOrderCents)
		if minErr != nil {
			return nil, minErr
		}
		minOrder = &m
	}

	z, err := zone.NewDeliveryZone(
		kernel.NewUUID(),
		tenantID,
		newZone.Name,
		fee,
		minOrder,
		newZone.Priority,
		derefSlice(newZone.PostalCodes),
		derefSlice(newZone.CityNames),
		derefSlice(newZone.CityParts),
	)
	if err != nil {
		return nil, err
	}

	if newZone.Active != nil && !*newZone.Active {
		z.Deactivate()
	}

	return z, nil
}

func toQuoteResponse(quote queries.QuoteDeliveryQueryResponse) servers.DeliveryQuote {
	if !quote.Deliverable {
		return servers.DeliveryQuote{Deliverable: false}
	}

	zoneID := quote.ZoneID.Bytes()
	zoneName := quote.ZoneName
	feeCents := quote.FeeCents

	response := servers.DeliveryQuote{
		Deliverable: true,
		ZoneId:      &zoneID,
		ZoneName:    &zoneName,
		FeeCents:    &feeCents,
	}

	if quote.MinOrderCents != nil {
		response.MinOrderCents = quote.MinOrderCents
		meets := quote.MeetsMinimum
		shortfall := quote.ShortfallCents
		response.MeetsMinimum = &meets
		response.ShortfallCents = &shortfall
	}

	return response
}

func derefSlice(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}
