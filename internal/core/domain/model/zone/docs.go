// Package zone provides the DeliveryZone aggregate root. A zone is a named
// delivery area owned by a single tenant, carrying a geographic matcher
// (postal codes, city names, city parts) and a pricing policy (delivery fee,
// optional minimum order value, priority).
//
// Key business rules:
//   - Matcher strings are canonicalized at construction (diacritics stripped,
//     lowercased), so zone definitions carry a single spelling per area
//   - A zone must have at least one postal code or city name to ever match
//   - An empty city-part set means "whole city"
//   - Inactive zones never match an address
//   - Fees and minimums are integer cents and never negative
//
// Zones are written only by administrative seeding; the order-placement path
// treats them as a read-only snapshot per quote.
package zone
