// Package services provides domain services that orchestrate business
// decisions across multiple domain entities. It implements the decision
// pipeline that does not naturally belong to a single aggregate root.
//
// The package includes:
//   - ZoneResolver: matches an address against a tenant's zones and picks the winner
//   - PricingService: derives the delivery fee and minimum-order gate from a resolution
//
// Both services are pure and stateless: every invocation is an independent
// computation over the zone snapshot it is given, safe to run concurrently
// without locking.
package services
