// Package tenant provides the Tenant aggregate root. A tenant is one branded
// pizzeria storefront sharing the platform's infrastructure; every delivery
// zone belongs to exactly one tenant and zones never cross tenants.
//
// Key business rules:
//   - Tenants must have a valid unique identifier, name, and slug
//   - Slugs are lowercase URL-safe identifiers, unique across the platform
//   - Deactivated tenants keep their zone configuration but stop quoting
package tenant
