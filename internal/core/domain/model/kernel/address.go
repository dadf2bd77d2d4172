package kernel

import (
	"errors"
	"strings"
	"unicode"

	"zones/internal/pkg/errs"
	"zones/internal/pkg/guard"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
// Addresses must be created via the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// stripDiacritics decomposes text (NFD), removes combining marks, and
// recomposes it (NFC), turning "Ružinov" into "Ruzinov".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText produces the canonical matching form of address text:
// diacritics stripped, lowercased, and inner whitespace collapsed.
// Zone matcher sets and incoming addresses are both normalized with this
// function, so "Ružinov", "ruzinov" and "  RUŽINOV " all match the same
// stored entry. Zone definitions therefore carry a single canonical spelling
// instead of pre-enumerated diacritic variants.
func NormalizeText(s string) string {
	stripped, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		// Transform fails only on invalid UTF-8; fall back to the raw text
		// so matching degrades to exact comparison instead of erroring.
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// NormalizePostalCode produces the canonical matching form of a postal code:
// all whitespace removed. "811 05" and "81105" are the same code.
func NormalizePostalCode(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Address is an immutable value object describing a delivery destination as
// collected at checkout. City and postal code are required; the city part
// (district) is optional because customers do not always know it.
//
// The raw field values are preserved for display; canonical matching keys are
// computed once at construction.
//
// Example:
//
//	addr, err := kernel.NewAddress("Bratislava", "Ružinov", "821 01")
//	if err != nil {
//	    // city or postal code missing
//	}
//	addr.CityKey()     // "bratislava"
//	addr.CityPartKey() // "ruzinov"
//	addr.PostalKey()   // "82101"
type Address struct { //nolint:recvcheck //using for validation
	city       string
	cityPart   string
	postalCode string

	cityKey     string
	cityPartKey string
	postalKey   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// City and postal code must be non-empty after trimming; cityPart may be
// empty when the district is unknown.
func NewAddress(city string, cityPart string, postalCode string) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setCity(city),
		a.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	a.cityPart = strings.TrimSpace(cityPart)
	a.cityPartKey = NormalizeText(cityPart)

	return a, nil
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the city name as supplied at checkout.
func (a Address) City() string {
	return a.city
}

// CityPart returns the district name as supplied, or "" when unknown.
func (a Address) CityPart() string {
	return a.cityPart
}

// PostalCode returns the postal code as supplied at checkout.
func (a Address) PostalCode() string {
	return a.postalCode
}

// HasCityPart reports whether a district was supplied.
func (a Address) HasCityPart() bool {
	return a.cityPartKey != ""
}

// CityKey returns the canonical matching form of the city name.
func (a Address) CityKey() string {
	return a.cityKey
}

// CityPartKey returns the canonical matching form of the district name,
// or "" when no district was supplied.
func (a Address) CityPartKey() string {
	return a.cityPartKey
}

// PostalKey returns the canonical matching form of the postal code.
func (a Address) PostalKey() string {
	return a.postalKey
}

func (a *Address) setCity(city string) error {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = trimmed
	a.cityKey = NormalizeText(trimmed)
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	key := NormalizePostalCode(postalCode)
	if key == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = strings.TrimSpace(postalCode)
	a.postalKey = key
	return nil
}
