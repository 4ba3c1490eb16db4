package entities

import "strings"

// PriceCatalog maps a normalized service name to its suggested price. The
// catalog is advisory: suggestions pre-fill item values but never override the
// order total. It is persisted as a single settings blob, so every mutation
// rewrites the whole map remotely.
type PriceCatalog map[string]float64

// NormalizeServiceName is the canonical key form: trimmed and uppercased.
func NormalizeServiceName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Suggest returns the catalog price for the description, matching exactly
// after normalization. The second result reports whether a suggestion exists.
func (c PriceCatalog) Suggest(description string) (float64, bool) {
	v, ok := c[NormalizeServiceName(description)]
	return v, ok
}
