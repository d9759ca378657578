// Package catalog holds the static registry of World Bank indicators and
// countries supported by the pipeline. Lookups are pure and perform no I/O;
// listing order is the registry's insertion order so the presentation layer
// renders the same order on every run.
package catalog

import "fmt"

// IndicatorKey identifies a measurable quantity tracked per country over time.
type IndicatorKey struct {
	Category string
	Name     string // human-readable display name
	Code     string // World Bank indicator code, e.g. NY.GDP.MKTP.CD
}

// CountryKey identifies a supported country.
type CountryKey struct {
	ISO3 string
	Name string
}

// NotFoundError reports a country, category, or indicator name that is not in
// the registry. The unresolved input is carried verbatim so callers can
// surface it to the user.
type NotFoundError struct {
	Kind string // "country", "category", or "indicator"
	Name string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

type category struct {
	name       string
	indicators []IndicatorKey
}

// Categories returns the category names in registry order.
func Categories() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// Indicators returns the indicators of a category in registry order.
func Indicators(categoryName string) ([]IndicatorKey, error) {
	for _, c := range categories {
		if c.name == categoryName {
			out := make([]IndicatorKey, len(c.indicators))
			copy(out, c.indicators)
			return out, nil
		}
	}
	return nil, &NotFoundError{Kind: "category", Name: categoryName}
}

// ResolveIndicator maps a (category, display name) pair to its IndicatorKey.
func ResolveIndicator(categoryName, displayName string) (IndicatorKey, error) {
	indicators, err := Indicators(categoryName)
	if err != nil {
		return IndicatorKey{}, err
	}
	for _, ind := range indicators {
		if ind.Name == displayName {
			return ind, nil
		}
	}
	return IndicatorKey{}, &NotFoundError{Kind: "indicator", Name: displayName}
}

// Countries returns the supported countries in registry order.
func Countries() []CountryKey {
	out := make([]CountryKey, len(countries))
	copy(out, countries)
	return out
}

// ResolveCountry maps a country display name to its CountryKey.
func ResolveCountry(displayName string) (CountryKey, error) {
	for _, c := range countries {
		if c.Name == displayName {
			return c, nil
		}
	}
	return CountryKey{}, &NotFoundError{Kind: "country", Name: displayName}
}

// ResolveCountryCode maps an ISO3 code to its CountryKey.
func ResolveCountryCode(iso3 string) (CountryKey, error) {
	for _, c := range countries {
		if c.ISO3 == iso3 {
			return c, nil
		}
	}
	return CountryKey{}, &NotFoundError{Kind: "country", Name: iso3}
}
