package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roadmap/pkg/domain/types"
)

// Country is a benchmarked country
type Country struct {
	Code types.CountryCode `json:"code" toml:"code"`
	Name string            `json:"name" toml:"name"`
}

// CountryRegistry holds the benchmarked countries in display order
type CountryRegistry struct {
	entries map[types.CountryCode]Country
	order   []types.CountryCode
}

// NewCountryRegistry creates a registry holding the given countries
func NewCountryRegistry(countries ...Country) *CountryRegistry {
	r := &CountryRegistry{
		entries: make(map[types.CountryCode]Country),
	}
	for _, c := range countries {
		r.Register(c)
	}
	return r
}

// Register adds a country, replacing the name of an already known code
func (r *CountryRegistry) Register(c Country) {
	if _, exists := r.entries[c.Code]; !exists {
		r.order = append(r.order, c.Code)
	}
	r.entries[c.Code] = c
}

// Get retrieves a country by code
func (r *CountryRegistry) Get(code types.CountryCode) (Country, error) {
	c, ok := r.entries[code]
	if !ok {
		return Country{}, goerr.Wrap(ErrCountryNotFound, "country not found",
			goerr.V(CountryKey, code))
	}
	return c, nil
}

// Has reports whether the code is registered
func (r *CountryRegistry) Has(code types.CountryCode) bool {
	_, ok := r.entries[code]
	return ok
}

// List returns all countries in registration order
func (r *CountryRegistry) List() []Country {
	result := make([]Country, 0, len(r.order))
	for _, code := range r.order {
		result = append(result, r.entries[code])
	}
	return result
}

// Codes returns all country codes in registration order
func (r *CountryRegistry) Codes() []types.CountryCode {
	result := make([]types.CountryCode, len(r.order))
	copy(result, r.order)
	return result
}
