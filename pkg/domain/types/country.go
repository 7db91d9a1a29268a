package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// CountryCode is an ISO 3166-1 alpha-2 code such as "BR"
type CountryCode string

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Validate checks if the CountryCode is two uppercase letters
func (c CountryCode) Validate() error {
	if c == "" {
		return goerr.New("country code cannot be empty")
	}
	if !countryCodePattern.MatchString(string(c)) {
		return goerr.New("country code must be two uppercase letters", goerr.V("code", c))
	}
	return nil
}

func (c CountryCode) String() string {
	return string(c)
}
