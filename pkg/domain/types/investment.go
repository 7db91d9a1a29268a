package types

import "fmt"

// Investment is the rough cost bracket of implementing a practice
type Investment string

const (
	InvestmentLow           Investment = "LOW"
	InvestmentMedium        Investment = "MEDIUM"
	InvestmentHigh          Investment = "HIGH"
	InvestmentNotApplicable Investment = "NOT_APPLICABLE"
)

// IsValid checks if the investment bracket is known. Empty is allowed and
// means the bracket was not filled in.
func (i Investment) IsValid() bool {
	switch i {
	case "", InvestmentLow, InvestmentMedium, InvestmentHigh, InvestmentNotApplicable:
		return true
	default:
		return false
	}
}

// ParseInvestment parses a string into an Investment
func ParseInvestment(s string) (Investment, error) {
	inv := Investment(s)
	if !inv.IsValid() {
		return "", fmt.Errorf("invalid investment: %s", s)
	}
	return inv, nil
}
