package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal coerces a raw extracted string into a decimal, tolerating
// thousands separators, currency symbols and surrounding whitespace. A value
// that cannot be coerced fails with ErrInvalidNumericInput so callers can
// tell a numeric problem apart from a lookup miss.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	for _, sym := range []string{",", "£", "€", "$"} {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumericInput, raw)
	}
	return d, nil
}
