package usecase

import (
	"github.com/shopspring/decimal"
)

// CalculateRebate multiplies the extracted percentage into the net receipt
// value. The percentage is used exactly as extracted: 0.05 stays 0.05 and 5
// stays 5. Extraction from free text is lossy, so any rescaling here would
// silently corrupt the result.
func CalculateRebate(netReceipt, percentage decimal.Decimal) decimal.Decimal {
	return percentage.Mul(netReceipt)
}
