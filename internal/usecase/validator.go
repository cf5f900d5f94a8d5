package usecase

import (
	"github.com/shopspring/decimal"

	"rebate-reconciliation/internal/domain"
)

// rebateTolerance is the band, in currency units, within which a rebate
// invoice counts as fully matched.
var rebateTolerance = decimal.NewFromInt(500)

var half = decimal.NewFromFloat(0.5)

// ClassifyRebateMatch applies the three-way rebate verdict. The tolerance
// band wins over the direction rule: a difference of exactly 500 is Fully
// Matched even though the totals differ.
func ClassifyRebateMatch(rebateValue, invoiceTotal decimal.Decimal) domain.MatchStatus {
	if rebateValue.Sub(invoiceTotal).Abs().LessThanOrEqual(rebateTolerance) {
		return domain.MatchFully
	}
	if invoiceTotal.LessThan(rebateValue) {
		return domain.MatchPartially
	}
	return domain.MatchNot
}

// CheckRebateBounds flags a calculated rebate value outside the plausible
// range [0, 0.5 x invoice total]. This is a sanity guard reported next to
// the match status, never a substitute for it.
func CheckRebateBounds(rebateValue, invoiceTotal decimal.Decimal) domain.BoundsCheck {
	if rebateValue.IsNegative() || rebateValue.GreaterThan(invoiceTotal.Mul(half)) {
		return domain.BoundsInvalid
	}
	return domain.BoundsValid
}

// ClassifyEventLine compares a line's rebate per unit against its promo
// discount. Unlike the rebate flow this is exact equality with no tolerance
// band; the two policies are intentionally different business rules.
func ClassifyEventLine(rebatePerUnit decimal.Decimal, promoDiscount *decimal.Decimal) domain.LineResult {
	if promoDiscount == nil {
		return domain.LineNotMatched
	}
	if rebatePerUnit.Equal(*promoDiscount) {
		return domain.LineMatched
	}
	return domain.LineNotMatched
}
