package domain

import "github.com/shopspring/decimal"

// MatchStatus is the verdict for a rebate invoice. On pipeline failure the
// field carries an error indicator instead, so the report schema stays fixed.
type MatchStatus string

const (
	MatchFully     MatchStatus = "Fully Matched"
	MatchPartially MatchStatus = "Partially Matched"
	MatchNot       MatchStatus = "Not Matched"

	StatusExtractionFailed    MatchStatus = "Error: extraction failed"
	StatusUnmatchedMDF        MatchStatus = "Error: no rebate mapping for MDF number"
	StatusUnmatchedPeriod     MatchStatus = "Error: no net receipt for category and month"
	StatusInvalidNumericInput MatchStatus = "Error: invalid numeric input"
)

// BoundsCheck is the plausibility verdict on a calculated rebate value.
// It is reported alongside the match status and never overrides it.
type BoundsCheck string

const (
	BoundsValid        BoundsCheck = "Valid"
	BoundsInvalid      BoundsCheck = "Invalid"
	BoundsNotEvaluated BoundsCheck = "not evaluated"
)

// LineResult is the per-line verdict for an event invoice.
type LineResult string

const (
	LineMatched    LineResult = "matched"
	LineNotMatched LineResult = "not matched"
)

// Markers used in place of values that could not be resolved. Downstream
// consumers rely on every key being present, so failures are spelled out
// rather than omitted.
const (
	MarkerNotFound     = "not found"
	MarkerMissingPromo = "Missing Promo Discount"
	MarkerNoMapping    = "no mapping found"
)

// RebateReport is the fixed-shape output record for one rebate invoice.
// RebateValue is null when the calculation never ran.
type RebateReport struct {
	SourceFile       string           `json:"source_file"`
	InvoiceNumber    string           `json:"invoice_number"`
	MDFNumber        string           `json:"mdf_number"`
	InvoiceTotal     decimal.Decimal  `json:"invoice_total"`
	InvoiceMonth     string           `json:"invoice_month"`
	RebateName       string           `json:"rebate_name"`
	Category         string           `json:"category"`
	RebateValue      *decimal.Decimal `json:"rebate_value"`
	MatchStatus      MatchStatus      `json:"match_status"`
	RebateValueCheck BoundsCheck      `json:"rebate_value_check"`
	Error            string           `json:"error"`
}

// EventLineReport is one reconciled line of an event invoice. PromoDiscount
// is the decimal rendered as a string, or one of the failure markers.
type EventLineReport struct {
	ASIN          string          `json:"asin"`
	RebatePerUnit decimal.Decimal `json:"rebate_per_unit"`
	LineTotal     decimal.Decimal `json:"line_total"`
	EAN           string          `json:"ean"`
	PromoDiscount string          `json:"promo_discount"`
	Result        LineResult      `json:"result"`
}

// EventReport is the fixed-shape output record for one event invoice.
type EventReport struct {
	SourceFile       string            `json:"source_file"`
	InvoiceData      []EventLineReport `json:"invoice_data"`
	AgreementID      string            `json:"agreement_id"`
	EventDescription string            `json:"event_description"`
	EventID          string            `json:"event_id"`
	Error            string            `json:"error"`
}
