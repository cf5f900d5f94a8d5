package domain

import "github.com/shopspring/decimal"

// InvoiceKind selects which reconciliation pipeline a document goes through.
type InvoiceKind string

const (
	KindRebate InvoiceKind = "rebate"
	KindEvent  InvoiceKind = "event"
)

// RebateInvoiceFields holds the values extracted from a rebate-style invoice.
// LinePercentage is the fraction exactly as it appears in the document
// (0.05 means 0.05, never 5%); it must not be rescaled after extraction.
type RebateInvoiceFields struct {
	InvoiceNumber  string          `json:"invoice_number"`
	MDFNumber      string          `json:"mdf_number"`
	InvoiceTotal   decimal.Decimal `json:"invoice_total"`
	InvoiceMonth   string          `json:"invoice_month"`
	LinePercentage decimal.Decimal `json:"line_percentage"`
}

// EventLineItem is one ASIN line of an event/promo invoice.
type EventLineItem struct {
	ASIN          string          `json:"asin"`
	RebatePerUnit decimal.Decimal `json:"rebate_per_unit"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// EventInvoiceFields holds the values extracted from an event-style invoice.
// MDFNumber doubles as the Agreement ID for the event mapping lookup.
type EventInvoiceFields struct {
	MDFNumber string          `json:"mdf_number"`
	LineItems []EventLineItem `json:"line_items"`
}
