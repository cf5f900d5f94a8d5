package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"rebate-reconciliation/internal/domain"
)

// ReferenceStore exposes the read-only lookups over the reference tables.
// The usecase layer depends on this interface, not on a concrete store.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type ReferenceStore interface {
	LookupRebateMapping(mdfNumber string) []domain.RebateMappingRow
	LookupNetReceipt(category, month string) (decimal.Decimal, error)
	LookupEAN(asin string) (string, error)
	LookupPromoDiscount(ean string) (*decimal.Decimal, error)
	LookupEventMapping(agreementID string) (domain.EventMapping, error)
}

// FieldExtractor pulls typed fields out of raw invoice text. Implementations
// are best-effort (a remote language model); any failure is recoverable at
// the single-document level.
type FieldExtractor interface {
	ExtractRebateFields(ctx context.Context, text string) (domain.RebateInvoiceFields, error)
	ExtractEventFields(ctx context.Context, text string) (domain.EventInvoiceFields, error)
}

// DocumentDecoder turns a document file into plain text, concatenating
// content across pages in order.
type DocumentDecoder interface {
	Decode(path string) (string, error)
}
