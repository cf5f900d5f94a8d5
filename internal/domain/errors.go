package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Batch-fatal errors. No lookup can succeed once reference data is missing
// or its format has changed, so these abort the whole run.
var (
	ErrDataSourceUnavailable = errors.New("reference data source unavailable")
	ErrSchemaMismatch        = errors.New("reference data schema mismatch")
)

// Per-document errors. The orchestrator converts these into report markers
// instead of letting them escape past a single invoice (or line item).
var (
	ErrUnmatchedMDFNumber        = errors.New("no rebate mapping for mdf number")
	ErrUnmatchedNetReceiptPeriod = errors.New("no net receipt for category and month")
	ErrUnmatchedAsinEan          = errors.New("no ean for asin")
	ErrUnmatchedEanPromo         = errors.New("no promo discount for ean")
	ErrUnmatchedEventMapping     = errors.New("no event mapping for agreement id")
	ErrInvalidNumericInput       = errors.New("invalid numeric input")
	ErrExtractionFailure         = errors.New("field extraction failed")
)

// SchemaError reports which expected columns are absent from a reference
// table. It matches errors.Is(err, ErrSchemaMismatch).
type SchemaError struct {
	File           string
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns in %s: %s", e.File, strings.Join(e.MissingColumns, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}
