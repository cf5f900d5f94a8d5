package usecase

import (
	"context"
	"errors"

	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/logger"

	"github.com/rs/zerolog"
)

// ReconciliationUseCase runs the per-document pipelines: field extraction,
// reference lookups, calculation, validation and report assembly. A report
// is emitted for every document reaching the pipeline; stage failures become
// markers in the report instead of dropped records.
type ReconciliationUseCase struct {
	refs      ReferenceStore
	extractor FieldExtractor
	log       zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(refs ReferenceStore, extractor FieldExtractor) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		refs:      refs,
		extractor: extractor,
		log:       logger.WithComponent("reconciliation"),
	}
}

// ReconcileRebateInvoice runs the rebate pipeline over one document's text.
// The returned error is reserved for batch-fatal conditions (a reference
// table whose schema does not match); everything else lands in the report.
func (uc *ReconciliationUseCase) ReconcileRebateInvoice(ctx context.Context, sourceFile, text string) (domain.RebateReport, error) {
	report := domain.RebateReport{
		SourceFile:       sourceFile,
		RebateName:       domain.MarkerNotFound,
		Category:         domain.MarkerNotFound,
		RebateValueCheck: domain.BoundsNotEvaluated,
	}

	fields, err := uc.extractor.ExtractRebateFields(ctx, text)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", sourceFile).Msg("Rebate field extraction failed")
		report.Error = err.Error()
		if errors.Is(err, domain.ErrInvalidNumericInput) {
			report.MatchStatus = domain.StatusInvalidNumericInput
		} else {
			report.MatchStatus = domain.StatusExtractionFailed
		}
		return report, nil
	}

	report.InvoiceNumber = fields.InvoiceNumber
	report.MDFNumber = fields.MDFNumber
	report.InvoiceTotal = fields.InvoiceTotal
	report.InvoiceMonth = fields.InvoiceMonth

	rows := uc.refs.LookupRebateMapping(fields.MDFNumber)
	if len(rows) == 0 {
		uc.log.Warn().Str("file", sourceFile).Str("mdf_number", fields.MDFNumber).Msg("No rebate mapping found")
		report.MatchStatus = domain.StatusUnmatchedMDF
		report.Error = domain.ErrUnmatchedMDFNumber.Error()
		return report, nil
	}
	if len(rows) > 1 {
		uc.log.Warn().
			Str("file", sourceFile).
			Str("mdf_number", fields.MDFNumber).
			Int("matches", len(rows)).
			Msg("Ambiguous rebate mapping, using first row")
	}
	mapping := rows[0]
	report.RebateName = mapping.RebateName
	report.Category = mapping.Category

	netReceipt, err := uc.refs.LookupNetReceipt(mapping.Category, fields.InvoiceMonth)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaMismatch) {
			return report, err
		}
		uc.log.Warn().Err(err).Str("file", sourceFile).Msg("No net receipt for period")
		report.MatchStatus = domain.StatusUnmatchedPeriod
		report.Error = err.Error()
		return report, nil
	}

	rebateValue := CalculateRebate(netReceipt, fields.LinePercentage)
	report.RebateValue = &rebateValue
	report.MatchStatus = ClassifyRebateMatch(rebateValue, fields.InvoiceTotal)
	report.RebateValueCheck = CheckRebateBounds(rebateValue, fields.InvoiceTotal)

	uc.log.Info().
		Str("file", sourceFile).
		Str("invoice_number", fields.InvoiceNumber).
		Str("rebate_value", rebateValue.String()).
		Str("match_status", string(report.MatchStatus)).
		Msg("Rebate invoice reconciled")

	return report, nil
}

// ReconcileEventInvoice runs the event pipeline over one document's text.
// Lines are resolved independently: one line's lookup failure never blocks
// the others, and the invoice-level event mapping is resolved once.
func (uc *ReconciliationUseCase) ReconcileEventInvoice(ctx context.Context, sourceFile, text string) (domain.EventReport, error) {
	report := domain.EventReport{
		SourceFile:       sourceFile,
		InvoiceData:      []domain.EventLineReport{},
		EventDescription: domain.MarkerNoMapping,
		EventID:          domain.MarkerNoMapping,
	}

	fields, err := uc.extractor.ExtractEventFields(ctx, text)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", sourceFile).Msg("Event field extraction failed")
		report.Error = err.Error()
		return report, nil
	}
	report.AgreementID = fields.MDFNumber

	for _, item := range fields.LineItems {
		report.InvoiceData = append(report.InvoiceData, uc.reconcileEventLine(item))
	}

	mapping, err := uc.refs.LookupEventMapping(fields.MDFNumber)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", sourceFile).Msg("No event mapping found")
	} else {
		report.EventDescription = mapping.EventDescription
		report.EventID = mapping.EventID
	}

	uc.log.Info().
		Str("file", sourceFile).
		Str("agreement_id", fields.MDFNumber).
		Int("lines", len(report.InvoiceData)).
		Msg("Event invoice reconciled")

	return report, nil
}

func (uc *ReconciliationUseCase) reconcileEventLine(item domain.EventLineItem) domain.EventLineReport {
	line := domain.EventLineReport{
		ASIN:          item.ASIN,
		RebatePerUnit: item.RebatePerUnit,
		LineTotal:     item.LineTotal,
		Result:        domain.LineNotMatched,
	}

	ean, err := uc.refs.LookupEAN(item.ASIN)
	if err != nil {
		uc.log.Debug().Err(err).Str("asin", item.ASIN).Msg("EAN lookup failed")
		line.EAN = domain.MarkerNotFound
		line.PromoDiscount = domain.MarkerNotFound
		return line
	}
	line.EAN = ean

	discount, err := uc.refs.LookupPromoDiscount(ean)
	if err != nil {
		uc.log.Debug().Err(err).Str("ean", ean).Msg("Promo discount lookup failed")
		line.PromoDiscount = domain.MarkerNotFound
		return line
	}
	if discount == nil {
		line.PromoDiscount = domain.MarkerMissingPromo
		return line
	}

	line.PromoDiscount = discount.String()
	line.Result = ClassifyEventLine(item.RebatePerUnit, discount)
	return line
}
