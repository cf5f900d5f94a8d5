// Package refstore holds the reference tables as immutable in-memory
// indexes. Everything is built once per run; lookups are pure reads, so the
// store is safe to share across concurrently processed invoices.
package refstore

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"rebate-reconciliation/internal/domain"
)

// Store indexes the five reference tables by their normalized join keys.
type Store struct {
	mappings   []domain.RebateMappingRow
	receipts   map[string]map[string]decimal.Decimal // lower(month) -> category -> value
	categories map[string]struct{}
	eanByASIN  map[string]string           // lower(asin) -> ean
	promoByEAN map[string]*decimal.Decimal // NormalizeEAN(ean) -> discount (nil = present but empty)
	events     map[string]domain.EventMapping
}

// New builds a store from loaded reference rows. Tables not needed for the
// invoice kind being processed may be passed as nil/empty; their lookups
// will simply report not-found.
func New(
	mappings []domain.RebateMappingRow,
	receipts *domain.NetReceiptsTable,
	asinEan []domain.AsinEanRow,
	promos []domain.EanPromoRow,
	events []domain.EventMapping,
) *Store {
	s := &Store{
		mappings:   mappings,
		receipts:   make(map[string]map[string]decimal.Decimal),
		categories: make(map[string]struct{}),
		eanByASIN:  make(map[string]string),
		promoByEAN: make(map[string]*decimal.Decimal),
		events:     make(map[string]domain.EventMapping),
	}

	if receipts != nil {
		for _, c := range receipts.Categories {
			s.categories[c] = struct{}{}
		}
		for _, row := range receipts.Rows {
			month := strings.ToLower(strings.TrimSpace(row.Month))
			if month == "" {
				continue
			}
			cells := make(map[string]decimal.Decimal, len(row.Receipts))
			for category, value := range row.Receipts {
				cells[category] = value
			}
			s.receipts[month] = cells
		}
	}

	for _, row := range asinEan {
		asin := strings.ToLower(strings.TrimSpace(row.ASIN))
		if asin == "" {
			continue
		}
		s.eanByASIN[asin] = row.EAN
	}

	for _, row := range promos {
		key := NormalizeEAN(row.EAN)
		if key == "" {
			continue
		}
		if _, exists := s.promoByEAN[key]; exists {
			continue // first row wins
		}
		s.promoByEAN[key] = row.PromoDiscount
	}

	for _, m := range events {
		if _, exists := s.events[m.AgreementID]; exists {
			continue
		}
		s.events[m.AgreementID] = m
	}

	return s
}

// NormalizeEAN trims surrounding whitespace and strips a single trailing
// ".0" left behind by numeric-to-string coercion in the source sheet.
// Applying it twice yields the same result as applying it once.
func NormalizeEAN(ean string) string {
	return strings.TrimSuffix(strings.TrimSpace(ean), ".0")
}

// LookupRebateMapping returns every mapping row whose MDF number contains
// the query as a substring. An empty result means no mapping exists; picking
// between multiple matches is the caller's responsibility.
func (s *Store) LookupRebateMapping(mdfNumber string) []domain.RebateMappingRow {
	var matches []domain.RebateMappingRow
	for _, row := range s.mappings {
		if strings.Contains(row.MDFNumber, mdfNumber) {
			matches = append(matches, row)
		}
	}
	return matches
}

// LookupNetReceipt returns the net receipt value at the intersection of the
// category column and the month row. Month comparison is case-insensitive.
// An unknown category is a schema problem, not a data miss.
func (s *Store) LookupNetReceipt(category, month string) (decimal.Decimal, error) {
	if _, ok := s.categories[category]; !ok {
		return decimal.Zero, &domain.SchemaError{File: "net receipts", MissingColumns: []string{category}}
	}

	cells, ok := s.receipts[strings.ToLower(strings.TrimSpace(month))]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: category %q month %q", domain.ErrUnmatchedNetReceiptPeriod, category, month)
	}
	value, ok := cells[category]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: category %q month %q", domain.ErrUnmatchedNetReceiptPeriod, category, month)
	}
	return value, nil
}

// LookupEAN resolves an ASIN to its EAN, case-insensitively.
func (s *Store) LookupEAN(asin string) (string, error) {
	ean, ok := s.eanByASIN[strings.ToLower(strings.TrimSpace(asin))]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnmatchedAsinEan, asin)
	}
	return ean, nil
}

// LookupPromoDiscount resolves an EAN to its promo discount. A nil value
// with a nil error means the row exists but the discount cell is empty;
// callers report that differently from a missing row.
func (s *Store) LookupPromoDiscount(ean string) (*decimal.Decimal, error) {
	discount, ok := s.promoByEAN[NormalizeEAN(ean)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnmatchedEanPromo, ean)
	}
	return discount, nil
}

// LookupEventMapping resolves an Agreement ID to its event, by exact match.
func (s *Store) LookupEventMapping(agreementID string) (domain.EventMapping, error) {
	m, ok := s.events[agreementID]
	if !ok {
		return domain.EventMapping{}, fmt.Errorf("%w: %s", domain.ErrUnmatchedEventMapping, agreementID)
	}
	return m, nil
}
