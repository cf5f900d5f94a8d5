package domain

import "github.com/shopspring/decimal"

// RebateMappingRow maps an MDF number to a rebate name and its category.
// The category is the join key into the net receipts table.
type RebateMappingRow struct {
	MDFNumber  string `json:"mdf_number"`
	RebateName string `json:"rebate_name"`
	Category   string `json:"category"`
}

// NetReceiptsRow is one month of net receipts, one value per category column.
type NetReceiptsRow struct {
	Month    string
	Receipts map[string]decimal.Decimal
}

// NetReceiptsTable keeps the category columns seen in the header so a lookup
// can tell an unknown category (schema problem) apart from a missing month.
type NetReceiptsTable struct {
	Categories []string
	Rows       []NetReceiptsRow
}

// AsinEanRow maps an Amazon ASIN to its EAN/UPC barcode.
type AsinEanRow struct {
	ASIN string
	EAN  string
}

// EanPromoRow maps an EAN to its promo discount. PromoDiscount is nil when
// the source cell exists but is empty, which is reported differently from a
// missing row.
type EanPromoRow struct {
	EAN           string
	PromoDiscount *decimal.Decimal
}

// EventMapping maps an Agreement ID to its promotional event.
type EventMapping struct {
	AgreementID      string `json:"agreement_id"`
	EventDescription string `json:"event_description"`
	EventID          string `json:"event_id"`
}
