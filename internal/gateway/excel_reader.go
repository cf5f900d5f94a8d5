package gateway

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/logger"
)

// Column names as they appear in the source workbooks. Renaming any of them
// is a schema-compatibility break.
const (
	colMDFNumber   = "MDF Number"
	colRebates     = "Rebates"
	colCategory    = "Category"
	colMonth       = "Month"
	colASIN        = "ASIN"
	colEAN         = "EAN_UPC"
	colPromoEAN    = "Consumer Unit EAN/UPC Code"
	colPromo       = "PROMO DISCOUNT £"
	colAgreementID = "Agreement ID"
	colEventDesc   = "Event Description"
	colEventID     = "Event ID"
)

// ExcelReferenceRepository reads the xlsx reference tables. Each Load method
// reads the first sheet of its workbook once; the rows are indexed by the
// reference store afterwards.
type ExcelReferenceRepository struct {
	log zerolog.Logger
}

// NewExcelReferenceRepository creates a new repository instance.
func NewExcelReferenceRepository() *ExcelReferenceRepository {
	return &ExcelReferenceRepository{log: logger.WithComponent("excel-reader")}
}

// LoadRebateMappings reads the MDF number -> rebate name/category table.
func (r *ExcelReferenceRepository) LoadRebateMappings(path string) ([]domain.RebateMappingRow, error) {
	rows, idx, err := r.readSheet(path, colMDFNumber, colRebates, colCategory)
	if err != nil {
		return nil, err
	}

	mappings := make([]domain.RebateMappingRow, 0, len(rows))
	for _, row := range rows {
		mdf := getCell(row, idx[colMDFNumber])
		if mdf == "" {
			continue
		}
		mappings = append(mappings, domain.RebateMappingRow{
			MDFNumber:  mdf,
			RebateName: getCell(row, idx[colRebates]),
			Category:   getCell(row, idx[colCategory]),
		})
	}
	return mappings, nil
}

// LoadNetReceipts reads the month-by-category net receipts table. Every
// column except Month is treated as a category column.
func (r *ExcelReferenceRepository) LoadNetReceipts(path string) (*domain.NetReceiptsTable, error) {
	header, rows, idx, err := r.readSheetWithHeader(path, colMonth)
	if err != nil {
		return nil, err
	}

	table := &domain.NetReceiptsTable{}
	for _, h := range header {
		h = strings.TrimSpace(h)
		if h == "" || h == colMonth {
			continue
		}
		table.Categories = append(table.Categories, h)
	}
	if len(table.Categories) == 0 {
		return nil, &domain.SchemaError{File: filepath.Base(path), MissingColumns: []string{"<category columns>"}}
	}

	for _, row := range rows {
		month := getCell(row, idx[colMonth])
		if month == "" {
			continue
		}
		receipts := make(map[string]decimal.Decimal)
		for i, h := range header {
			h = strings.TrimSpace(h)
			if h == "" || h == colMonth {
				continue
			}
			value, ok := parseDecimal(getCell(row, i))
			if !ok {
				continue
			}
			receipts[h] = value
		}
		table.Rows = append(table.Rows, domain.NetReceiptsRow{Month: month, Receipts: receipts})
	}
	return table, nil
}

// LoadAsinEanRows reads the snowflake ASIN -> EAN table. Rows with a blank
// ASIN are dropped, matching the source behavior.
func (r *ExcelReferenceRepository) LoadAsinEanRows(path string) ([]domain.AsinEanRow, error) {
	rows, idx, err := r.readSheet(path, colASIN, colEAN)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AsinEanRow, 0, len(rows))
	for _, row := range rows {
		asin := getCell(row, idx[colASIN])
		if asin == "" {
			continue
		}
		out = append(out, domain.AsinEanRow{
			ASIN: asin,
			EAN:  getCell(row, idx[colEAN]),
		})
	}
	return out, nil
}

// LoadEanPromoRows reads the tipps EAN -> promo discount table. An empty or
// unparsable discount cell is kept as nil so it can be reported as a missing
// discount rather than a missing row.
func (r *ExcelReferenceRepository) LoadEanPromoRows(path string) ([]domain.EanPromoRow, error) {
	rows, idx, err := r.readSheet(path, colPromoEAN, colPromo)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EanPromoRow, 0, len(rows))
	for _, row := range rows {
		ean := getCell(row, idx[colPromoEAN])
		if ean == "" {
			continue
		}
		promoRow := domain.EanPromoRow{EAN: ean}
		raw := getCell(row, idx[colPromo])
		if raw != "" {
			if value, ok := parseDecimal(raw); ok {
				promoRow.PromoDiscount = &value
			} else {
				r.log.Warn().Str("ean", ean).Str("value", raw).Msg("Unparsable promo discount, treating as missing")
			}
		}
		out = append(out, promoRow)
	}
	return out, nil
}

// LoadEventMappings reads the Agreement ID -> event table.
func (r *ExcelReferenceRepository) LoadEventMappings(path string) ([]domain.EventMapping, error) {
	rows, idx, err := r.readSheet(path, colAgreementID, colEventDesc, colEventID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EventMapping, 0, len(rows))
	for _, row := range rows {
		id := getCell(row, idx[colAgreementID])
		if id == "" {
			continue
		}
		out = append(out, domain.EventMapping{
			AgreementID:      id,
			EventDescription: getCell(row, idx[colEventDesc]),
			EventID:          getCell(row, idx[colEventID]),
		})
	}
	return out, nil
}

// readSheet opens the workbook's first sheet and returns its data rows plus
// a column index, validating that the required columns exist.
func (r *ExcelReferenceRepository) readSheet(path string, required ...string) ([][]string, map[string]int, error) {
	_, rows, idx, err := r.readSheetWithHeader(path, required...)
	return rows, idx, err
}

func (r *ExcelReferenceRepository) readSheetWithHeader(path string, required ...string) ([]string, [][]string, map[string]int, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrDataSourceUnavailable, path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s: no sheets", domain.ErrDataSourceUnavailable, path)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil, &domain.SchemaError{File: filepath.Base(path), MissingColumns: required}
	}

	header := rows[0]
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, nil, &domain.SchemaError{File: filepath.Base(path), MissingColumns: missing}
	}

	r.log.Debug().Str("file", filepath.Base(path)).Int("rows", len(rows)-1).Msg("Loaded reference table")
	return header, rows[1:], idx, nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
