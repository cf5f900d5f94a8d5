package gateway_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/gateway"
)

// writeWorkbook saves a one-sheet xlsx with the given rows and returns its path.
func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelReferenceRepository_LoadRebateMappings(t *testing.T) {
	repo := gateway.NewExcelReferenceRepository()

	t.Run("loads rows and skips blank mdf numbers", func(t *testing.T) {
		path := writeWorkbook(t, "mapping.xlsx", [][]interface{}{
			{"MDF Number", "Rebates", "Category"},
			{"MDF-2024-001", "Q1 Volume Rebate", "Electronics"},
			{"", "Orphan Row", "Beauty"},
			{"MDF-2024-002", "Q1 Beauty Rebate", "Beauty"},
		})

		mappings, err := repo.LoadRebateMappings(path)
		require.NoError(t, err)
		require.Len(t, mappings, 2)
		assert.Equal(t, "MDF-2024-001", mappings[0].MDFNumber)
		assert.Equal(t, "Q1 Volume Rebate", mappings[0].RebateName)
		assert.Equal(t, "Electronics", mappings[0].Category)
		assert.Equal(t, "MDF-2024-002", mappings[1].MDFNumber)
	})

	t.Run("missing file is a data source failure", func(t *testing.T) {
		_, err := repo.LoadRebateMappings(filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	})

	t.Run("missing columns are named in the schema error", func(t *testing.T) {
		path := writeWorkbook(t, "mapping.xlsx", [][]interface{}{
			{"MDF Number", "Description"},
			{"MDF-2024-001", "something"},
		})

		_, err := repo.LoadRebateMappings(path)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)

		var schemaErr *domain.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "mapping.xlsx", schemaErr.File)
		assert.ElementsMatch(t, []string{"Rebates", "Category"}, schemaErr.MissingColumns)
	})
}

func TestExcelReferenceRepository_LoadNetReceipts(t *testing.T) {
	repo := gateway.NewExcelReferenceRepository()

	t.Run("every non month column is a category", func(t *testing.T) {
		path := writeWorkbook(t, "receipts.xlsx", [][]interface{}{
			{"Month", "Electronics", "Beauty"},
			{"January", "10,000", "4000"},
			{"February", "12000", ""},
		})

		table, err := repo.LoadNetReceipts(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Electronics", "Beauty"}, table.Categories)
		require.Len(t, table.Rows, 2)

		jan := table.Rows[0]
		assert.Equal(t, "January", jan.Month)
		assert.True(t, decimal.RequireFromString("10000").Equal(jan.Receipts["Electronics"]))
		assert.True(t, decimal.RequireFromString("4000").Equal(jan.Receipts["Beauty"]))

		feb := table.Rows[1]
		_, ok := feb.Receipts["Beauty"]
		assert.False(t, ok, "empty cell must not produce a receipt entry")
	})

	t.Run("month only sheet is a schema mismatch", func(t *testing.T) {
		path := writeWorkbook(t, "receipts.xlsx", [][]interface{}{
			{"Month"},
			{"January"},
		})

		_, err := repo.LoadNetReceipts(path)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})
}

func TestExcelReferenceRepository_LoadAsinEanRows(t *testing.T) {
	repo := gateway.NewExcelReferenceRepository()

	path := writeWorkbook(t, "snowflake.xlsx", [][]interface{}{
		{"ASIN", "EAN_UPC"},
		{"B08XYZ1234", "1234567890123"},
		{"", "5555555555555"},
	})

	rows, err := repo.LoadAsinEanRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B08XYZ1234", rows[0].ASIN)
	assert.Equal(t, "1234567890123", rows[0].EAN)
}

func TestExcelReferenceRepository_LoadEanPromoRows(t *testing.T) {
	repo := gateway.NewExcelReferenceRepository()

	path := writeWorkbook(t, "tipps.xlsx", [][]interface{}{
		{"Consumer Unit EAN/UPC Code", "PROMO DISCOUNT £"},
		{"1234567890123", "2.50"},
		{"9999999999999", ""},
		{"8888888888888", "n/a"},
	})

	rows, err := repo.LoadEanPromoRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].PromoDiscount)
	assert.True(t, decimal.RequireFromString("2.50").Equal(*rows[0].PromoDiscount))

	assert.Nil(t, rows[1].PromoDiscount, "empty discount cell stays nil")
	assert.Nil(t, rows[2].PromoDiscount, "unparsable discount cell stays nil")
}

func TestExcelReferenceRepository_LoadEventMappings(t *testing.T) {
	repo := gateway.NewExcelReferenceRepository()

	path := writeWorkbook(t, "events.xlsx", [][]interface{}{
		{"Agreement ID", "Event Description", "Event ID"},
		{"AG-001", "Spring Promo", "EV-77"},
	})

	mappings, err := repo.LoadEventMappings(path)
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, "AG-001", mappings[0].AgreementID)
	assert.Equal(t, "Spring Promo", mappings[0].EventDescription)
	assert.Equal(t, "EV-77", mappings[0].EventID)
}
