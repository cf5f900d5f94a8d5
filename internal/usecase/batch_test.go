package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/usecase"
	mock_usecase "rebate-reconciliation/internal/usecase/mocks"
)

func writeInvoiceDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
	return dir
}

func TestBatchRunner_RunRebates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fields := domain.RebateInvoiceFields{
		InvoiceNumber:  "INV-001",
		MDFNumber:      "MDF-100",
		InvoiceTotal:   d("950"),
		InvoiceMonth:   "January",
		LinePercentage: d("0.10"),
	}

	t.Run("decode failure skips the document but not the batch", func(t *testing.T) {
		dir := writeInvoiceDir(t, "a.pdf", "b.pdf", "notes.txt")

		mDecoder := mock_usecase.NewMockDocumentDecoder(ctrl)
		mDecoder.EXPECT().Decode(filepath.Join(dir, "a.pdf")).Return("", errors.New("encrypted document"))
		mDecoder.EXPECT().Decode(filepath.Join(dir, "b.pdf")).Return("invoice text", nil)

		mExtractor := mock_usecase.NewMockFieldExtractor(ctrl)
		mExtractor.EXPECT().ExtractRebateFields(gomock.Any(), "invoice text").Return(fields, nil)

		mRefs := mock_usecase.NewMockReferenceStore(ctrl)
		mRefs.EXPECT().LookupRebateMapping("MDF-100").Return([]domain.RebateMappingRow{
			{MDFNumber: "MDF-100", RebateName: "Amazon Q1 Rebate", Category: "Electronics"},
		})
		mRefs.EXPECT().LookupNetReceipt("Electronics", "January").Return(d("10000"), nil)

		uc := usecase.NewReconciliationUseCase(mRefs, mExtractor)
		runner := usecase.NewBatchRunner(uc, mDecoder, 2)

		reports, err := runner.RunRebates(context.Background(), dir)
		assert.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, "b.pdf", reports[0].SourceFile)
		assert.Equal(t, domain.MatchFully, reports[0].MatchStatus)
	})

	t.Run("schema mismatch aborts the batch", func(t *testing.T) {
		dir := writeInvoiceDir(t, "a.pdf")

		mDecoder := mock_usecase.NewMockDocumentDecoder(ctrl)
		mDecoder.EXPECT().Decode(filepath.Join(dir, "a.pdf")).Return("invoice text", nil)

		mExtractor := mock_usecase.NewMockFieldExtractor(ctrl)
		mExtractor.EXPECT().ExtractRebateFields(gomock.Any(), "invoice text").Return(fields, nil)

		mRefs := mock_usecase.NewMockReferenceStore(ctrl)
		mRefs.EXPECT().LookupRebateMapping("MDF-100").Return([]domain.RebateMappingRow{
			{MDFNumber: "MDF-100", RebateName: "Amazon Q1 Rebate", Category: "Toys"},
		})
		mRefs.EXPECT().LookupNetReceipt("Toys", "January").
			Return(d("0"), &domain.SchemaError{File: "net receipts", MissingColumns: []string{"Toys"}})

		uc := usecase.NewReconciliationUseCase(mRefs, mExtractor)
		runner := usecase.NewBatchRunner(uc, mDecoder, 1)

		reports, err := runner.RunRebates(context.Background(), dir)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
		assert.Nil(t, reports)
	})

	t.Run("reports keep directory order under concurrency", func(t *testing.T) {
		dir := writeInvoiceDir(t, "c.pdf", "a.pdf", "b.pdf")

		mDecoder := mock_usecase.NewMockDocumentDecoder(ctrl)
		mExtractor := mock_usecase.NewMockFieldExtractor(ctrl)
		mRefs := mock_usecase.NewMockReferenceStore(ctrl)
		for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
			mDecoder.EXPECT().Decode(filepath.Join(dir, name)).Return("text "+name, nil)
			mExtractor.EXPECT().ExtractRebateFields(gomock.Any(), "text "+name).
				Return(domain.RebateInvoiceFields{}, errors.New("unreadable"))
		}

		uc := usecase.NewReconciliationUseCase(mRefs, mExtractor)
		runner := usecase.NewBatchRunner(uc, mDecoder, 3)

		reports, err := runner.RunRebates(context.Background(), dir)
		assert.NoError(t, err)
		require.Len(t, reports, 3)
		assert.Equal(t, "a.pdf", reports[0].SourceFile)
		assert.Equal(t, "b.pdf", reports[1].SourceFile)
		assert.Equal(t, "c.pdf", reports[2].SourceFile)
	})

	t.Run("missing input directory is an error", func(t *testing.T) {
		mDecoder := mock_usecase.NewMockDocumentDecoder(ctrl)
		mExtractor := mock_usecase.NewMockFieldExtractor(ctrl)
		mRefs := mock_usecase.NewMockReferenceStore(ctrl)

		uc := usecase.NewReconciliationUseCase(mRefs, mExtractor)
		runner := usecase.NewBatchRunner(uc, mDecoder, 1)

		_, err := runner.RunRebates(context.Background(), filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestBatchRunner_RunEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := writeInvoiceDir(t, "event.pdf")

	mDecoder := mock_usecase.NewMockDocumentDecoder(ctrl)
	mDecoder.EXPECT().Decode(filepath.Join(dir, "event.pdf")).Return("event text", nil)

	mExtractor := mock_usecase.NewMockFieldExtractor(ctrl)
	mExtractor.EXPECT().ExtractEventFields(gomock.Any(), "event text").Return(domain.EventInvoiceFields{
		MDFNumber: "AG-001",
		LineItems: []domain.EventLineItem{
			{ASIN: "B000000001", RebatePerUnit: d("2.50"), LineTotal: d("25.00")},
		},
	}, nil)

	mRefs := mock_usecase.NewMockReferenceStore(ctrl)
	mRefs.EXPECT().LookupEAN("B000000001").Return("1234567890123", nil)
	mRefs.EXPECT().LookupPromoDiscount("1234567890123").Return(dp("2.50"), nil)
	mRefs.EXPECT().LookupEventMapping("AG-001").Return(domain.EventMapping{
		AgreementID:      "AG-001",
		EventDescription: "Spring Promo",
		EventID:          "EV-77",
	}, nil)

	uc := usecase.NewReconciliationUseCase(mRefs, mExtractor)
	runner := usecase.NewBatchRunner(uc, mDecoder, 4)

	reports, err := runner.RunEvents(context.Background(), dir)
	assert.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "event.pdf", reports[0].SourceFile)
	assert.Equal(t, "EV-77", reports[0].EventID)
	require.Len(t, reports[0].InvoiceData, 1)
	assert.Equal(t, domain.LineMatched, reports[0].InvoiceData[0].Result)
}
