package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"rebate-reconciliation/internal/config"
	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/gateway"
	"rebate-reconciliation/internal/logger"
	"rebate-reconciliation/internal/refstore"
	"rebate-reconciliation/internal/usecase"
)

func main() {
	kind := flag.String("kind", "", "Invoice kind to reconcile: rebate or event (required)")
	input := flag.String("input", "", "Directory containing the invoice PDFs (required)")
	configPath := flag.String("config", ".env", "Path to the configuration file")
	flag.Parse()

	if *kind == "" || *input == "" {
		fmt.Println("Error: flags -kind and -input are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load(*configPath)
	logger.Init(cfg.LogLevel)
	log := logger.WithComponent("main")

	invoiceKind := domain.InvoiceKind(*kind)
	if invoiceKind != domain.KindRebate && invoiceKind != domain.KindEvent {
		log.Fatal().Str("kind", *kind).Msg("Invalid invoice kind, expected rebate or event")
	}

	// --- Dependency injection ---
	excel := gateway.NewExcelReferenceRepository()

	// Reference tables are loaded once per run; a missing file or a changed
	// schema means no lookup can succeed, so both are fatal for the batch.
	var store *refstore.Store
	if invoiceKind == domain.KindRebate {
		mappings, err := excel.LoadRebateMappings(cfg.Reference.MappingPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load rebate mapping table")
		}
		receipts, err := excel.LoadNetReceipts(cfg.Reference.NetReceiptsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load net receipts table")
		}
		store = refstore.New(mappings, receipts, nil, nil, nil)
	} else {
		asinEan, err := excel.LoadAsinEanRows(cfg.Reference.SnowflakePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load snowflake table")
		}
		promos, err := excel.LoadEanPromoRows(cfg.Reference.TippsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load tipps table")
		}
		events, err := excel.LoadEventMappings(cfg.Reference.EventMappingPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load event mapping table")
		}
		store = refstore.New(nil, nil, asinEan, promos, events)
	}

	extractor := gateway.NewOpenAIFieldExtractor(cfg.OpenAI)
	decoder := gateway.NewPDFDecoder()
	uc := usecase.NewReconciliationUseCase(store, extractor)
	runner := usecase.NewBatchRunner(uc, decoder, cfg.Batch.Concurrency)

	// --- Run the batch ---
	ctx := context.Background()
	var reports any
	var count int
	var err error
	if invoiceKind == domain.KindRebate {
		var out []domain.RebateReport
		out, err = runner.RunRebates(ctx, *input)
		reports, count = out, len(out)
	} else {
		var out []domain.EventReport
		out, err = runner.RunEvents(ctx, *input)
		reports, count = out, len(out)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Reconciliation batch failed")
	}
	log.Info().Str("kind", *kind).Int("reports", count).Msg("Reconciliation batch completed")

	output, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate JSON report")
	}

	fmt.Println(string(output))
}
