package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/logger"

	"github.com/rs/zerolog"
)

// BatchRunner walks an input directory and reconciles every PDF in it.
// Documents are independent, so they are processed with bounded concurrency;
// the reference store is immutable after load and safe to share. A document
// that fails to decode or reconcile never aborts the rest of the batch.
type BatchRunner struct {
	uc          *ReconciliationUseCase
	decoder     DocumentDecoder
	concurrency int
	log         zerolog.Logger
}

// NewBatchRunner creates a runner with the given number of in-flight
// documents (values below 1 are treated as 1).
func NewBatchRunner(uc *ReconciliationUseCase, decoder DocumentDecoder, concurrency int) *BatchRunner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchRunner{
		uc:          uc,
		decoder:     decoder,
		concurrency: concurrency,
		log:         logger.WithComponent("batch"),
	}
}

// RunRebates reconciles every rebate invoice in dir and returns one report
// per document that produced extractable text, in directory order.
func (b *BatchRunner) RunRebates(ctx context.Context, dir string) ([]domain.RebateReport, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.RebateReport, len(files))
	var fatal error
	var mu sync.Mutex

	b.forEach(files, func(i int, path string) {
		text, ok := b.decode(path)
		if !ok {
			return
		}
		report, err := b.uc.ReconcileRebateInvoice(ctx, filepath.Base(path), text)
		if err != nil {
			mu.Lock()
			if fatal == nil {
				fatal = err
			}
			mu.Unlock()
			return
		}
		results[i] = &report
	})

	if fatal != nil {
		return nil, fatal
	}
	return collect(results), nil
}

// RunEvents reconciles every event invoice in dir.
func (b *BatchRunner) RunEvents(ctx context.Context, dir string) ([]domain.EventReport, error) {
	files, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.EventReport, len(files))

	b.forEach(files, func(i int, path string) {
		text, ok := b.decode(path)
		if !ok {
			return
		}
		report, err := b.uc.ReconcileEventInvoice(ctx, filepath.Base(path), text)
		if err != nil {
			return
		}
		results[i] = &report
	})

	return collect(results), nil
}

// forEach runs fn over the files through a semaphore-bounded pool.
func (b *BatchRunner) forEach(files []string, fn func(i int, path string)) {
	sem := make(chan struct{}, b.concurrency)
	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i, path)
		}(i, path)
	}
	wg.Wait()
}

func (b *BatchRunner) decode(path string) (string, bool) {
	b.log.Info().Str("file", filepath.Base(path)).Msg("Processing invoice")
	text, err := b.decoder.Decode(path)
	if err != nil {
		b.log.Error().Err(err).Str("file", filepath.Base(path)).Msg("Failed to decode document, skipping")
		return "", false
	}
	return text, true
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func collect[T any](results []*T) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
