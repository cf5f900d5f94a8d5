package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"rebate-reconciliation/internal/config"
	"rebate-reconciliation/internal/domain"
	"rebate-reconciliation/internal/logger"
)

// OpenAIFieldExtractor implements the field extraction capability against a
// chat-completion model. It is the only remote dependency in the pipeline;
// calls are retried a bounded number of times and cut off by a per-document
// timeout, and any terminal failure is recoverable at the document level.
type OpenAIFieldExtractor struct {
	client *openai.Client
	cfg    config.OpenAIConfig
	log    zerolog.Logger
}

// NewOpenAIFieldExtractor creates an extractor from config. BaseURL, when
// set, points the client at an Azure OpenAI deployment.
func NewOpenAIFieldExtractor(cfg config.OpenAIConfig) *OpenAIFieldExtractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIFieldExtractor{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    logger.WithComponent("field-extractor"),
	}
}

const extractorSystemPrompt = `You are a financial data extraction assistant.
You read vendor invoice text and return ONLY valid JSON, with no text before
or after it and no trailing commas. Use null for values you cannot find.
Never reformat numbers: return amounts and percentages exactly as they
appear in the document, as strings.`

type rebateResponse struct {
	InvoiceNumber  string `json:"invoice_number"`
	MDFNumber      string `json:"mdf_number"`
	InvoiceTotal   string `json:"invoice_total"`
	InvoiceMonth   string `json:"invoice_month"`
	LinePercentage string `json:"line_percentage"`
}

type eventLineResponse struct {
	ASIN          string `json:"asin"`
	RebatePerUnit string `json:"rebate_per_unit"`
	LineTotal     string `json:"line_total"`
}

type eventResponse struct {
	MDFNumber string              `json:"mdf_number"`
	LineItems []eventLineResponse `json:"line_items"`
}

// ExtractRebateFields pulls the rebate-flow fields out of invoice text.
func (e *OpenAIFieldExtractor) ExtractRebateFields(ctx context.Context, text string) (domain.RebateInvoiceFields, error) {
	var fields domain.RebateInvoiceFields

	content, err := e.complete(ctx, buildRebatePrompt(text))
	if err != nil {
		return fields, err
	}

	var resp rebateResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return fields, fmt.Errorf("%w: malformed extractor response: %v", domain.ErrExtractionFailure, err)
	}

	fields.InvoiceNumber = resp.InvoiceNumber
	fields.MDFNumber = strings.TrimSpace(resp.MDFNumber)
	fields.InvoiceMonth = strings.TrimSpace(resp.InvoiceMonth)

	if fields.InvoiceTotal, err = domain.ParseDecimal(resp.InvoiceTotal); err != nil {
		return fields, fmt.Errorf("invoice_total: %w", err)
	}
	// The percentage stays exactly as printed on the invoice. 0.05 must
	// reach the calculator as 0.05, never as 5.
	if fields.LinePercentage, err = domain.ParseDecimal(strings.TrimSuffix(resp.LinePercentage, "%")); err != nil {
		return fields, fmt.Errorf("line_percentage: %w", err)
	}

	return fields, nil
}

// ExtractEventFields pulls the per-line ASIN data and the Agreement ID out
// of an event invoice's text.
func (e *OpenAIFieldExtractor) ExtractEventFields(ctx context.Context, text string) (domain.EventInvoiceFields, error) {
	var fields domain.EventInvoiceFields

	content, err := e.complete(ctx, buildEventPrompt(text))
	if err != nil {
		return fields, err
	}

	var resp eventResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return fields, fmt.Errorf("%w: malformed extractor response: %v", domain.ErrExtractionFailure, err)
	}

	fields.MDFNumber = strings.TrimSpace(resp.MDFNumber)
	for i, line := range resp.LineItems {
		item := domain.EventLineItem{ASIN: strings.TrimSpace(line.ASIN)}
		if item.RebatePerUnit, err = domain.ParseDecimal(line.RebatePerUnit); err != nil {
			return fields, fmt.Errorf("line %d rebate_per_unit: %w", i+1, err)
		}
		if item.LineTotal, err = domain.ParseDecimal(line.LineTotal); err != nil {
			return fields, fmt.Errorf("line %d line_total: %w", i+1, err)
		}
		fields.LineItems = append(fields.LineItems, item)
	}

	return fields, nil
}

// complete sends one extraction prompt and returns the model's raw content,
// retrying transient failures up to the configured budget.
func (e *OpenAIFieldExtractor) complete(ctx context.Context, prompt string) (string, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       e.cfg.Model,
			Temperature: e.cfg.Temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: extractorSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			lastErr = err
			e.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_retries", e.cfg.MaxRetries).
				Msg("Extraction request failed, retrying")
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no response choices")
			continue
		}

		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")

		e.log.Debug().Int("attempt", attempt).Int("length", len(content)).Msg("Received extractor response")
		return strings.TrimSpace(content), nil
	}

	return "", fmt.Errorf("%w: all %d attempts failed: %v", domain.ErrExtractionFailure, e.cfg.MaxRetries, lastErr)
}

func buildRebatePrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract the following fields from this invoice document:\n")
	b.WriteString("1. invoice_number: the invoice number, to the right of \"Invoice Number\", \"Numero Fattura\" or similar depending on the invoice language.\n")
	b.WriteString("2. mdf_number: the MDF number.\n")
	b.WriteString("3. invoice_total: the total amount below the Invoice Total column.\n")
	b.WriteString("4. invoice_month: the month of the net receipts period, as the complete month name, not an abbreviation.\n")
	b.WriteString("5. line_percentage: the percentage value that appears under the \"Line Description\" column of the invoice table, exactly as written.\n\n")
	b.WriteString("Return JSON with keys: invoice_number, mdf_number, invoice_total, invoice_month, line_percentage.\n\n")
	b.WriteString("### Invoice Document\n")
	b.WriteString(text)
	return b.String()
}

func buildEventPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract the following from this event invoice document:\n")
	b.WriteString("1. mdf_number: the MDF number (Agreement ID).\n")
	b.WriteString("2. line_items: one entry per invoice line with asin, rebate_per_unit and line_total, in document order.\n\n")
	b.WriteString("Return JSON with keys: mdf_number, line_items (array of {asin, rebate_per_unit, line_total}).\n\n")
	b.WriteString("### Invoice Document\n")
	b.WriteString(text)
	return b.String()
}
