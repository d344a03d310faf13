package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poflow/po-upload/internal/llm"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
// The assembled OCR text is sent as-is: no chunking, truncation, or
// length-based splitting regardless of document size.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.PurchaseOrderFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.ExtractedText),
		"filename_hint", req.FilenameHint,
	)

	schema := llm.BuildPurchaseOrderJSONSchema()
	sys := buildSystemPrompt()
	user := buildUserPrompt(req.ExtractedText)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if httpErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.PurchaseOrderFields{}, raw, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.PurchaseOrderFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.PurchaseOrderFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if c.cfg.StrictSchema {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err, "content", content,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.PurchaseOrderFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}
		// Lenient pass: normalize synonyms/coercions and re-validate.
		cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.logger)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.PurchaseOrderFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.PurchaseOrderFields{}, cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out llm.PurchaseOrderFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.PurchaseOrderFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"customer", out.CustomerName,
		"po_number", out.PONumber,
		"po_date", out.PODate,
		"line_items", len(out.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}


func buildSystemPrompt() string {
	parts := []string{
		"You are a helpful assistant that extracts purchase order information from text and returns it as JSON.",
		`Always return valid JSON with the following structure: { "customerName": "", "poNumber": "", "poDate": "", "lineItems": [{ "itemNumber": "", "description": "", "quantity": 0, "unitPrice": 0, "totalPrice": 0 }] }.`,
		`IMPORTANT: Format the poDate field as mm/dd/yyyy (e.g., "01/15/2024", "12/31/2023").`,
		"If you find a date in any other format, convert it to mm/dd/yyyy format.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(extractedText string) string {
	var b strings.Builder
	b.WriteString("Can you give me a json object:\n\n")
	b.WriteString("Name of the company (Usually at the delivery address or From field)\n")
	b.WriteString("PO Number (Usually at the top of the PO)\n")
	b.WriteString("PO Date (Usually at the top of the PO - format it in date format mm/dd/yyyy)\n")
	b.WriteString("Array of the line items of this PO\n\n")
	b.WriteString("Extract this information from the following text. Return ONLY valid JSON, no additional text or explanations.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(extractedText)
	return b.String()
}
