package llm

import "context"

// LineItemFields is one extracted purchase-order line. All fields are
// optional; no cross-field arithmetic is enforced (quantity x unit price is
// not checked against total price).
type LineItemFields struct {
	ItemNumber  string  `json:"itemNumber,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
	TotalPrice  float64 `json:"totalPrice,omitempty"`
}

// PurchaseOrderFields is the normalized shape we want from the LLM.
type PurchaseOrderFields struct {
	CustomerName string           `json:"customerName"`
	PONumber     string           `json:"poNumber"`
	PODate       string           `json:"poDate"` // mm/dd/yyyy
	LineItems    []LineItemFields `json:"lineItems"`
}

// Clone returns a deep copy so review edits never alias the original record.
func (f PurchaseOrderFields) Clone() PurchaseOrderFields {
	out := f
	out.LineItems = make([]LineItemFields, len(f.LineItems))
	copy(out.LineItems, f.LineItems)
	return out
}

type ExtractRequest struct {
	ExtractedText string
	FilenameHint  string
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (PurchaseOrderFields, []byte /*rawJSON*/, error)
}
