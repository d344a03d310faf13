package llm

// BuildPurchaseOrderJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We hand it to the model as the required output structure and
// also use it locally to validate what comes back.
func BuildPurchaseOrderJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"itemNumber":  map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number"},
			"unitPrice":   map[string]any{"type": "number"},
			"totalPrice":  map[string]any{"type": "number"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"customerName": map[string]any{"type": "string"},
			"poNumber":     map[string]any{"type": "string"},
			// canonical external representation is mm/dd/yyyy
			"poDate": map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`},
			"lineItems": map[string]any{
				"type":  "array",
				"items": lineItem,
			},
		},
		"required": []string{"customerName", "poNumber", "poDate", "lineItems"},
	}
}
