package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitize(t *testing.T, raw string) PurchaseOrderFields {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), nil)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildPurchaseOrderJSONSchema(), out))
	var fields PurchaseOrderFields
	require.NoError(t, json.Unmarshal(out, &fields))
	return fields
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	fields := sanitize(t, `{
		"customer_name": "Acme Corp",
		"po_number": "1001",
		"po_date": "03/05/2024",
		"items": [{"item_number":"A-1","qty":2,"unit_price":5,"total_price":10}]
	}`)

	assert.Equal(t, "Acme Corp", fields.CustomerName)
	assert.Equal(t, "1001", fields.PONumber)
	require.Len(t, fields.LineItems, 1)
	assert.Equal(t, "A-1", fields.LineItems[0].ItemNumber)
	assert.Equal(t, float64(2), fields.LineItems[0].Quantity)
	assert.Equal(t, float64(5), fields.LineItems[0].UnitPrice)
}

func TestSanitizeCoercesMoneyStrings(t *testing.T) {
	fields := sanitize(t, `{
		"customerName": "Acme Corp",
		"poNumber": "1001",
		"poDate": "03/05/2024",
		"lineItems": [{"description":"Widget","quantity":"2","unitPrice":"$5.00","totalPrice":"1,200.50"}]
	}`)

	li := fields.LineItems[0]
	assert.Equal(t, float64(2), li.Quantity)
	assert.Equal(t, 5.0, li.UnitPrice)
	assert.Equal(t, 1200.50, li.TotalPrice)
}

func TestSanitizeCanonicalizesDates(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-05", "03/05/2024"},
		{"3/5/2024", "03/05/2024"},
		{"03/05/2024", "03/05/2024"},
	}
	for _, tc := range tests {
		fields := sanitize(t, `{"customerName":"A","poNumber":"1","poDate":"`+tc.in+`","lineItems":[]}`)
		assert.Equal(t, tc.want, fields.PODate, "input %s", tc.in)
	}
}

func TestSanitizeDropsUnknownKeys(t *testing.T) {
	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{
		"customerName": "Acme Corp",
		"poNumber": "1001",
		"poDate": "03/05/2024",
		"confidence": 0.97,
		"lineItems": [{"description":"Widget","quantity":1,"unitPrice":1,"totalPrice":1,"sku":"X"}]
	}`), nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "confidence(unknown)")
	assert.Contains(t, dropped, "lineItems[0].sku(unknown)")
	assert.NotContains(t, string(out), "confidence")
	assert.NotContains(t, string(out), "sku")
}

func TestSanitizeNullHeadersBecomeEmptyStrings(t *testing.T) {
	fields := sanitize(t, `{"customerName":null,"poNumber":"1","poDate":"03/05/2024","lineItems":[]}`)
	assert.Equal(t, "", fields.CustomerName)
}

func TestSanitizeRejectsNonObject(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`["not","an","object"]`), nil)
	assert.Error(t, err)
}

func TestStrictValidationRejectsBadShapes(t *testing.T) {
	schema := BuildPurchaseOrderJSONSchema()

	tests := []struct {
		name string
		raw  string
	}{
		{"missing poNumber", `{"customerName":"A","poDate":"03/05/2024","lineItems":[]}`},
		{"iso date", `{"customerName":"A","poNumber":"1","poDate":"2024-03-05","lineItems":[]}`},
		{"string quantity", `{"customerName":"A","poNumber":"1","poDate":"03/05/2024","lineItems":[{"quantity":"2"}]}`},
		{"extra property", `{"customerName":"A","poNumber":"1","poDate":"03/05/2024","lineItems":[],"extra":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tc.raw)))
		})
	}

	good := `{"customerName":"A","poNumber":"1","poDate":"03/05/2024","lineItems":[{"itemNumber":"A-1","description":"W","quantity":2,"unitPrice":5,"totalPrice":10}]}`
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(good)))
}
