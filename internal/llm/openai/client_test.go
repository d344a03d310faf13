package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poflow/po-upload/internal/llm"
)

func completionsServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestExtractFieldsWellFormedOutput(t *testing.T) {
	content := `{"customerName":"Acme Corp","poNumber":"1001","poDate":"03/05/2024","lineItems":[{"itemNumber":"A-1","description":"Widget","quantity":2,"unitPrice":5,"totalPrice":10}]}`
	var gotReq map[string]any
	srv := completionsServer(t, content, &gotReq)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Temperature: 0.1}, nil)
	fields, raw, err := c.ExtractFields(context.Background(), llm.ExtractRequest{ExtractedText: "Acme Corp PO# 1001"})
	require.NoError(t, err)

	assert.Equal(t, "1001", fields.PONumber)
	assert.Equal(t, "03/05/2024", fields.PODate)
	assert.JSONEq(t, content, string(raw))

	assert.Equal(t, "gpt-4.1-mini", gotReq["model"])
	assert.InDelta(t, 0.1, gotReq["temperature"], 1e-6)
	rf, ok := gotReq["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestExtractFieldsLenientPassRepairsOutput(t *testing.T) {
	// snake_case keys, ISO date, money string: all repaired by the lenient pass
	content := `{"customer_name":"Acme Corp","po_number":"1001","po_date":"2024-03-05","items":[{"qty":2,"unit_price":"$5.00","total_price":10,"description":"Widget"}]}`
	srv := completionsServer(t, content, nil)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	fields, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{ExtractedText: "text"})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", fields.CustomerName)
	assert.Equal(t, "03/05/2024", fields.PODate)
	require.Len(t, fields.LineItems, 1)
	assert.Equal(t, 5.0, fields.LineItems[0].UnitPrice)
}

func TestExtractFieldsStrictModeRejectsRepairableOutput(t *testing.T) {
	content := `{"customer_name":"Acme Corp","po_number":"1001","po_date":"2024-03-05","items":[]}`
	srv := completionsServer(t, content, nil)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, StrictSchema: true}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{ExtractedText: "text"})
	assert.ErrorContains(t, err, "schema validation failed")
}

func TestExtractFieldsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{ExtractedText: "text"})
	assert.Error(t, err)
}

func TestExtractFieldsNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{ExtractedText: "text"})
	assert.ErrorContains(t, err, "no choices")
}
