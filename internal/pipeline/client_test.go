package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "po.pdf", header.Filename)
		w.Write([]byte(`{"id":"file-9","object":"file","purpose":"ocr"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	id, err := c.UploadFile(context.Background(), "po.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "file-9", id)
}

func TestClientFileURLPassesExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "file-9", r.URL.Query().Get("id"))
		assert.Equal(t, "24", r.URL.Query().Get("expiry"))
		w.Write([]byte(`{"url":"https://signed.example/doc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	u, err := c.FileURL(context.Background(), "file-9", 24)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/doc", u)
}

func TestClientRunOCRDecodesPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pages":[{"index":0,"markdown":"Page1"},{"index":1,"markdown":"Page2"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	res, err := c.RunOCR(context.Background(), "https://signed.example/doc")
	require.NoError(t, err)
	assert.Equal(t, "Page1\n<<<>>>\nPage2", res.AssembleText())
}

func TestClientSurfacesErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantPart string
	}{
		{"string error", http.StatusBadRequest, `{"error":"No file provided"}`, "No file provided"},
		{"provider json error", http.StatusUnprocessableEntity, `{"error":{"message":"invalid document"}}`, "invalid document"},
		{"non-envelope body", http.StatusBadGateway, `upstream down`, "upstream down"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 0, nil)
			_, err := c.RunOCR(context.Background(), "u")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantPart)
		})
	}
}

func TestClientExtractPO(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/extract-po", r.URL.Path)
		w.Write([]byte(`{"customerName":"Acme Corp","poNumber":"1001","poDate":"03/05/2024","lineItems":[{"quantity":2,"unitPrice":5}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	fields, err := c.ExtractPO(context.Background(), "Acme Corp PO# 1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", fields.PONumber)
	require.Len(t, fields.LineItems, 1)
	assert.Equal(t, float64(2), fields.LineItems[0].Quantity)
}
