package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/llm"
)

type fakeExtractor struct {
	fields llm.PurchaseOrderFields
	err    error
	gotReq llm.ExtractRequest
}

func (f *fakeExtractor) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.PurchaseOrderFields, []byte, error) {
	f.gotReq = req
	return f.fields, nil, f.err
}

func newProxy(providerURL string, extractor llm.FieldExtractor) *ProxyHandlers {
	return NewProxyHandlers(common.OCRConfig{
		BaseURL: providerURL,
		APIKey:  "secret-key",
		Model:   "mistral-ocr-latest",
	}, extractor, nil)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadMissingFileIs400WithNoOutboundCall(t *testing.T) {
	var calls atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer provider.Close()

	body, contentType := multipartBody(t, "wrong_field", "po.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newProxy(provider.URL, nil).Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file provided"}`, rec.Body.String())
	assert.Zero(t, calls.Load())
}

func TestUploadInjectsCredentialAndPurpose(t *testing.T) {
	var gotAuth, gotPurpose, gotFilename string
	var gotContent []byte
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPurpose = r.FormValue("purpose")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotContent, _ = io.ReadAll(file)
		w.Write([]byte(`{"id":"file-7","object":"file"}`))
	}))
	defer provider.Close()

	body, contentType := multipartBody(t, "file", "po.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newProxy(provider.URL, nil).Upload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"file-7","object":"file"}`, rec.Body.String())
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "ocr", gotPurpose)
	assert.Equal(t, "po.pdf", gotFilename)
	assert.Equal(t, []byte("%PDF-1.4"), gotContent)
}

func TestProviderErrorMirroredExactly(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid document url","code":1042}`))
	}))
	defer provider.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/ocr", bytes.NewBufferString(`{"documentUrl":"https://x"}`))
	rec := httptest.NewRecorder()
	newProxy(provider.URL, nil).OCR(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"invalid document url","code":1042}}`, rec.Body.String())
}

func TestTransportFaultIs500(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	provider.Close() // connection refused from here on

	req := httptest.NewRequest(http.MethodPost, "/api/ocr", bytes.NewBufferString(`{"documentUrl":"https://x"}`))
	rec := httptest.NewRecorder()
	newProxy(provider.URL, nil).OCR(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestFileURLRequiresIDAndDefaultsExpiry(t *testing.T) {
	var calls atomic.Int32
	var gotPath, gotExpiry string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotPath = r.URL.Path
		gotExpiry = r.URL.Query().Get("expiry")
		w.Write([]byte(`{"url":"https://signed.example/doc"}`))
	}))
	defer provider.Close()

	h := newProxy(provider.URL, nil)

	rec := httptest.NewRecorder()
	h.FileURL(rec, httptest.NewRequest(http.MethodGet, "/api/file-url", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"File ID is required"}`, rec.Body.String())
	assert.Zero(t, calls.Load())

	rec = httptest.NewRecorder()
	h.FileURL(rec, httptest.NewRequest(http.MethodGet, "/api/file-url?id=file-7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/files/file-7/url", gotPath)
	assert.Equal(t, "24", gotExpiry)
}

func TestOCRWrapsDocumentURLInProviderPayload(t *testing.T) {
	var gotPayload map[string]any
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"pages":[{"markdown":"Page1"}]}`))
	}))
	defer provider.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/ocr", bytes.NewBufferString(`{"documentUrl":"https://signed.example/doc"}`))
	rec := httptest.NewRecorder()
	newProxy(provider.URL, nil).OCR(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mistral-ocr-latest", gotPayload["model"])
	assert.Equal(t, true, gotPayload["include_image_base64"])
	doc, ok := gotPayload["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "document_url", doc["type"])
	assert.Equal(t, "https://signed.example/doc", doc["document_url"])
}

func TestOCRMissingDocumentURLIs400(t *testing.T) {
	rec := httptest.NewRecorder()
	newProxy("http://unused", nil).OCR(rec, httptest.NewRequest(http.MethodPost, "/api/ocr", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Document URL is required"}`, rec.Body.String())
}

func TestExtractPODelegatesToExtractor(t *testing.T) {
	ex := &fakeExtractor{fields: llm.PurchaseOrderFields{
		CustomerName: "Acme Corp",
		PONumber:     "1001",
		PODate:       "03/05/2024",
		LineItems:    []llm.LineItemFields{{Quantity: 2, UnitPrice: 5}},
	}}
	h := newProxy("http://unused", ex)

	req := httptest.NewRequest(http.MethodPost, "/api/extract-po", bytes.NewBufferString(`{"extractedText":"Acme Corp PO# 1001"}`))
	rec := httptest.NewRecorder()
	h.ExtractPO(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme Corp PO# 1001", ex.gotReq.ExtractedText)

	var got llm.PurchaseOrderFields
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1001", got.PONumber)
	assert.Equal(t, "03/05/2024", got.PODate)
}

func TestExtractPOMissingTextIs400(t *testing.T) {
	ex := &fakeExtractor{}
	rec := httptest.NewRecorder()
	newProxy("http://unused", ex).ExtractPO(rec, httptest.NewRequest(http.MethodPost, "/api/extract-po", bytes.NewBufferString(`{"extractedText":"  "}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Extracted text is required"}`, rec.Body.String())
}
