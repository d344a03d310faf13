package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/llm"
)

// ProxyHandlers are the credential-injecting forwarding endpoints. They hold
// the provider secrets; clients never see them. Each handler validates one
// required input, forwards, and mirrors the provider's response.
type ProxyHandlers struct {
	cfg       common.OCRConfig
	http      *http.Client
	extractor llm.FieldExtractor
	logger    *slog.Logger
}

func NewProxyHandlers(cfg common.OCRConfig, extractor llm.FieldExtractor, logger *slog.Logger) *ProxyHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProxyHandlers{
		cfg:       cfg,
		http:      &http.Client{Timeout: 120 * time.Second},
		extractor: extractor,
		logger:    logger,
	}
}

// forward performs the outbound provider call and relays the result: success
// bodies pass through unchanged, provider errors are mirrored with the exact
// upstream status, and transport faults collapse to a generic 500. No retry.
func (h *ProxyHandlers) forward(w http.ResponseWriter, r *http.Request, out *http.Request, op string) {
	out.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)

	start := time.Now()
	resp, err := h.http.Do(out)
	if err != nil {
		h.logger.Error("proxy."+op+".transport_failed", "req_id", middleware.GetReqID(r.Context()), "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.logger.Error("proxy."+op+".read_failed", "req_id", middleware.GetReqID(r.Context()), "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("proxy."+op,
		"req_id", middleware.GetReqID(r.Context()),
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		writeErrorRaw(w, resp.StatusCode, body)
		return
	}
	relayJSON(w, resp.StatusCode, body)
}

// Upload relays a multipart document to the OCR provider's file store with
// purpose=ocr.
func (h *ProxyHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", "ocr"); err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	part, err := mw.CreateFormFile("file", header.Filename)
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if _, err := io.Copy(part, file); err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := mw.Close(); err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.providerURL("/files"), &buf)
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	out.Header.Set("Content-Type", mw.FormDataContentType())
	h.forward(w, r, out, "upload")
}

// FileURL fetches a signed URL for a previously uploaded file. Expiry
// defaults to 24 hours.
func (h *ProxyHandlers) FileURL(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeErrorMessage(w, http.StatusBadRequest, "File ID is required")
		return
	}
	expiry := r.URL.Query().Get("expiry")
	if expiry == "" {
		expiry = "24"
	}

	endpoint := h.providerURL("/files/"+url.PathEscape(id)+"/url") + "?expiry=" + url.QueryEscape(expiry)
	out, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	out.Header.Set("Accept", "application/json")
	h.forward(w, r, out, "file_url")
}

// OCR submits a signed document URL for text recognition.
func (h *ProxyHandlers) OCR(w http.ResponseWriter, r *http.Request) {
	var in struct {
		DocumentURL string `json:"documentUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.DocumentURL == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Document URL is required")
		return
	}

	payload, _ := json.Marshal(map[string]any{
		"model": h.cfg.Model,
		"document": map[string]string{
			"type":         "document_url",
			"document_url": in.DocumentURL,
		},
		"include_image_base64": true,
	})

	out, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.providerURL("/ocr"), bytes.NewReader(payload))
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	out.Header.Set("Content-Type", "application/json")
	h.forward(w, r, out, "ocr")
}

// ExtractPO structures OCR text into purchase-order fields via the language
// model. Unlike the pure forwarders this endpoint post-processes the model
// output (schema validation, sanitization) before answering.
func (h *ProxyHandlers) ExtractPO(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ExtractedText string `json:"extractedText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.ExtractedText) == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Extracted text is required")
		return
	}

	fields, _, err := h.extractor.ExtractFields(r.Context(), llm.ExtractRequest{ExtractedText: in.ExtractedText})
	if err != nil {
		h.logger.Error("proxy.extract_po.failed", "req_id", middleware.GetReqID(r.Context()), "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, fmt.Sprintf("Failed to extract PO fields: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func (h *ProxyHandlers) providerURL(path string) string {
	return strings.TrimRight(h.cfg.BaseURL, "/") + path
}
