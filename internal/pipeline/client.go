package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/poflow/po-upload/internal/entity"
	"github.com/poflow/po-upload/internal/llm"
	"github.com/poflow/po-upload/internal/ocr"
)

// Client calls the credential-proxy endpoints over HTTP. It holds no provider
// secrets; credential injection happens server-side. An optional session
// token is attached as a bearer header for guarded deployments.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetSessionToken attaches a session token to every subsequent request.
func (c *Client) SetSessionToken(token string) { c.token = token }

// UploadFile sends the document as multipart field "file" and returns the
// provider-assigned file id.
func (c *Client) UploadFile(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("upload response carried no file id")
	}
	return resp.ID, nil
}

// FileURL fetches a signed document URL for the uploaded file.
func (c *Client) FileURL(ctx context.Context, fileID string, expiryHours int) (string, error) {
	q := url.Values{}
	q.Set("id", fileID)
	q.Set("expiry", strconv.Itoa(expiryHours))

	raw, err := c.do(ctx, http.MethodGet, "/api/file-url?"+q.Encode(), nil, "")
	if err != nil {
		return "", err
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode file-url response: %w", err)
	}
	if resp.URL == "" {
		return "", fmt.Errorf("file-url response carried no url")
	}
	return resp.URL, nil
}

// RunOCR submits the signed URL for text recognition.
func (c *Client) RunOCR(ctx context.Context, documentURL string) (ocr.Result, error) {
	body, _ := json.Marshal(map[string]string{"documentUrl": documentURL})
	raw, err := c.do(ctx, http.MethodPost, "/api/ocr", bytes.NewReader(body), "application/json")
	if err != nil {
		return ocr.Result{}, err
	}
	var result ocr.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return ocr.Result{}, fmt.Errorf("decode ocr response: %w", err)
	}
	return result, nil
}

// ExtractPO structures the assembled OCR text into a purchase-order record.
func (c *Client) ExtractPO(ctx context.Context, extractedText string) (llm.PurchaseOrderFields, error) {
	body, _ := json.Marshal(map[string]string{"extractedText": extractedText})
	raw, err := c.do(ctx, http.MethodPost, "/api/extract-po", bytes.NewReader(body), "application/json")
	if err != nil {
		return llm.PurchaseOrderFields{}, err
	}
	var fields llm.PurchaseOrderFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return llm.PurchaseOrderFields{}, fmt.Errorf("decode extract-po response: %w", err)
	}
	return fields, nil
}

// RegisterDocument records a stored file artifact server-side and returns
// its id for linking into a confirmed record.
func (c *Client) RegisterDocument(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	body, _ := json.Marshal(map[string]any{
		"objectKey":   doc.ObjectKey,
		"filename":    doc.Filename,
		"fileSize":    doc.FileSize,
		"contentType": doc.ContentType,
		"publicUrl":   doc.PublicURL,
	})
	raw, err := c.do(ctx, http.MethodPost, "/api/documents", bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}
	var created entity.Document
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decode document response: %w", err)
	}
	return &created, nil
}

// SavePurchaseOrder persists a confirmed record, optionally linked to a
// registered document.
func (c *Client) SavePurchaseOrder(ctx context.Context, fields llm.PurchaseOrderFields, documentID *uuid.UUID) (*entity.PurchaseOrder, error) {
	payload := map[string]any{
		"customerName": fields.CustomerName,
		"poNumber":     fields.PONumber,
		"poDate":       fields.PODate,
		"lineItems":    fields.LineItems,
	}
	if documentID != nil {
		payload["documentId"] = documentID
	}
	body, _ := json.Marshal(payload)
	raw, err := c.do(ctx, http.MethodPost, "/api/purchase-orders", bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}
	var created entity.PurchaseOrder
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decode purchase order response: %w", err)
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	c.logger.Debug("pipeline.proxy.call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, errorMessage(raw))
	}
	return raw, nil
}

// errorMessage pulls the message out of the { "error": ... } envelope; the
// error value may be a string or the provider's raw JSON object.
func errorMessage(raw []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Error) == 0 {
		return string(raw)
	}
	var msg string
	if err := json.Unmarshal(envelope.Error, &msg); err == nil {
		return msg
	}
	return string(envelope.Error)
}
