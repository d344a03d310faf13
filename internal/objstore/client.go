// Package objstore is a thin client for a Supabase-style object storage API:
// bucket probe, object upload, and public-URL derivation.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Remediation messages for the two misconfigurations every first-time setup
// hits. These are shown to the user directly; the operation is not retried.
const (
	MsgBucketNotFound = `Storage bucket %q not found. Please create it in your storage dashboard.`
	MsgRLSPolicy      = `Storage bucket %q has row-level security enabled but no policy allows uploads. Either disable RLS on the bucket or add an INSERT policy for anonymous users.`
)

// Config for the storage client.
type Config struct {
	BaseURL string // e.g. https://xyz.supabase.co
	APIKey  string
	Bucket  string
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Bucket == "" {
		cfg.Bucket = "purchase-orders"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ObjectKey builds the collision-free object name for an upload:
// epoch-millis prefix plus the original filename.
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), filename)
}

// ListProbe checks that the bucket exists and is readable by attempting to
// list a single object. Failures are rewritten into remediation text.
func (c *Client) ListProbe(ctx context.Context) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/storage/v1/object/list/" + c.cfg.Bucket
	body := strings.NewReader(`{"prefix":"","limit":1}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("objstore.list.failed", "bucket", c.cfg.Bucket, "status", resp.StatusCode, "body", string(raw))
		return c.remediate(resp.StatusCode, raw, "list")
	}
	return nil
}

// Upload writes content under key. The object is never overwritten; repeated
// uploads of identically-named files get distinct keys via ObjectKey.
func (c *Client) Upload(ctx context.Context, key string, content []byte, contentType string) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/storage/v1/object/" + c.cfg.Bucket + "/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(content))
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	req.Header.Set("x-upsert", "false")
	c.authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("objstore.upload.failed", "bucket", c.cfg.Bucket, "key", key, "status", resp.StatusCode, "body", string(raw))
		return c.remediate(resp.StatusCode, raw, "upload")
	}

	c.logger.Info("objstore.upload.ok",
		"bucket", c.cfg.Bucket,
		"key", key,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// PublicURL derives the public access URL for a stored object.
func (c *Client) PublicURL(key string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/storage/v1/object/public/" + c.cfg.Bucket + "/" + url.PathEscape(key)
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string { return c.cfg.Bucket }

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("apikey", c.cfg.APIKey)
}

// remediate rewrites known provider errors into actionable text; anything
// unrecognized keeps the provider's message.
func (c *Client) remediate(status int, raw []byte, op string) error {
	msg := string(raw)
	switch {
	case strings.Contains(msg, "not found") || status == http.StatusNotFound:
		return fmt.Errorf(MsgBucketNotFound, c.cfg.Bucket)
	case strings.Contains(msg, "row-level security"):
		return fmt.Errorf(MsgRLSPolicy, c.cfg.Bucket)
	default:
		return fmt.Errorf("storage %s failed (%d): %s", op, status, msg)
	}
}
