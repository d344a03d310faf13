package objstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "1700000000000-po-march.pdf", ObjectKey(now, "po-march.pdf"))

	// identically-named files uploaded at different times never collide
	later := now.Add(time.Millisecond)
	assert.NotEqual(t, ObjectKey(now, "a.pdf"), ObjectKey(later, "a.pdf"))
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotUpsert string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Key":"purchase-orders/k"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key", Bucket: "purchase-orders"}, nil)
	err := c.Upload(context.Background(), "123-file.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/purchase-orders/123-file.pdf", gotPath)
	assert.Equal(t, "Bearer anon-key", gotAuth)
	assert.Equal(t, "false", gotUpsert)
	assert.Equal(t, []byte("%PDF-1.4"), gotBody)
}

func TestRemediationMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantPart string
	}{
		{
			name:     "missing bucket",
			status:   http.StatusNotFound,
			body:     `{"error":"Bucket not found"}`,
			wantPart: "not found. Please create it",
		},
		{
			name:     "rls policy",
			status:   http.StatusForbidden,
			body:     `{"error":"new row violates row-level security policy"}`,
			wantPart: "row-level security",
		},
		{
			name:     "unrecognized error keeps provider message",
			status:   http.StatusInternalServerError,
			body:     `{"error":"boom"}`,
			wantPart: "boom",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, APIKey: "k", Bucket: "purchase-orders"}, nil)
			err := c.Upload(context.Background(), "k.pdf", []byte("x"), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantPart)

			err = c.ListProbe(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantPart)
		})
	}
}

func TestPublicURL(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://proj.supabase.co/", Bucket: "purchase-orders"}, nil)
	assert.Equal(t,
		"https://proj.supabase.co/storage/v1/object/public/purchase-orders/1-a.pdf",
		c.PublicURL("1-a.pdf"))
}
