package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poflow/po-upload/internal/entity"
)

type fakePOStore struct {
	created []*entity.PurchaseOrder
	listErr error
}

func (f *fakePOStore) Create(ctx context.Context, po *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	po.ID = uuid.New()
	po.CreatedAt = time.Now()
	f.created = append(f.created, po)
	return po, nil
}

func (f *fakePOStore) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	return f.created, f.listErr
}

type fakeWorkbook struct{}

func (fakeWorkbook) Workbook(pos []*entity.PurchaseOrder) ([]byte, error) {
	return []byte("PK-xlsx-bytes"), nil
}

func TestCreatePurchaseOrder(t *testing.T) {
	store := &fakePOStore{}
	h := NewPurchaseOrderHandlers(store, fakeWorkbook{}, nil)

	body := `{
		"customerName": "Acme Corp",
		"poNumber": "1001",
		"poDate": "03/05/2024",
		"lineItems": [
			{"itemNumber":"A-1","description":"Widget","quantity":2,"unitPrice":5,"totalPrice":10}
		]
	}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/purchase-orders", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	po := store.created[0]
	assert.Equal(t, "Acme Corp", po.CustomerName)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), po.PODate)
	require.Len(t, po.LineItems, 1)
	assert.Equal(t, 0, po.LineItems[0].Position)
	assert.Equal(t, float64(2), po.LineItems[0].Quantity)
}

func TestCreatePurchaseOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing header fields", `{"poDate":"03/05/2024"}`},
		{"bad date format", `{"customerName":"A","poNumber":"1","poDate":"2024-03-05"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakePOStore{}
			h := NewPurchaseOrderHandlers(store, fakeWorkbook{}, nil)
			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/purchase-orders", bytes.NewBufferString(tc.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.created)
		})
	}
}

func TestListPurchaseOrders(t *testing.T) {
	store := &fakePOStore{created: []*entity.PurchaseOrder{
		{ID: uuid.New(), CustomerName: "Acme Corp", PONumber: "1001"},
	}}
	h := NewPurchaseOrderHandlers(store, fakeWorkbook{}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/purchase-orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*entity.PurchaseOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1001", got[0].PONumber)
}

func TestExportPurchaseOrders(t *testing.T) {
	h := NewPurchaseOrderHandlers(&fakePOStore{}, fakeWorkbook{}, nil)

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/purchase-orders/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "purchase-orders.xlsx")
	assert.Equal(t, "PK-xlsx-bytes", rec.Body.String())
}
