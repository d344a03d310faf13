package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/entity"
	"github.com/poflow/po-upload/internal/llm"
)

// poDateLayout is the wire format for purchase-order dates.
const poDateLayout = "01/02/2006"

// PurchaseOrderStore persists confirmed purchase orders.
type PurchaseOrderStore interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
}

// WorkbookWriter renders purchase orders into a spreadsheet.
type WorkbookWriter interface {
	Workbook(pos []*entity.PurchaseOrder) ([]byte, error)
}

// PurchaseOrderHandlers serve the confirmed-record persistence endpoints.
type PurchaseOrderHandlers struct {
	store    PurchaseOrderStore
	exporter WorkbookWriter
	logger   *slog.Logger
}

func NewPurchaseOrderHandlers(store PurchaseOrderStore, exporter WorkbookWriter, logger *slog.Logger) *PurchaseOrderHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &PurchaseOrderHandlers{store: store, exporter: exporter, logger: logger}
}

type createPORequest struct {
	llm.PurchaseOrderFields
	DocumentID *uuid.UUID `json:"documentId,omitempty"`
}

// Create stores a confirmed purchase order. The body is the confirmed record
// in its wire shape; poDate must be mm/dd/yyyy.
func (h *PurchaseOrderHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var in createPORequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.CustomerName == "" || in.PONumber == "" {
		writeErrorMessage(w, http.StatusBadRequest, "customerName and poNumber are required")
		return
	}
	poDate, err := time.Parse(poDateLayout, in.PODate)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "poDate must be mm/dd/yyyy")
		return
	}

	po := &entity.PurchaseOrder{
		CustomerName: in.CustomerName,
		PONumber:     in.PONumber,
		PODate:       poDate,
		DocumentID:   in.DocumentID,
		LineItems:    make([]*entity.LineItem, 0, len(in.LineItems)),
	}
	for i, li := range in.LineItems {
		po.LineItems = append(po.LineItems, &entity.LineItem{
			Position:    i,
			ItemNumber:  li.ItemNumber,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}

	created, err := h.store.Create(r.Context(), po)
	if err != nil {
		writeStoreError(w, r, h.logger, "purchase_orders.create", err)
		return
	}

	h.logger.Info("purchase_orders.create",
		"req_id", middleware.GetReqID(r.Context()),
		"id", created.ID,
		"po_number", created.PONumber,
		"line_items", len(created.LineItems),
	)
	writeJSON(w, http.StatusCreated, created)
}

// List returns all stored purchase orders, newest first.
func (h *PurchaseOrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	pos, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, r, h.logger, "purchase_orders.list", err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}

// Export returns every stored purchase order as an XLSX workbook.
func (h *PurchaseOrderHandlers) Export(w http.ResponseWriter, r *http.Request) {
	pos, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, r, h.logger, "purchase_orders.export", err)
		return
	}
	book, err := h.exporter.Workbook(pos)
	if err != nil {
		h.logger.Error("purchase_orders.export.failed", "req_id", middleware.GetReqID(r.Context()), "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="purchase-orders.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(book)
}

func writeStoreError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	logger.Error(op+".failed", "req_id", middleware.GetReqID(r.Context()), "error", err)
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
