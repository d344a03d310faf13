package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseOrder represents a confirmed purchase order for data transfer between layers.
type PurchaseOrder struct {
	ID           uuid.UUID   `json:"id"`
	CustomerName string      `json:"customer_name"`
	PONumber     string      `json:"po_number"`
	PODate       time.Time   `json:"po_date"`
	DocumentID   *uuid.UUID  `json:"document_id,omitempty"`
	LineItems    []*LineItem `json:"line_items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// LineItem represents one purchase-order line for data transfer between layers.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	Position    int       `json:"position"`
	ItemNumber  string    `json:"item_number,omitempty"`
	Description string    `json:"description,omitempty"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
}
