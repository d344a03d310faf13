// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// PurchaseOrder is the model entity for the PurchaseOrder schema.
type PurchaseOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// PoNumber holds the value of the "po_number" field.
	PoNumber string `json:"po_number,omitempty"`
	// PoDate holds the value of the "po_date" field.
	PoDate time.Time `json:"po_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PurchaseOrderQuery when eager-loading is set.
	Edges        PurchaseOrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PurchaseOrderEdges holds the relations/edges for other nodes in the graph.
type PurchaseOrderEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// LineItems holds the value of the line_items edge.
	LineItems []*LineItem `json:"line_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PurchaseOrderEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e PurchaseOrderEdges) LineItemsOrErr() ([]*LineItem, error) {
	if e.loadedTypes[1] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PurchaseOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case purchaseorder.FieldCustomerName, purchaseorder.FieldPoNumber:
			values[i] = new(sql.NullString)
		case purchaseorder.FieldPoDate, purchaseorder.FieldCreatedAt, purchaseorder.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case purchaseorder.FieldID, purchaseorder.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PurchaseOrder fields.
func (_m *PurchaseOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case purchaseorder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case purchaseorder.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case purchaseorder.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case purchaseorder.FieldPoNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_number", values[i])
			} else if value.Valid {
				_m.PoNumber = value.String
			}
		case purchaseorder.FieldPoDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field po_date", values[i])
			} else if value.Valid {
				_m.PoDate = value.Time
			}
		case purchaseorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case purchaseorder.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PurchaseOrder.
// This includes values selected through modifiers, order, etc.
func (_m *PurchaseOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the PurchaseOrder entity.
func (_m *PurchaseOrder) QueryDocument() *DocumentQuery {
	return NewPurchaseOrderClient(_m.config).QueryDocument(_m)
}

// QueryLineItems queries the "line_items" edge of the PurchaseOrder entity.
func (_m *PurchaseOrder) QueryLineItems() *LineItemQuery {
	return NewPurchaseOrderClient(_m.config).QueryLineItems(_m)
}

// Update returns a builder for updating this PurchaseOrder.
// Note that you need to call PurchaseOrder.Unwrap() before calling this method if this PurchaseOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PurchaseOrder) Update() *PurchaseOrderUpdateOne {
	return NewPurchaseOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PurchaseOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PurchaseOrder) Unwrap() *PurchaseOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PurchaseOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PurchaseOrder) String() string {
	var builder strings.Builder
	builder.WriteString("PurchaseOrder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	builder.WriteString("po_number=")
	builder.WriteString(_m.PoNumber)
	builder.WriteString(", ")
	builder.WriteString("po_date=")
	builder.WriteString(_m.PoDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PurchaseOrders is a parsable slice of PurchaseOrder.
type PurchaseOrders []*PurchaseOrder
