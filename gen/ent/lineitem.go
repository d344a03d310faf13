// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// LineItem is the model entity for the LineItem schema.
type LineItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PurchaseOrderID holds the value of the "purchase_order_id" field.
	PurchaseOrderID uuid.UUID `json:"purchase_order_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// ItemNumber holds the value of the "item_number" field.
	ItemNumber string `json:"item_number,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice float64 `json:"unit_price,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice float64 `json:"total_price,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LineItemQuery when eager-loading is set.
	Edges        LineItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LineItemEdges holds the relations/edges for other nodes in the graph.
type LineItemEdges struct {
	// PurchaseOrder holds the value of the purchase_order edge.
	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PurchaseOrderOrErr returns the PurchaseOrder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LineItemEdges) PurchaseOrderOrErr() (*PurchaseOrder, error) {
	if e.PurchaseOrder != nil {
		return e.PurchaseOrder, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: purchaseorder.Label}
	}
	return nil, &NotLoadedError{edge: "purchase_order"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LineItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lineitem.FieldQuantity, lineitem.FieldUnitPrice, lineitem.FieldTotalPrice:
			values[i] = new(sql.NullFloat64)
		case lineitem.FieldPosition:
			values[i] = new(sql.NullInt64)
		case lineitem.FieldItemNumber, lineitem.FieldDescription:
			values[i] = new(sql.NullString)
		case lineitem.FieldID, lineitem.FieldPurchaseOrderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LineItem fields.
func (_m *LineItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lineitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lineitem.FieldPurchaseOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_order_id", values[i])
			} else if value != nil {
				_m.PurchaseOrderID = *value
			}
		case lineitem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case lineitem.FieldItemNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_number", values[i])
			} else if value.Valid {
				_m.ItemNumber = value.String
			}
		case lineitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case lineitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case lineitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case lineitem.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LineItem.
// This includes values selected through modifiers, order, etc.
func (_m *LineItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPurchaseOrder queries the "purchase_order" edge of the LineItem entity.
func (_m *LineItem) QueryPurchaseOrder() *PurchaseOrderQuery {
	return NewLineItemClient(_m.config).QueryPurchaseOrder(_m)
}

// Update returns a builder for updating this LineItem.
// Note that you need to call LineItem.Unwrap() before calling this method if this LineItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LineItem) Update() *LineItemUpdateOne {
	return NewLineItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LineItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LineItem) Unwrap() *LineItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LineItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LineItem) String() string {
	var builder strings.Builder
	builder.WriteString("LineItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("purchase_order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PurchaseOrderID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("item_number=")
	builder.WriteString(_m.ItemNumber)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteByte(')')
	return builder.String()
}

// LineItems is a parsable slice of LineItem.
type LineItems []*LineItem
