// Code generated by ent, DO NOT EDIT.

package lineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the lineitem type in the database.
	Label = "line_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPurchaseOrderID holds the string denoting the purchase_order_id field in the database.
	FieldPurchaseOrderID = "purchase_order_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldItemNumber holds the string denoting the item_number field in the database.
	FieldItemNumber = "item_number"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// EdgePurchaseOrder holds the string denoting the purchase_order edge name in mutations.
	EdgePurchaseOrder = "purchase_order"
	// Table holds the table name of the lineitem in the database.
	Table = "line_items"
	// PurchaseOrderTable is the table that holds the purchase_order relation/edge.
	PurchaseOrderTable = "line_items"
	// PurchaseOrderInverseTable is the table name for the PurchaseOrder entity.
	// It exists in this package in order to avoid circular dependency with the "purchaseorder" package.
	PurchaseOrderInverseTable = "purchase_orders"
	// PurchaseOrderColumn is the table column denoting the purchase_order relation/edge.
	PurchaseOrderColumn = "purchase_order_id"
)

// Columns holds all SQL columns for lineitem fields.
var Columns = []string{
	FieldID,
	FieldPurchaseOrderID,
	FieldPosition,
	FieldItemNumber,
	FieldDescription,
	FieldQuantity,
	FieldUnitPrice,
	FieldTotalPrice,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity float64
	// DefaultUnitPrice holds the default value on creation for the "unit_price" field.
	DefaultUnitPrice float64
	// DefaultTotalPrice holds the default value on creation for the "total_price" field.
	DefaultTotalPrice float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LineItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPurchaseOrderID orders the results by the purchase_order_id field.
func ByPurchaseOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseOrderID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByItemNumber orders the results by the item_number field.
func ByItemNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemNumber, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByPurchaseOrderField orders the results by purchase_order field.
func ByPurchaseOrderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPurchaseOrderStep(), sql.OrderByField(field, opts...))
	}
}
func newPurchaseOrderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PurchaseOrderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PurchaseOrderTable, PurchaseOrderColumn),
	)
}
