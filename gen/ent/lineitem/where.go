// Code generated by ent, DO NOT EDIT.

package lineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldID, id))
}

// PurchaseOrderID applies equality check predicate on the "purchase_order_id" field. It's identical to PurchaseOrderIDEQ.
func PurchaseOrderID(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldPurchaseOrderID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldPosition, v))
}

// ItemNumber applies equality check predicate on the "item_number" field. It's identical to ItemNumberEQ.
func ItemNumber(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldItemNumber, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldTotalPrice, v))
}

// PurchaseOrderIDEQ applies the EQ predicate on the "purchase_order_id" field.
func PurchaseOrderIDEQ(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDNEQ applies the NEQ predicate on the "purchase_order_id" field.
func PurchaseOrderIDNEQ(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDIn applies the In predicate on the "purchase_order_id" field.
func PurchaseOrderIDIn(vs ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldPurchaseOrderID, vs...))
}

// PurchaseOrderIDNotIn applies the NotIn predicate on the "purchase_order_id" field.
func PurchaseOrderIDNotIn(vs ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldPurchaseOrderID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldPosition, v))
}

// ItemNumberEQ applies the EQ predicate on the "item_number" field.
func ItemNumberEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldItemNumber, v))
}

// ItemNumberNEQ applies the NEQ predicate on the "item_number" field.
func ItemNumberNEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldItemNumber, v))
}

// ItemNumberIn applies the In predicate on the "item_number" field.
func ItemNumberIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldItemNumber, vs...))
}

// ItemNumberNotIn applies the NotIn predicate on the "item_number" field.
func ItemNumberNotIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldItemNumber, vs...))
}

// ItemNumberGT applies the GT predicate on the "item_number" field.
func ItemNumberGT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldItemNumber, v))
}

// ItemNumberGTE applies the GTE predicate on the "item_number" field.
func ItemNumberGTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldItemNumber, v))
}

// ItemNumberLT applies the LT predicate on the "item_number" field.
func ItemNumberLT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldItemNumber, v))
}

// ItemNumberLTE applies the LTE predicate on the "item_number" field.
func ItemNumberLTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldItemNumber, v))
}

// ItemNumberContains applies the Contains predicate on the "item_number" field.
func ItemNumberContains(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContains(FieldItemNumber, v))
}

// ItemNumberHasPrefix applies the HasPrefix predicate on the "item_number" field.
func ItemNumberHasPrefix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasPrefix(FieldItemNumber, v))
}

// ItemNumberHasSuffix applies the HasSuffix predicate on the "item_number" field.
func ItemNumberHasSuffix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasSuffix(FieldItemNumber, v))
}

// ItemNumberIsNil applies the IsNil predicate on the "item_number" field.
func ItemNumberIsNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldIsNull(FieldItemNumber))
}

// ItemNumberNotNil applies the NotNil predicate on the "item_number" field.
func ItemNumberNotNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldNotNull(FieldItemNumber))
}

// ItemNumberEqualFold applies the EqualFold predicate on the "item_number" field.
func ItemNumberEqualFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEqualFold(FieldItemNumber, v))
}

// ItemNumberContainsFold applies the ContainsFold predicate on the "item_number" field.
func ItemNumberContainsFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContainsFold(FieldItemNumber, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldTotalPrice, v))
}

// HasPurchaseOrder applies the HasEdge predicate on the "purchase_order" edge.
func HasPurchaseOrder() predicate.LineItem {
	return predicate.LineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PurchaseOrderTable, PurchaseOrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPurchaseOrderWith applies the HasEdge predicate on the "purchase_order" edge with a given conditions (other predicates).
func HasPurchaseOrderWith(preds ...predicate.PurchaseOrder) predicate.LineItem {
	return predicate.LineItem(func(s *sql.Selector) {
		step := newPurchaseOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.NotPredicates(p))
}
