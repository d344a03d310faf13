// Code generated by ent, DO NOT EDIT.

package purchaseorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldDocumentID, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCustomerName, v))
}

// PoNumber applies equality check predicate on the "po_number" field. It's identical to PoNumberEQ.
func PoNumber(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPoNumber, v))
}

// PoDate applies equality check predicate on the "po_date" field. It's identical to PoDateEQ.
func PoDate(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPoDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotNull(FieldDocumentID))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldCustomerName, v))
}

// PoNumberEQ applies the EQ predicate on the "po_number" field.
func PoNumberEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPoNumber, v))
}

// PoNumberNEQ applies the NEQ predicate on the "po_number" field.
func PoNumberNEQ(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldPoNumber, v))
}

// PoNumberIn applies the In predicate on the "po_number" field.
func PoNumberIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldPoNumber, vs...))
}

// PoNumberNotIn applies the NotIn predicate on the "po_number" field.
func PoNumberNotIn(vs ...string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldPoNumber, vs...))
}

// PoNumberGT applies the GT predicate on the "po_number" field.
func PoNumberGT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldPoNumber, v))
}

// PoNumberGTE applies the GTE predicate on the "po_number" field.
func PoNumberGTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldPoNumber, v))
}

// PoNumberLT applies the LT predicate on the "po_number" field.
func PoNumberLT(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldPoNumber, v))
}

// PoNumberLTE applies the LTE predicate on the "po_number" field.
func PoNumberLTE(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldPoNumber, v))
}

// PoNumberContains applies the Contains predicate on the "po_number" field.
func PoNumberContains(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContains(FieldPoNumber, v))
}

// PoNumberHasPrefix applies the HasPrefix predicate on the "po_number" field.
func PoNumberHasPrefix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasPrefix(FieldPoNumber, v))
}

// PoNumberHasSuffix applies the HasSuffix predicate on the "po_number" field.
func PoNumberHasSuffix(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldHasSuffix(FieldPoNumber, v))
}

// PoNumberEqualFold applies the EqualFold predicate on the "po_number" field.
func PoNumberEqualFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEqualFold(FieldPoNumber, v))
}

// PoNumberContainsFold applies the ContainsFold predicate on the "po_number" field.
func PoNumberContainsFold(v string) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldContainsFold(FieldPoNumber, v))
}

// PoDateEQ applies the EQ predicate on the "po_date" field.
func PoDateEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldPoDate, v))
}

// PoDateNEQ applies the NEQ predicate on the "po_date" field.
func PoDateNEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldPoDate, v))
}

// PoDateIn applies the In predicate on the "po_date" field.
func PoDateIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldPoDate, vs...))
}

// PoDateNotIn applies the NotIn predicate on the "po_date" field.
func PoDateNotIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldPoDate, vs...))
}

// PoDateGT applies the GT predicate on the "po_date" field.
func PoDateGT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldPoDate, v))
}

// PoDateGTE applies the GTE predicate on the "po_date" field.
func PoDateGTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldPoDate, v))
}

// PoDateLT applies the LT predicate on the "po_date" field.
func PoDateLT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldPoDate, v))
}

// PoDateLTE applies the LTE predicate on the "po_date" field.
func PoDateLTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldPoDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLineItems applies the HasEdge predicate on the "line_items" edge.
func HasLineItems() predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLineItemsWith applies the HasEdge predicate on the "line_items" edge with a given conditions (other predicates).
func HasLineItemsWith(preds ...predicate.LineItem) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(func(s *sql.Selector) {
		step := newLineItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseOrder) predicate.PurchaseOrder {
	return predicate.PurchaseOrder(sql.NotPredicates(p))
}
