// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/predicate"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// PurchaseOrderUpdate is the builder for updating PurchaseOrder entities.
type PurchaseOrderUpdate struct {
	config
	hooks    []Hook
	mutation *PurchaseOrderMutation
}

// Where appends a list predicates to the PurchaseOrderUpdate builder.
func (_u *PurchaseOrderUpdate) Where(ps ...predicate.PurchaseOrder) *PurchaseOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PurchaseOrderUpdate) SetDocumentID(v uuid.UUID) *PurchaseOrderUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableDocumentID(v *uuid.UUID) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *PurchaseOrderUpdate) ClearDocumentID() *PurchaseOrderUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *PurchaseOrderUpdate) SetCustomerName(v string) *PurchaseOrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableCustomerName(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *PurchaseOrderUpdate) SetPoNumber(v string) *PurchaseOrderUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillablePoNumber(v *string) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *PurchaseOrderUpdate) SetPoDate(v time.Time) *PurchaseOrderUpdate {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillablePoDate(v *time.Time) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PurchaseOrderUpdate) SetCreatedAt(v time.Time) *PurchaseOrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PurchaseOrderUpdate) SetNillableCreatedAt(v *time.Time) *PurchaseOrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseOrderUpdate) SetUpdatedAt(v time.Time) *PurchaseOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PurchaseOrderUpdate) SetDocument(v *Document) *PurchaseOrderUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *PurchaseOrderUpdate) AddLineItemIDs(ids ...uuid.UUID) *PurchaseOrderUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *PurchaseOrderUpdate) AddLineItems(v ...*LineItem) *PurchaseOrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_u *PurchaseOrderUpdate) Mutation() *PurchaseOrderMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PurchaseOrderUpdate) ClearDocument() *PurchaseOrderUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *PurchaseOrderUpdate) ClearLineItems() *PurchaseOrderUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *PurchaseOrderUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *PurchaseOrderUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *PurchaseOrderUpdate) RemoveLineItems(v ...*LineItem) *PurchaseOrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PurchaseOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PurchaseOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaseorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseOrderUpdate) check() error {
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := purchaseorder.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PoNumber(); ok {
		if err := purchaseorder.PoNumberValidator(v); err != nil {
			return &ValidationError{Name: "po_number", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.po_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseorder.Table, purchaseorder.Columns, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(purchaseorder.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(purchaseorder.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(purchaseorder.FieldPoDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaseorder.DocumentTable,
			Columns: []string{purchaseorder.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaseorder.DocumentTable,
			Columns: []string{purchaseorder.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PurchaseOrderUpdateOne is the builder for updating a single PurchaseOrder entity.
type PurchaseOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PurchaseOrderMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *PurchaseOrderUpdateOne) SetDocumentID(v uuid.UUID) *PurchaseOrderUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableDocumentID(v *uuid.UUID) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *PurchaseOrderUpdateOne) ClearDocumentID() *PurchaseOrderUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *PurchaseOrderUpdateOne) SetCustomerName(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableCustomerName(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *PurchaseOrderUpdateOne) SetPoNumber(v string) *PurchaseOrderUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillablePoNumber(v *string) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *PurchaseOrderUpdateOne) SetPoDate(v time.Time) *PurchaseOrderUpdateOne {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillablePoDate(v *time.Time) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PurchaseOrderUpdateOne) SetCreatedAt(v time.Time) *PurchaseOrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PurchaseOrderUpdateOne) SetNillableCreatedAt(v *time.Time) *PurchaseOrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseOrderUpdateOne) SetUpdatedAt(v time.Time) *PurchaseOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PurchaseOrderUpdateOne) SetDocument(v *Document) *PurchaseOrderUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *PurchaseOrderUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *PurchaseOrderUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *PurchaseOrderUpdateOne) AddLineItems(v ...*LineItem) *PurchaseOrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_u *PurchaseOrderUpdateOne) Mutation() *PurchaseOrderMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PurchaseOrderUpdateOne) ClearDocument() *PurchaseOrderUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *PurchaseOrderUpdateOne) ClearLineItems() *PurchaseOrderUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *PurchaseOrderUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *PurchaseOrderUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *PurchaseOrderUpdateOne) RemoveLineItems(v ...*LineItem) *PurchaseOrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Where appends a list predicates to the PurchaseOrderUpdate builder.
func (_u *PurchaseOrderUpdateOne) Where(ps ...predicate.PurchaseOrder) *PurchaseOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PurchaseOrderUpdateOne) Select(field string, fields ...string) *PurchaseOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PurchaseOrder entity.
func (_u *PurchaseOrderUpdateOne) Save(ctx context.Context) (*PurchaseOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseOrderUpdateOne) SaveX(ctx context.Context) *PurchaseOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PurchaseOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaseorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseOrderUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := purchaseorder.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PoNumber(); ok {
		if err := purchaseorder.PoNumberValidator(v); err != nil {
			return &ValidationError{Name: "po_number", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.po_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseOrderUpdateOne) sqlSave(ctx context.Context) (_node *PurchaseOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseorder.Table, purchaseorder.Columns, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PurchaseOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaseorder.FieldID)
		for _, f := range fields {
			if !purchaseorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != purchaseorder.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(purchaseorder.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(purchaseorder.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(purchaseorder.FieldPoDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaseorder.DocumentTable,
			Columns: []string{purchaseorder.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaseorder.DocumentTable,
			Columns: []string{purchaseorder.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaseorder.LineItemsTable,
			Columns: []string{purchaseorder.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PurchaseOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
