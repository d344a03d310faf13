// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/predicate"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdate) SetContentType(v string) *DocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdate) ClearContentType() *DocumentUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetPublicURL sets the "public_url" field.
func (_u *DocumentUpdate) SetPublicURL(v string) *DocumentUpdate {
	_u.mutation.SetPublicURL(v)
	return _u
}

// SetNillablePublicURL sets the "public_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePublicURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPublicURL(*v)
	}
	return _u
}

// ClearPublicURL clears the value of the "public_url" field.
func (_u *DocumentUpdate) ClearPublicURL() *DocumentUpdate {
	_u.mutation.ClearPublicURL()
	return _u
}

// AddPurchaseOrderIDs adds the "purchase_orders" edge to the PurchaseOrder entity by IDs.
func (_u *DocumentUpdate) AddPurchaseOrderIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddPurchaseOrderIDs(ids...)
	return _u
}

// AddPurchaseOrders adds the "purchase_orders" edges to the PurchaseOrder entity.
func (_u *DocumentUpdate) AddPurchaseOrders(v ...*PurchaseOrder) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPurchaseOrderIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPurchaseOrders clears all "purchase_orders" edges to the PurchaseOrder entity.
func (_u *DocumentUpdate) ClearPurchaseOrders() *DocumentUpdate {
	_u.mutation.ClearPurchaseOrders()
	return _u
}

// RemovePurchaseOrderIDs removes the "purchase_orders" edge to PurchaseOrder entities by IDs.
func (_u *DocumentUpdate) RemovePurchaseOrderIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemovePurchaseOrderIDs(ids...)
	return _u
}

// RemovePurchaseOrders removes "purchase_orders" edges to PurchaseOrder entities.
func (_u *DocumentUpdate) RemovePurchaseOrders(v ...*PurchaseOrder) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePurchaseOrderIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.PublicURL(); ok {
		_spec.SetField(document.FieldPublicURL, field.TypeString, value)
	}
	if _u.mutation.PublicURLCleared() {
		_spec.ClearField(document.FieldPublicURL, field.TypeString)
	}
	if _u.mutation.PurchaseOrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPurchaseOrdersIDs(); len(nodes) > 0 && !_u.mutation.PurchaseOrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PurchaseOrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetContentType sets the "content_type" field.
func (_u *DocumentUpdateOne) SetContentType(v string) *DocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *DocumentUpdateOne) ClearContentType() *DocumentUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetPublicURL sets the "public_url" field.
func (_u *DocumentUpdateOne) SetPublicURL(v string) *DocumentUpdateOne {
	_u.mutation.SetPublicURL(v)
	return _u
}

// SetNillablePublicURL sets the "public_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePublicURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPublicURL(*v)
	}
	return _u
}

// ClearPublicURL clears the value of the "public_url" field.
func (_u *DocumentUpdateOne) ClearPublicURL() *DocumentUpdateOne {
	_u.mutation.ClearPublicURL()
	return _u
}

// AddPurchaseOrderIDs adds the "purchase_orders" edge to the PurchaseOrder entity by IDs.
func (_u *DocumentUpdateOne) AddPurchaseOrderIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddPurchaseOrderIDs(ids...)
	return _u
}

// AddPurchaseOrders adds the "purchase_orders" edges to the PurchaseOrder entity.
func (_u *DocumentUpdateOne) AddPurchaseOrders(v ...*PurchaseOrder) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPurchaseOrderIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPurchaseOrders clears all "purchase_orders" edges to the PurchaseOrder entity.
func (_u *DocumentUpdateOne) ClearPurchaseOrders() *DocumentUpdateOne {
	_u.mutation.ClearPurchaseOrders()
	return _u
}

// RemovePurchaseOrderIDs removes the "purchase_orders" edge to PurchaseOrder entities by IDs.
func (_u *DocumentUpdateOne) RemovePurchaseOrderIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemovePurchaseOrderIDs(ids...)
	return _u
}

// RemovePurchaseOrders removes "purchase_orders" edges to PurchaseOrder entities.
func (_u *DocumentUpdateOne) RemovePurchaseOrders(v ...*PurchaseOrder) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePurchaseOrderIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(document.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(document.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.PublicURL(); ok {
		_spec.SetField(document.FieldPublicURL, field.TypeString, value)
	}
	if _u.mutation.PublicURLCleared() {
		_spec.ClearField(document.FieldPublicURL, field.TypeString)
	}
	if _u.mutation.PurchaseOrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPurchaseOrdersIDs(); len(nodes) > 0 && !_u.mutation.PurchaseOrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PurchaseOrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PurchaseOrdersTable,
			Columns: []string{document.PurchaseOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
