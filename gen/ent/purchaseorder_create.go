// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// PurchaseOrderCreate is the builder for creating a PurchaseOrder entity.
type PurchaseOrderCreate struct {
	config
	mutation *PurchaseOrderMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *PurchaseOrderCreate) SetDocumentID(v uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableDocumentID(v *uuid.UUID) *PurchaseOrderCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *PurchaseOrderCreate) SetCustomerName(v string) *PurchaseOrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetPoNumber sets the "po_number" field.
func (_c *PurchaseOrderCreate) SetPoNumber(v string) *PurchaseOrderCreate {
	_c.mutation.SetPoNumber(v)
	return _c
}

// SetPoDate sets the "po_date" field.
func (_c *PurchaseOrderCreate) SetPoDate(v time.Time) *PurchaseOrderCreate {
	_c.mutation.SetPoDate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PurchaseOrderCreate) SetCreatedAt(v time.Time) *PurchaseOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableCreatedAt(v *time.Time) *PurchaseOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PurchaseOrderCreate) SetUpdatedAt(v time.Time) *PurchaseOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableUpdatedAt(v *time.Time) *PurchaseOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PurchaseOrderCreate) SetID(v uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PurchaseOrderCreate) SetNillableID(v *uuid.UUID) *PurchaseOrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *PurchaseOrderCreate) SetDocument(v *Document) *PurchaseOrderCreate {
	return _c.SetDocumentID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_c *PurchaseOrderCreate) AddLineItemIDs(ids ...uuid.UUID) *PurchaseOrderCreate {
	_c.mutation.AddLineItemIDs(ids...)
	return _c
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_c *PurchaseOrderCreate) AddLineItems(v ...*LineItem) *PurchaseOrderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineItemIDs(ids...)
}

// Mutation returns the PurchaseOrderMutation object of the builder.
func (_c *PurchaseOrderCreate) Mutation() *PurchaseOrderMutation {
	return _c.mutation
}

// Save creates the PurchaseOrder in the database.
func (_c *PurchaseOrderCreate) Save(ctx context.Context) (*PurchaseOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseOrderCreate) SaveX(ctx context.Context) *PurchaseOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseOrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := purchaseorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := purchaseorder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := purchaseorder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseOrderCreate) check() error {
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "PurchaseOrder.customer_name"`)}
	}
	if v, ok := _c.mutation.CustomerName(); ok {
		if err := purchaseorder.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.customer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PoNumber(); !ok {
		return &ValidationError{Name: "po_number", err: errors.New(`ent: missing required field "PurchaseOrder.po_number"`)}
	}
	if v, ok := _c.mutation.PoNumber(); ok {
		if err := purchaseorder.PoNumberValidator(v); err != nil {
			return &ValidationError{Name: "po_number", err: fmt.Errorf(`ent: validator failed for field "PurchaseOrder.po_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PoDate(); !ok {
		return &ValidationError{Name: "po_date", err: errors.New(`ent: missing required field "PurchaseOrder.po_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PurchaseOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PurchaseOrder.updated_at"`)}
	}
	return nil
}

func (_c *PurchaseOrderCreate) sqlSave(ctx context.Context) (*PurchaseOrder, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PurchaseOrderCreate) createSpec() (*PurchaseOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaseorder.Table, sqlgraph.NewFieldSpec(purchaseorder.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(purchaseorder.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.PoNumber(); ok {
		_spec.SetField(purchaseorder.FieldPoNumber, field.TypeString, value)
		_node.PoNumber = value
	}
	if value, ok := _c.mutation.PoDate(); ok {
		_spec.SetField(purchaseorder.FieldPoDate, field.TypeTime, value)
		_node.PoDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaseorder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PurchaseOrderCreateBulk is the builder for creating many PurchaseOrder entities in bulk.
type PurchaseOrderCreateBulk struct {
	config
	err      error
	builders []*PurchaseOrderCreate
}

// Save creates the PurchaseOrder entities in the database.
func (_c *PurchaseOrderCreateBulk) Save(ctx context.Context) ([]*PurchaseOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseOrderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PurchaseOrderCreateBulk) SaveX(ctx context.Context) []*PurchaseOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
