// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/predicate"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument      = "Document"
	TypeLineItem      = "LineItem"
	TypePurchaseOrder = "PurchaseOrder"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	object_key             *string
	filename               *string
	file_size              *int
	addfile_size           *int
	content_type           *string
	public_url             *string
	uploaded_at            *time.Time
	clearedFields          map[string]struct{}
	purchase_orders        map[uuid.UUID]struct{}
	removedpurchase_orders map[uuid.UUID]struct{}
	clearedpurchase_orders bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjectKey sets the "object_key" field.
func (m *DocumentMutation) SetObjectKey(s string) {
	m.object_key = &s
}

// ObjectKey returns the value of the "object_key" field in the mutation.
func (m *DocumentMutation) ObjectKey() (r string, exists bool) {
	v := m.object_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectKey returns the old "object_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldObjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectKey: %w", err)
	}
	return oldValue.ObjectKey, nil
}

// ResetObjectKey resets all changes to the "object_key" field.
func (m *DocumentMutation) ResetObjectKey() {
	m.object_key = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *DocumentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[document.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *DocumentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, document.FieldContentType)
}

// SetPublicURL sets the "public_url" field.
func (m *DocumentMutation) SetPublicURL(s string) {
	m.public_url = &s
}

// PublicURL returns the value of the "public_url" field in the mutation.
func (m *DocumentMutation) PublicURL() (r string, exists bool) {
	v := m.public_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicURL returns the old "public_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPublicURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicURL: %w", err)
	}
	return oldValue.PublicURL, nil
}

// ClearPublicURL clears the value of the "public_url" field.
func (m *DocumentMutation) ClearPublicURL() {
	m.public_url = nil
	m.clearedFields[document.FieldPublicURL] = struct{}{}
}

// PublicURLCleared returns if the "public_url" field was cleared in this mutation.
func (m *DocumentMutation) PublicURLCleared() bool {
	_, ok := m.clearedFields[document.FieldPublicURL]
	return ok
}

// ResetPublicURL resets all changes to the "public_url" field.
func (m *DocumentMutation) ResetPublicURL() {
	m.public_url = nil
	delete(m.clearedFields, document.FieldPublicURL)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddPurchaseOrderIDs adds the "purchase_orders" edge to the PurchaseOrder entity by ids.
func (m *DocumentMutation) AddPurchaseOrderIDs(ids ...uuid.UUID) {
	if m.purchase_orders == nil {
		m.purchase_orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.purchase_orders[ids[i]] = struct{}{}
	}
}

// ClearPurchaseOrders clears the "purchase_orders" edge to the PurchaseOrder entity.
func (m *DocumentMutation) ClearPurchaseOrders() {
	m.clearedpurchase_orders = true
}

// PurchaseOrdersCleared reports if the "purchase_orders" edge to the PurchaseOrder entity was cleared.
func (m *DocumentMutation) PurchaseOrdersCleared() bool {
	return m.clearedpurchase_orders
}

// RemovePurchaseOrderIDs removes the "purchase_orders" edge to the PurchaseOrder entity by IDs.
func (m *DocumentMutation) RemovePurchaseOrderIDs(ids ...uuid.UUID) {
	if m.removedpurchase_orders == nil {
		m.removedpurchase_orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.purchase_orders, ids[i])
		m.removedpurchase_orders[ids[i]] = struct{}{}
	}
}

// RemovedPurchaseOrders returns the removed IDs of the "purchase_orders" edge to the PurchaseOrder entity.
func (m *DocumentMutation) RemovedPurchaseOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedpurchase_orders {
		ids = append(ids, id)
	}
	return
}

// PurchaseOrdersIDs returns the "purchase_orders" edge IDs in the mutation.
func (m *DocumentMutation) PurchaseOrdersIDs() (ids []uuid.UUID) {
	for id := range m.purchase_orders {
		ids = append(ids, id)
	}
	return
}

// ResetPurchaseOrders resets all changes to the "purchase_orders" edge.
func (m *DocumentMutation) ResetPurchaseOrders() {
	m.purchase_orders = nil
	m.clearedpurchase_orders = false
	m.removedpurchase_orders = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.object_key != nil {
		fields = append(fields, document.FieldObjectKey)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.public_url != nil {
		fields = append(fields, document.FieldPublicURL)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldObjectKey:
		return m.ObjectKey()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldPublicURL:
		return m.PublicURL()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldObjectKey:
		return m.OldObjectKey(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldPublicURL:
		return m.OldPublicURL(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldObjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectKey(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldPublicURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicURL(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldContentType) {
		fields = append(fields, document.FieldContentType)
	}
	if m.FieldCleared(document.FieldPublicURL) {
		fields = append(fields, document.FieldPublicURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldContentType:
		m.ClearContentType()
		return nil
	case document.FieldPublicURL:
		m.ClearPublicURL()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldObjectKey:
		m.ResetObjectKey()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldPublicURL:
		m.ResetPublicURL()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.purchase_orders != nil {
		edges = append(edges, document.EdgePurchaseOrders)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePurchaseOrders:
		ids := make([]ent.Value, 0, len(m.purchase_orders))
		for id := range m.purchase_orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpurchase_orders != nil {
		edges = append(edges, document.EdgePurchaseOrders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePurchaseOrders:
		ids := make([]ent.Value, 0, len(m.removedpurchase_orders))
		for id := range m.removedpurchase_orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpurchase_orders {
		edges = append(edges, document.EdgePurchaseOrders)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePurchaseOrders:
		return m.clearedpurchase_orders
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePurchaseOrders:
		m.ResetPurchaseOrders()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// LineItemMutation represents an operation that mutates the LineItem nodes in the graph.
type LineItemMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	position              *int
	addposition           *int
	item_number           *string
	description           *string
	quantity              *float64
	addquantity           *float64
	unit_price            *float64
	addunit_price         *float64
	total_price           *float64
	addtotal_price        *float64
	clearedFields         map[string]struct{}
	purchase_order        *uuid.UUID
	clearedpurchase_order bool
	done                  bool
	oldValue              func(context.Context) (*LineItem, error)
	predicates            []predicate.LineItem
}

var _ ent.Mutation = (*LineItemMutation)(nil)

// lineitemOption allows management of the mutation configuration using functional options.
type lineitemOption func(*LineItemMutation)

// newLineItemMutation creates new mutation for the LineItem entity.
func newLineItemMutation(c config, op Op, opts ...lineitemOption) *LineItemMutation {
	m := &LineItemMutation{
		config:        c,
		op:            op,
		typ:           TypeLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLineItemID sets the ID field of the mutation.
func withLineItemID(id uuid.UUID) lineitemOption {
	return func(m *LineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *LineItem
		)
		m.oldValue = func(ctx context.Context) (*LineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLineItem sets the old LineItem of the mutation.
func withLineItem(node *LineItem) lineitemOption {
	return func(m *LineItemMutation) {
		m.oldValue = func(context.Context) (*LineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LineItem entities.
func (m *LineItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LineItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LineItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPurchaseOrderID sets the "purchase_order_id" field.
func (m *LineItemMutation) SetPurchaseOrderID(u uuid.UUID) {
	m.purchase_order = &u
}

// PurchaseOrderID returns the value of the "purchase_order_id" field in the mutation.
func (m *LineItemMutation) PurchaseOrderID() (r uuid.UUID, exists bool) {
	v := m.purchase_order
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseOrderID returns the old "purchase_order_id" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldPurchaseOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseOrderID: %w", err)
	}
	return oldValue.PurchaseOrderID, nil
}

// ResetPurchaseOrderID resets all changes to the "purchase_order_id" field.
func (m *LineItemMutation) ResetPurchaseOrderID() {
	m.purchase_order = nil
}

// SetPosition sets the "position" field.
func (m *LineItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LineItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LineItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LineItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LineItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetItemNumber sets the "item_number" field.
func (m *LineItemMutation) SetItemNumber(s string) {
	m.item_number = &s
}

// ItemNumber returns the value of the "item_number" field in the mutation.
func (m *LineItemMutation) ItemNumber() (r string, exists bool) {
	v := m.item_number
	if v == nil {
		return
	}
	return *v, true
}

// OldItemNumber returns the old "item_number" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldItemNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemNumber: %w", err)
	}
	return oldValue.ItemNumber, nil
}

// ClearItemNumber clears the value of the "item_number" field.
func (m *LineItemMutation) ClearItemNumber() {
	m.item_number = nil
	m.clearedFields[lineitem.FieldItemNumber] = struct{}{}
}

// ItemNumberCleared returns if the "item_number" field was cleared in this mutation.
func (m *LineItemMutation) ItemNumberCleared() bool {
	_, ok := m.clearedFields[lineitem.FieldItemNumber]
	return ok
}

// ResetItemNumber resets all changes to the "item_number" field.
func (m *LineItemMutation) ResetItemNumber() {
	m.item_number = nil
	delete(m.clearedFields, lineitem.FieldItemNumber)
}

// SetDescription sets the "description" field.
func (m *LineItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LineItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *LineItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[lineitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *LineItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[lineitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *LineItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, lineitem.FieldDescription)
}

// SetQuantity sets the "quantity" field.
func (m *LineItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *LineItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *LineItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *LineItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *LineItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *LineItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *LineItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *LineItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *LineItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *LineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *LineItemMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *LineItemMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the LineItem entity.
// If the LineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineItemMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *LineItemMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *LineItemMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *LineItemMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// ClearPurchaseOrder clears the "purchase_order" edge to the PurchaseOrder entity.
func (m *LineItemMutation) ClearPurchaseOrder() {
	m.clearedpurchase_order = true
	m.clearedFields[lineitem.FieldPurchaseOrderID] = struct{}{}
}

// PurchaseOrderCleared reports if the "purchase_order" edge to the PurchaseOrder entity was cleared.
func (m *LineItemMutation) PurchaseOrderCleared() bool {
	return m.clearedpurchase_order
}

// PurchaseOrderIDs returns the "purchase_order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PurchaseOrderID instead. It exists only for internal usage by the builders.
func (m *LineItemMutation) PurchaseOrderIDs() (ids []uuid.UUID) {
	if id := m.purchase_order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPurchaseOrder resets all changes to the "purchase_order" edge.
func (m *LineItemMutation) ResetPurchaseOrder() {
	m.purchase_order = nil
	m.clearedpurchase_order = false
}

// Where appends a list predicates to the LineItemMutation builder.
func (m *LineItemMutation) Where(ps ...predicate.LineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LineItem).
func (m *LineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LineItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.purchase_order != nil {
		fields = append(fields, lineitem.FieldPurchaseOrderID)
	}
	if m.position != nil {
		fields = append(fields, lineitem.FieldPosition)
	}
	if m.item_number != nil {
		fields = append(fields, lineitem.FieldItemNumber)
	}
	if m.description != nil {
		fields = append(fields, lineitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, lineitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, lineitem.FieldUnitPrice)
	}
	if m.total_price != nil {
		fields = append(fields, lineitem.FieldTotalPrice)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lineitem.FieldPurchaseOrderID:
		return m.PurchaseOrderID()
	case lineitem.FieldPosition:
		return m.Position()
	case lineitem.FieldItemNumber:
		return m.ItemNumber()
	case lineitem.FieldDescription:
		return m.Description()
	case lineitem.FieldQuantity:
		return m.Quantity()
	case lineitem.FieldUnitPrice:
		return m.UnitPrice()
	case lineitem.FieldTotalPrice:
		return m.TotalPrice()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lineitem.FieldPurchaseOrderID:
		return m.OldPurchaseOrderID(ctx)
	case lineitem.FieldPosition:
		return m.OldPosition(ctx)
	case lineitem.FieldItemNumber:
		return m.OldItemNumber(ctx)
	case lineitem.FieldDescription:
		return m.OldDescription(ctx)
	case lineitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case lineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case lineitem.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	}
	return nil, fmt.Errorf("unknown LineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lineitem.FieldPurchaseOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseOrderID(v)
		return nil
	case lineitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case lineitem.FieldItemNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemNumber(v)
		return nil
	case lineitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case lineitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case lineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case lineitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown LineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LineItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, lineitem.FieldPosition)
	}
	if m.addquantity != nil {
		fields = append(fields, lineitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, lineitem.FieldUnitPrice)
	}
	if m.addtotal_price != nil {
		fields = append(fields, lineitem.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LineItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lineitem.FieldPosition:
		return m.AddedPosition()
	case lineitem.FieldQuantity:
		return m.AddedQuantity()
	case lineitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case lineitem.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lineitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case lineitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case lineitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case lineitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown LineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LineItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lineitem.FieldItemNumber) {
		fields = append(fields, lineitem.FieldItemNumber)
	}
	if m.FieldCleared(lineitem.FieldDescription) {
		fields = append(fields, lineitem.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LineItemMutation) ClearField(name string) error {
	switch name {
	case lineitem.FieldItemNumber:
		m.ClearItemNumber()
		return nil
	case lineitem.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown LineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LineItemMutation) ResetField(name string) error {
	switch name {
	case lineitem.FieldPurchaseOrderID:
		m.ResetPurchaseOrderID()
		return nil
	case lineitem.FieldPosition:
		m.ResetPosition()
		return nil
	case lineitem.FieldItemNumber:
		m.ResetItemNumber()
		return nil
	case lineitem.FieldDescription:
		m.ResetDescription()
		return nil
	case lineitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case lineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case lineitem.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	}
	return fmt.Errorf("unknown LineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.purchase_order != nil {
		edges = append(edges, lineitem.EdgePurchaseOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lineitem.EdgePurchaseOrder:
		if id := m.purchase_order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpurchase_order {
		edges = append(edges, lineitem.EdgePurchaseOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case lineitem.EdgePurchaseOrder:
		return m.clearedpurchase_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LineItemMutation) ClearEdge(name string) error {
	switch name {
	case lineitem.EdgePurchaseOrder:
		m.ClearPurchaseOrder()
		return nil
	}
	return fmt.Errorf("unknown LineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LineItemMutation) ResetEdge(name string) error {
	switch name {
	case lineitem.EdgePurchaseOrder:
		m.ResetPurchaseOrder()
		return nil
	}
	return fmt.Errorf("unknown LineItem edge %s", name)
}

// PurchaseOrderMutation represents an operation that mutates the PurchaseOrder nodes in the graph.
type PurchaseOrderMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	customer_name     *string
	po_number         *string
	po_date           *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	line_items        map[uuid.UUID]struct{}
	removedline_items map[uuid.UUID]struct{}
	clearedline_items bool
	done              bool
	oldValue          func(context.Context) (*PurchaseOrder, error)
	predicates        []predicate.PurchaseOrder
}

var _ ent.Mutation = (*PurchaseOrderMutation)(nil)

// purchaseorderOption allows management of the mutation configuration using functional options.
type purchaseorderOption func(*PurchaseOrderMutation)

// newPurchaseOrderMutation creates new mutation for the PurchaseOrder entity.
func newPurchaseOrderMutation(c config, op Op, opts ...purchaseorderOption) *PurchaseOrderMutation {
	m := &PurchaseOrderMutation{
		config:        c,
		op:            op,
		typ:           TypePurchaseOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPurchaseOrderID sets the ID field of the mutation.
func withPurchaseOrderID(id uuid.UUID) purchaseorderOption {
	return func(m *PurchaseOrderMutation) {
		var (
			err   error
			once  sync.Once
			value *PurchaseOrder
		)
		m.oldValue = func(ctx context.Context) (*PurchaseOrder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PurchaseOrder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPurchaseOrder sets the old PurchaseOrder of the mutation.
func withPurchaseOrder(node *PurchaseOrder) purchaseorderOption {
	return func(m *PurchaseOrderMutation) {
		m.oldValue = func(context.Context) (*PurchaseOrder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PurchaseOrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PurchaseOrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PurchaseOrder entities.
func (m *PurchaseOrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PurchaseOrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PurchaseOrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PurchaseOrder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PurchaseOrderMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PurchaseOrderMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *PurchaseOrderMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[purchaseorder.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *PurchaseOrderMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[purchaseorder.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PurchaseOrderMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, purchaseorder.FieldDocumentID)
}

// SetCustomerName sets the "customer_name" field.
func (m *PurchaseOrderMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *PurchaseOrderMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *PurchaseOrderMutation) ResetCustomerName() {
	m.customer_name = nil
}

// SetPoNumber sets the "po_number" field.
func (m *PurchaseOrderMutation) SetPoNumber(s string) {
	m.po_number = &s
}

// PoNumber returns the value of the "po_number" field in the mutation.
func (m *PurchaseOrderMutation) PoNumber() (r string, exists bool) {
	v := m.po_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPoNumber returns the old "po_number" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldPoNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoNumber: %w", err)
	}
	return oldValue.PoNumber, nil
}

// ResetPoNumber resets all changes to the "po_number" field.
func (m *PurchaseOrderMutation) ResetPoNumber() {
	m.po_number = nil
}

// SetPoDate sets the "po_date" field.
func (m *PurchaseOrderMutation) SetPoDate(t time.Time) {
	m.po_date = &t
}

// PoDate returns the value of the "po_date" field in the mutation.
func (m *PurchaseOrderMutation) PoDate() (r time.Time, exists bool) {
	v := m.po_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPoDate returns the old "po_date" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldPoDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoDate: %w", err)
	}
	return oldValue.PoDate, nil
}

// ResetPoDate resets all changes to the "po_date" field.
func (m *PurchaseOrderMutation) ResetPoDate() {
	m.po_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PurchaseOrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PurchaseOrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PurchaseOrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PurchaseOrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PurchaseOrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PurchaseOrder entity.
// If the PurchaseOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseOrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PurchaseOrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PurchaseOrderMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[purchaseorder.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PurchaseOrderMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PurchaseOrderMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PurchaseOrderMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by ids.
func (m *PurchaseOrderMutation) AddLineItemIDs(ids ...uuid.UUID) {
	if m.line_items == nil {
		m.line_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.line_items[ids[i]] = struct{}{}
	}
}

// ClearLineItems clears the "line_items" edge to the LineItem entity.
func (m *PurchaseOrderMutation) ClearLineItems() {
	m.clearedline_items = true
}

// LineItemsCleared reports if the "line_items" edge to the LineItem entity was cleared.
func (m *PurchaseOrderMutation) LineItemsCleared() bool {
	return m.clearedline_items
}

// RemoveLineItemIDs removes the "line_items" edge to the LineItem entity by IDs.
func (m *PurchaseOrderMutation) RemoveLineItemIDs(ids ...uuid.UUID) {
	if m.removedline_items == nil {
		m.removedline_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.line_items, ids[i])
		m.removedline_items[ids[i]] = struct{}{}
	}
}

// RemovedLineItems returns the removed IDs of the "line_items" edge to the LineItem entity.
func (m *PurchaseOrderMutation) RemovedLineItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedline_items {
		ids = append(ids, id)
	}
	return
}

// LineItemsIDs returns the "line_items" edge IDs in the mutation.
func (m *PurchaseOrderMutation) LineItemsIDs() (ids []uuid.UUID) {
	for id := range m.line_items {
		ids = append(ids, id)
	}
	return
}

// ResetLineItems resets all changes to the "line_items" edge.
func (m *PurchaseOrderMutation) ResetLineItems() {
	m.line_items = nil
	m.clearedline_items = false
	m.removedline_items = nil
}

// Where appends a list predicates to the PurchaseOrderMutation builder.
func (m *PurchaseOrderMutation) Where(ps ...predicate.PurchaseOrder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PurchaseOrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PurchaseOrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PurchaseOrder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PurchaseOrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PurchaseOrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PurchaseOrder).
func (m *PurchaseOrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PurchaseOrderMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, purchaseorder.FieldDocumentID)
	}
	if m.customer_name != nil {
		fields = append(fields, purchaseorder.FieldCustomerName)
	}
	if m.po_number != nil {
		fields = append(fields, purchaseorder.FieldPoNumber)
	}
	if m.po_date != nil {
		fields = append(fields, purchaseorder.FieldPoDate)
	}
	if m.created_at != nil {
		fields = append(fields, purchaseorder.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, purchaseorder.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PurchaseOrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case purchaseorder.FieldDocumentID:
		return m.DocumentID()
	case purchaseorder.FieldCustomerName:
		return m.CustomerName()
	case purchaseorder.FieldPoNumber:
		return m.PoNumber()
	case purchaseorder.FieldPoDate:
		return m.PoDate()
	case purchaseorder.FieldCreatedAt:
		return m.CreatedAt()
	case purchaseorder.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PurchaseOrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case purchaseorder.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case purchaseorder.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case purchaseorder.FieldPoNumber:
		return m.OldPoNumber(ctx)
	case purchaseorder.FieldPoDate:
		return m.OldPoDate(ctx)
	case purchaseorder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case purchaseorder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseOrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case purchaseorder.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case purchaseorder.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case purchaseorder.FieldPoNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoNumber(v)
		return nil
	case purchaseorder.FieldPoDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoDate(v)
		return nil
	case purchaseorder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case purchaseorder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PurchaseOrderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PurchaseOrderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseOrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PurchaseOrder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PurchaseOrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(purchaseorder.FieldDocumentID) {
		fields = append(fields, purchaseorder.FieldDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PurchaseOrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PurchaseOrderMutation) ClearField(name string) error {
	switch name {
	case purchaseorder.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PurchaseOrderMutation) ResetField(name string) error {
	switch name {
	case purchaseorder.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case purchaseorder.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case purchaseorder.FieldPoNumber:
		m.ResetPoNumber()
		return nil
	case purchaseorder.FieldPoDate:
		m.ResetPoDate()
		return nil
	case purchaseorder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case purchaseorder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PurchaseOrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, purchaseorder.EdgeDocument)
	}
	if m.line_items != nil {
		edges = append(edges, purchaseorder.EdgeLineItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PurchaseOrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case purchaseorder.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case purchaseorder.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.line_items))
		for id := range m.line_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PurchaseOrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedline_items != nil {
		edges = append(edges, purchaseorder.EdgeLineItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PurchaseOrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case purchaseorder.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.removedline_items))
		for id := range m.removedline_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PurchaseOrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, purchaseorder.EdgeDocument)
	}
	if m.clearedline_items {
		edges = append(edges, purchaseorder.EdgeLineItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PurchaseOrderMutation) EdgeCleared(name string) bool {
	switch name {
	case purchaseorder.EdgeDocument:
		return m.cleareddocument
	case purchaseorder.EdgeLineItems:
		return m.clearedline_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PurchaseOrderMutation) ClearEdge(name string) error {
	switch name {
	case purchaseorder.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PurchaseOrderMutation) ResetEdge(name string) error {
	switch name {
	case purchaseorder.EdgeDocument:
		m.ResetDocument()
		return nil
	case purchaseorder.EdgeLineItems:
		m.ResetLineItems()
		return nil
	}
	return fmt.Errorf("unknown PurchaseOrder edge %s", name)
}
