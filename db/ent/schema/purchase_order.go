package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// PurchaseOrder is a confirmed purchase-order record.
type PurchaseOrder struct{ ent.Schema }

func (PurchaseOrder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "purchase_orders"},
	}
}

func (PurchaseOrder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}).Optional(),
		field.String("customer_name").NotEmpty(),
		field.String("po_number").NotEmpty(),
		field.Time("po_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PurchaseOrder) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY purchase orders -> ONE document
		edge.From("document", Document.Type).
			Ref("purchase_orders").
			Field("document_id").
			Unique(),
		// ONE purchase order -> MANY line items
		edge.To("line_items", LineItem.Type),
	}
}
