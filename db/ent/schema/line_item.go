package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// LineItem is one purchase-order line. Quantity x unit price is deliberately
// not checked against total price; values are stored as extracted/edited.
type LineItem struct{ ent.Schema }

func (LineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "line_items"},
	}
}

func (LineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("purchase_order_id", uuid.UUID{}),
		field.Int("position").NonNegative(),
		field.String("item_number").Optional(),
		field.String("description").Optional(),
		field.Float("quantity").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("unit_price").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_price").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (LineItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY line items -> ONE purchase order (FK: line_items.purchase_order_id)
		edge.From("purchase_order", PurchaseOrder.Type).
			Ref("line_items").
			Field("purchase_order_id").
			Required().
			Unique(),
	}
}
