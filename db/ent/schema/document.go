package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Document is the stored file artifact in object storage. Created once per
// successful upload; never updated.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("object_key").NotEmpty().Unique().Immutable(),
		field.String("filename").NotEmpty().Immutable(),
		field.Int("file_size").NonNegative().Immutable(),
		field.String("content_type").Optional(),
		field.String("public_url").Optional(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY confirmed purchase orders (re-uploads aside,
		// usually one)
		edge.To("purchase_orders", PurchaseOrder.Type),
	}
}
