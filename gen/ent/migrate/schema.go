// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "object_key", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "public_url", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// LineItemsColumns holds the columns for the "line_items" table.
	LineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "item_number", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "purchase_order_id", Type: field.TypeUUID},
	}
	// LineItemsTable holds the schema information for the "line_items" table.
	LineItemsTable = &schema.Table{
		Name:       "line_items",
		Columns:    LineItemsColumns,
		PrimaryKey: []*schema.Column{LineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "line_items_purchase_orders_line_items",
				Columns:    []*schema.Column{LineItemsColumns[7]},
				RefColumns: []*schema.Column{PurchaseOrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PurchaseOrdersColumns holds the columns for the "purchase_orders" table.
	PurchaseOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "po_number", Type: field.TypeString},
		{Name: "po_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// PurchaseOrdersTable holds the schema information for the "purchase_orders" table.
	PurchaseOrdersTable = &schema.Table{
		Name:       "purchase_orders",
		Columns:    PurchaseOrdersColumns,
		PrimaryKey: []*schema.Column{PurchaseOrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "purchase_orders_documents_purchase_orders",
				Columns:    []*schema.Column{PurchaseOrdersColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		LineItemsTable,
		PurchaseOrdersTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	LineItemsTable.ForeignKeys[0].RefTable = PurchaseOrdersTable
	LineItemsTable.Annotation = &entsql.Annotation{
		Table: "line_items",
	}
	PurchaseOrdersTable.ForeignKeys[0].RefTable = DocumentsTable
	PurchaseOrdersTable.Annotation = &entsql.Annotation{
		Table: "purchase_orders",
	}
}
