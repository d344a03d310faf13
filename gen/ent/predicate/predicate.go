// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// LineItem is the predicate function for lineitem builders.
type LineItem func(*sql.Selector)

// PurchaseOrder is the predicate function for purchaseorder builders.
type PurchaseOrder func(*sql.Selector)
