// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/poflow/po-upload/db/ent/schema"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescObjectKey is the schema descriptor for object_key field.
	documentDescObjectKey := documentFields[1].Descriptor()
	// document.ObjectKeyValidator is a validator for the "object_key" field. It is called by the builders before save.
	document.ObjectKeyValidator = documentDescObjectKey.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[3].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	lineitemFields := schema.LineItem{}.Fields()
	_ = lineitemFields
	// lineitemDescPosition is the schema descriptor for position field.
	lineitemDescPosition := lineitemFields[2].Descriptor()
	// lineitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	lineitem.PositionValidator = lineitemDescPosition.Validators[0].(func(int) error)
	// lineitemDescQuantity is the schema descriptor for quantity field.
	lineitemDescQuantity := lineitemFields[5].Descriptor()
	// lineitem.DefaultQuantity holds the default value on creation for the quantity field.
	lineitem.DefaultQuantity = lineitemDescQuantity.Default.(float64)
	// lineitemDescUnitPrice is the schema descriptor for unit_price field.
	lineitemDescUnitPrice := lineitemFields[6].Descriptor()
	// lineitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	lineitem.DefaultUnitPrice = lineitemDescUnitPrice.Default.(float64)
	// lineitemDescTotalPrice is the schema descriptor for total_price field.
	lineitemDescTotalPrice := lineitemFields[7].Descriptor()
	// lineitem.DefaultTotalPrice holds the default value on creation for the total_price field.
	lineitem.DefaultTotalPrice = lineitemDescTotalPrice.Default.(float64)
	// lineitemDescID is the schema descriptor for id field.
	lineitemDescID := lineitemFields[0].Descriptor()
	// lineitem.DefaultID holds the default value on creation for the id field.
	lineitem.DefaultID = lineitemDescID.Default.(func() uuid.UUID)
	purchaseorderFields := schema.PurchaseOrder{}.Fields()
	_ = purchaseorderFields
	// purchaseorderDescCustomerName is the schema descriptor for customer_name field.
	purchaseorderDescCustomerName := purchaseorderFields[2].Descriptor()
	// purchaseorder.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	purchaseorder.CustomerNameValidator = purchaseorderDescCustomerName.Validators[0].(func(string) error)
	// purchaseorderDescPoNumber is the schema descriptor for po_number field.
	purchaseorderDescPoNumber := purchaseorderFields[3].Descriptor()
	// purchaseorder.PoNumberValidator is a validator for the "po_number" field. It is called by the builders before save.
	purchaseorder.PoNumberValidator = purchaseorderDescPoNumber.Validators[0].(func(string) error)
	// purchaseorderDescCreatedAt is the schema descriptor for created_at field.
	purchaseorderDescCreatedAt := purchaseorderFields[5].Descriptor()
	// purchaseorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	purchaseorder.DefaultCreatedAt = purchaseorderDescCreatedAt.Default.(func() time.Time)
	// purchaseorderDescUpdatedAt is the schema descriptor for updated_at field.
	purchaseorderDescUpdatedAt := purchaseorderFields[6].Descriptor()
	// purchaseorder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	purchaseorder.DefaultUpdatedAt = purchaseorderDescUpdatedAt.Default.(func() time.Time)
	// purchaseorder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	purchaseorder.UpdateDefaultUpdatedAt = purchaseorderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// purchaseorderDescID is the schema descriptor for id field.
	purchaseorderDescID := purchaseorderFields[0].Descriptor()
	// purchaseorder.DefaultID holds the default value on creation for the id field.
	purchaseorder.DefaultID = purchaseorderDescID.Default.(func() uuid.UUID)
}
