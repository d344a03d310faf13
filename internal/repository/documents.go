package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/poflow/po-upload/gen/ent"
	"github.com/poflow/po-upload/gen/ent/document"
	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByObjectKey(ctx context.Context, objectKey string) (*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

// Create records a stored file artifact. Object keys are unique; registering
// the same key twice is an input error.
func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetObjectKey(doc.ObjectKey).
		SetFilename(doc.Filename).
		SetFileSize(doc.FileSize).
		SetContentType(doc.ContentType).
		SetPublicURL(doc.PublicURL).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.NewAppError("DOCUMENT_EXISTS", "object key already registered", common.ErrInvalidInput)
		}
		r.logger.Error("failed to create document", "object_key", doc.ObjectKey, "error", err)
		return nil, fmt.Errorf("create document: %w", err)
	}
	r.logger.Info("document registered", "id", row.ID, "object_key", row.ObjectKey)
	return toDocument(row), nil
}

func (r *documentRepository) GetByObjectKey(ctx context.Context, objectKey string) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(document.ObjectKey(objectKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", fmt.Sprintf("document %q", objectKey), common.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return toDocument(row), nil
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          row.ID,
		ObjectKey:   row.ObjectKey,
		Filename:    row.Filename,
		FileSize:    row.FileSize,
		ContentType: row.ContentType,
		PublicURL:   row.PublicURL,
		UploadedAt:  row.UploadedAt,
	}
}

func toPurchaseOrder(row *ent.PurchaseOrder, items []*ent.LineItem) *entity.PurchaseOrder {
	po := &entity.PurchaseOrder{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		PONumber:     row.PoNumber,
		PODate:       row.PoDate,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		LineItems:    make([]*entity.LineItem, len(items)),
	}
	if row.DocumentID != uuid.Nil {
		id := row.DocumentID
		po.DocumentID = &id
	}
	for i, li := range items {
		po.LineItems[i] = &entity.LineItem{
			ID:          li.ID,
			Position:    li.Position,
			ItemNumber:  li.ItemNumber,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		}
	}
	return po
}
