package repository

import (
	"context"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/poflow/po-upload/gen/ent"
	"github.com/poflow/po-upload/gen/ent/lineitem"
	"github.com/poflow/po-upload/gen/ent/purchaseorder"
	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/entity"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
}

type purchaseOrderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPurchaseOrderRepository(client *ent.Client, logger *slog.Logger) PurchaseOrderRepository {
	return &purchaseOrderRepository{client: client, logger: logger}
}

// Create stores the purchase order and its line items in one transaction.
func (r *purchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.NewAppError("DB_ERROR", "begin transaction", common.ErrDatabase)
	}

	create := tx.PurchaseOrder.Create().
		SetCustomerName(po.CustomerName).
		SetPoNumber(po.PONumber).
		SetPoDate(po.PODate)
	if po.DocumentID != nil && *po.DocumentID != uuid.Nil {
		create = create.SetDocumentID(*po.DocumentID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create purchase order", "po_number", po.PONumber, "error", err)
		return nil, fmt.Errorf("create purchase order: %w", err)
	}

	bulk := make([]*ent.LineItemCreate, len(po.LineItems))
	for i, li := range po.LineItems {
		bulk[i] = tx.LineItem.Create().
			SetPurchaseOrderID(row.ID).
			SetPosition(li.Position).
			SetItemNumber(li.ItemNumber).
			SetDescription(li.Description).
			SetQuantity(li.Quantity).
			SetUnitPrice(li.UnitPrice).
			SetTotalPrice(li.TotalPrice)
	}
	items, err := tx.LineItem.CreateBulk(bulk...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create line items", "po_number", po.PONumber, "error", err)
		return nil, fmt.Errorf("create line items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purchase order: %w", err)
	}

	result := toPurchaseOrder(row, items)
	r.logger.Info("purchase order stored", "id", result.ID, "po_number", result.PONumber, "line_items", len(items))
	return result, nil
}

// List returns all purchase orders with line items, newest first.
func (r *purchaseOrderRepository) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	rows, err := r.client.PurchaseOrder.Query().
		WithLineItems(func(q *ent.LineItemQuery) {
			q.Order(lineitem.ByPosition())
		}).
		Order(purchaseorder.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list purchase orders", "error", err)
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}

	result := make([]*entity.PurchaseOrder, len(rows))
	for i, row := range rows {
		result[i] = toPurchaseOrder(row, row.Edges.LineItems)
	}
	return result, nil
}
