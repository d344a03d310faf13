package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/poflow/po-upload/internal/entity"
)

func TestWorkbook(t *testing.T) {
	pos := []*entity.PurchaseOrder{
		{
			PONumber:     "1001",
			CustomerName: "Acme Corp",
			PODate:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			LineItems: []*entity.LineItem{
				{ItemNumber: "A-1", Description: "Widget", Quantity: 2, UnitPrice: 5, TotalPrice: 10},
				{ItemNumber: "A-2", Description: "Gadget", Quantity: 1, UnitPrice: 3, TotalPrice: 3},
			},
		},
		{PONumber: "1002", CustomerName: "Globex"},
	}

	raw, err := NewService(nil).Workbook(pos)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Purchase Orders")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 line items + 1 item-less order

	assert.Equal(t, "PO Number", rows[0][0])
	assert.Equal(t, []string{"1001", "Acme Corp", "2024-03-05", "A-1", "Widget", "2", "5", "10"}, rows[1])
	assert.Equal(t, "A-2", rows[2][3])
	assert.Equal(t, "1002", rows[3][0])
}

func TestWorkbookEmpty(t *testing.T) {
	raw, err := NewService(nil).Workbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Purchase Orders")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
