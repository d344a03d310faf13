package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poflow/po-upload/internal/llm"
)

func sampleRecord() llm.PurchaseOrderFields {
	return llm.PurchaseOrderFields{
		CustomerName: "Acme Corp",
		PONumber:     "PO-1001",
		PODate:       "01/15/2024",
		LineItems: []llm.LineItemFields{
			{ItemNumber: "A-1", Description: "Widget", Quantity: 2, UnitPrice: 5, TotalPrice: 10},
		},
	}
}

func TestDateRoundTrip(t *testing.T) {
	f := NewForm(sampleRecord())
	assert.Equal(t, "2024-01-15", f.Fields().PODate)

	rec := f.Confirm()
	assert.Equal(t, "01/15/2024", rec.PODate)
}

func TestLooseDateGetsPadded(t *testing.T) {
	r := sampleRecord()
	r.PODate = "1/5/2024"
	f := NewForm(r)
	assert.Equal(t, "2024-01-05", f.Fields().PODate)
}

func TestMalformedDatePassesThrough(t *testing.T) {
	r := sampleRecord()
	r.PODate = "sometime in March"
	f := NewForm(r)
	assert.Equal(t, "sometime in March", f.Fields().PODate)
	assert.Equal(t, "sometime in March", f.Confirm().PODate)
}

func TestEditsDoNotLeakIntoSource(t *testing.T) {
	src := sampleRecord()
	f := NewForm(src)
	f.SetCustomerName("Changed")
	require.NoError(t, f.SetLineItem(0, llm.LineItemFields{Description: "Replaced"}))

	assert.Equal(t, "Acme Corp", src.CustomerName)
	assert.Equal(t, "Widget", src.LineItems[0].Description)
}

func TestConfirmReturnsIndependentCopy(t *testing.T) {
	f := NewForm(sampleRecord())
	rec := f.Confirm()
	rec.LineItems[0].Description = "mutated after confirm"

	assert.Equal(t, "Widget", f.Fields().LineItems[0].Description)
}

func TestLineItemOperations(t *testing.T) {
	f := NewForm(sampleRecord())

	f.AddLineItem()
	assert.Len(t, f.Fields().LineItems, 2)

	require.NoError(t, f.SetLineItem(1, llm.LineItemFields{ItemNumber: "B-2", Quantity: 1}))
	assert.Equal(t, "B-2", f.Fields().LineItems[1].ItemNumber)

	assert.Error(t, f.SetLineItem(5, llm.LineItemFields{}))

	f.RemoveLineItem(0)
	items := f.Fields().LineItems
	require.Len(t, items, 1)
	assert.Equal(t, "B-2", items[0].ItemNumber)

	// out-of-range removals are ignored
	f.RemoveLineItem(10)
	f.RemoveLineItem(-1)
	assert.Len(t, f.Fields().LineItems, 1)
}
