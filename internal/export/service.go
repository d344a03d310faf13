// Package export renders stored purchase orders into XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/poflow/po-upload/internal/entity"
)

// Service produces XLSX bytes for purchase-order exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Workbook returns an XLSX workbook with one row per line item, repeating the
// order header columns so the sheet filters cleanly.
func (s *Service) Workbook(pos []*entity.PurchaseOrder) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Purchase Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"PO Number",
		"Customer",
		"PO Date",
		"Item Number",
		"Description",
		"Quantity",
		"Unit Price",
		"Total Price",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for _, po := range pos {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		writeHeader := func() {
			write(1, po.PONumber)
			write(2, po.CustomerName)
			if !po.PODate.IsZero() {
				write(3, po.PODate.Format("2006-01-02"))
			} else {
				write(3, "")
			}
		}

		if len(po.LineItems) == 0 {
			writeHeader()
			row++
			rows++
			continue
		}

		for _, li := range po.LineItems {
			writeHeader()
			write(4, li.ItemNumber)
			write(5, li.Description)
			write(6, li.Quantity)
			write(7, li.UnitPrice)
			write(8, li.TotalPrice)
			row++
			rows++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 48)
	_ = f.SetColWidth(sheet, "F", "H", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"orders", len(pos),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
