package adapter

import (
	"fmt"

	"container-tracker/internal/features/containers/domain"
	recon "container-tracker/internal/features/reconciliation/domain"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	plannedSheet   = "Planned"
	outOfPlanSheet = "Out of plan"
)

// XLSXExporter renders reconciliation reports as Excel workbooks.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes the summary, the planned materials and the out-of-plan
// items of report to one sheet each.
func (e *XLSXExporter) Export(report recon.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	for _, name := range []string{plannedSheet, outOfPlanSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	summary := [][]interface{}{
		{"Supplier", report.Supplier},
		{"Period", fmt.Sprintf("%04d-%02d", report.Year, int(report.Month))},
		{"Orders", report.OrderCount},
		{"Surplus (m³)", report.SurplusVolume.InexactFloat64()},
		{"Out of plan (m³)", report.OutOfPlanVolume.InexactFloat64()},
		{"Total impact (m³)", report.TotalImpactVolume.InexactFloat64()},
	}
	if report.IsEmpty() {
		summary = append(summary, []interface{}{"Note", "No containers in this period"})
	}
	if err := writeRows(f, summarySheet, 1, summary); err != nil {
		return nil, err
	}
	f.SetColWidth(summarySheet, "A", "B", 22)

	planned := make([][]interface{}, 0, len(report.Planned))
	for _, row := range report.Planned {
		planned = append(planned, []interface{}{
			row.Material,
			row.Requested.InexactFloat64(),
			row.Shipped.InexactFloat64(),
			row.Delta.InexactFloat64(),
			row.UnitVolume.InexactFloat64(),
			row.SurplusVolume.InexactFloat64(),
		})
	}
	if err := writeTable(f, plannedSheet, headerStyle,
		[]string{"Material", "Requested", "Shipped", "Delta", "Unit volume (m³)", "Surplus (m³)"}, planned); err != nil {
		return nil, err
	}

	outOfPlan := make([][]interface{}, 0, len(report.OutOfPlan))
	for _, row := range report.OutOfPlan {
		outOfPlan = append(outOfPlan, []interface{}{
			row.ContainerID,
			row.Item.Description,
			domain.ParseQuantity(row.Item.ShippedQuantity).InexactFloat64(),
			row.Volume.InexactFloat64(),
		})
	}
	if err := writeTable(f, outOfPlanSheet, headerStyle,
		[]string{"Container", "Material", "Quantity", "Volume (m³)"}, outOfPlan); err != nil {
		return nil, err
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]interface{}) error {
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	last, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "A", last, 18)

	return writeRows(f, sheet, 2, rows)
}

func writeRows(f *excelize.File, sheet string, firstRow int, rows [][]interface{}) error {
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, firstRow+i)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
