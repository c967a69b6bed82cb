package export

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"arborlog/entities"
	"arborlog/pkg/query"
)

const xlsxSheet = "Inventory"

// XLSX renders the same 11-column schema as CSV into a real workbook, with
// numeric cells typed so spreadsheet tools can aggregate yield and
// coordinates directly.
func XLSX(records []entities.TreeRecord, now time.Time) (Artifact, error) {
	sorted := query.SortByTreeNumber(records)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[export] close workbook: %v", err)
		}
	}()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return Artifact{}, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return Artifact{}, err
	}
	for i, col := range csvColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheet, cell, col); err != nil {
			return Artifact{}, err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(csvColumns), 1)
	if err := f.SetCellStyle(xlsxSheet, first, last, headerStyle); err != nil {
		return Artifact{}, err
	}

	for row, r := range sorted {
		values := []any{
			r.TreeNumber,
			r.TreeName,
			r.Species,
			string(r.Health),
			r.HealthDescription,
			string(r.Production),
		}
		if r.ProductionQuantity != nil {
			values = append(values, *r.ProductionQuantity)
		} else {
			values = append(values, "")
		}
		if r.Location != nil {
			values = append(values, r.Location.Lat, r.Location.Lng)
		} else {
			values = append(values, "", "")
		}
		values = append(values, r.Notes, exportDate(r.Timestamp))

		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return Artifact{}, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: fmt.Sprintf("ArborLog_Inventory_%s.xlsx", now.Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
