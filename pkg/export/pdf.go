package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"arborlog/entities"
	"arborlog/pkg/query"
)

var pdfColumns = []string{"#", "Name", "Species", "Health Status", "Production Yield", "Location"}

// column widths in mm, A4 landscape with 10mm margins
var pdfWidths = []float64{30, 52, 52, 58, 50, 35}

// PDF renders the printable inventory report: landscape, branded title,
// 6-column table with the header repeated on every page. Sorted by tree
// number like every other export.
func PDF(records []entities.TreeRecord, now time.Time) (Artifact, error) {
	sorted := query.SortByTreeNumber(records)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(0, 12, "ArborLog Inventory Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated on: "+now.Format("1/2/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawTableHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	for i, r := range sorted {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}
		if i%2 == 1 {
			pdf.SetFillColor(240, 253, 244)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(0, 0, 0)
		cells := []string{
			r.TreeNumber,
			r.TreeName,
			r.Species,
			healthCell(r),
			productionCell(r),
			locationCell(r),
		}
		for c, text := range cells {
			pdf.CellFormat(pdfWidths[c], 7, text, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename: fmt.Sprintf("ArborLog_Report_%d.pdf", now.UnixMilli()),
		Content:  buf.Bytes(),
	}, nil
}

func drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(22, 101, 52)
	pdf.SetTextColor(255, 255, 255)
	for c, col := range pdfColumns {
		pdf.CellFormat(pdfWidths[c], 8, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func healthCell(r entities.TreeRecord) string {
	if r.HealthDescription != "" {
		return fmt.Sprintf("%s (%s)", r.Health, r.HealthDescription)
	}
	return string(r.Health)
}

func productionCell(r entities.TreeRecord) string {
	if r.ProductionQuantity != nil {
		return fmt.Sprintf("%s [Qty: %s]", r.Production, formatNumber(*r.ProductionQuantity))
	}
	return string(r.Production)
}

func locationCell(r entities.TreeRecord) string {
	if r.Location == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f, %.4f", r.Location.Lat, r.Location.Lng)
}
