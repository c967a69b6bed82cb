package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"arborlog/entities"
	"arborlog/pkg/query"
)

var csvColumns = []string{
	"Tree Number",
	"Common Name",
	"Species",
	"Health Status",
	"Health Description",
	"Production Level",
	"Yield Quantity",
	"Latitude",
	"Longitude",
	"Notes",
	"Date Added",
}

// CSV renders the collection as comma-separated text, sorted by tree number.
// Every text field is quote-wrapped with embedded quotes doubled; numeric
// fields are bare, empty when absent. encoding/csv is not used because it
// only quotes fields that need it, and this format quotes every text field
// unconditionally.
func CSV(records []entities.TreeRecord, now time.Time) Artifact {
	sorted := query.SortByTreeNumber(records)

	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, strings.Join(csvColumns, ","))
	for _, r := range sorted {
		lines = append(lines, strings.Join(csvRow(r), ","))
	}

	return Artifact{
		Filename: fmt.Sprintf("ArborLog_Inventory_%s.csv", now.Format("2006-01-02")),
		Content:  []byte(strings.Join(lines, "\n")),
	}
}

func csvRow(r entities.TreeRecord) []string {
	qty, lat, lng := "", "", ""
	if r.ProductionQuantity != nil {
		qty = formatNumber(*r.ProductionQuantity)
	}
	if r.Location != nil {
		lat = formatNumber(r.Location.Lat)
		lng = formatNumber(r.Location.Lng)
	}
	return []string{
		quote(r.TreeNumber),
		quote(r.TreeName),
		quote(r.Species),
		quote(string(r.Health)),
		quote(r.HealthDescription),
		quote(string(r.Production)),
		qty,
		lat,
		lng,
		quote(r.Notes),
		exportDate(r.Timestamp),
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exportDate renders the creation instant as a calendar date, no time of day.
func exportDate(ms int64) string {
	return time.UnixMilli(ms).Format("1/2/2006")
}
