package view

import (
	"fmt"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/engine"
)

// TablePageSize is the fixed number of rows per table page.
const TablePageSize = 10

// BoroughTable builds the per-borough data table: one row per borough with
// summed count and mean rate, paginated at TablePageSize. page is 1-based;
// out-of-range pages yield empty rows, not an error.
func BoroughTable(title string, rows []engine.AggRow, page int) *TableData {
	table := &TableData{
		Title: title,
		Columns: []Column{
			{Key: "borough", Label: "Borough", Align: "left"},
			{Key: "crime_count", Label: "Crime Count", Align: "right"},
			{Key: "crime_rate", Label: "Crime Rate per 1,000", Align: "right"},
		},
		PageSize: TablePageSize,
		Page:     page,
		Total:    len(rows),
	}

	all := make([][]string, 0, len(rows))
	for _, row := range rows {
		all = append(all, []string{
			row.Key(engine.DimBorough),
			fmt.Sprintf("%.0f", row.Value(engine.MeasureCrimeCount)),
			fmt.Sprintf("%.2f", row.Value(engine.MeasureCrimeRate)),
		})
	}

	table.Rows = paginate(all, page, TablePageSize)
	return table
}

func paginate(rows [][]string, page, size int) [][]string {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return [][]string{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
