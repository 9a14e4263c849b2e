package listview

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"id", "section", "row", "value"}

// writeCSV writes one record per section header and per row, in display
// order. Section header records leave the row column empty.
func writeCSV[S, R any](w io.Writer, res Result[S, R]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, sec := range res.Sections() {
		if err := cw.Write([]string{sec.ID.String(), sec.ID.String(), "", cellText(sec.Value)}); err != nil {
			return err
		}
		for _, row := range sec.Rows {
			rec := []string{row.ID.String(), row.ID.Section.String(), strconv.Itoa(row.ID.Row), cellText(row.Value)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
