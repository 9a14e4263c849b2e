package listview

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const outlineIndent = "  "

// writeOutline renders each section as a header line, a rule as wide as the
// header, and its rows indented beneath it. Sections are separated by a blank
// line.
//
//	0      Fruit
//	────────────
//	  0,0  apple
//	  0,1  pear
func writeOutline[S, R any](w io.Writer, res Result[S, R]) error {
	sections := res.Sections()
	idWidth := 0
	for _, sec := range sections {
		if n := runewidth.StringWidth(sec.ID.String()); n > idWidth {
			idWidth = n
		}
		for _, row := range sec.Rows {
			if n := runewidth.StringWidth(outlineIndent + row.ID.String()); n > idWidth {
				idWidth = n
			}
		}
	}
	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := outlineLine(sec.ID.String(), idWidth, cellText(sec.Value))
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		rule := strings.Repeat("─", runewidth.StringWidth(header))
		if _, err := fmt.Fprintln(w, rule); err != nil {
			return err
		}
		for _, row := range sec.Rows {
			line := outlineLine(outlineIndent+row.ID.String(), idWidth, cellText(row.Value))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func outlineLine(id string, width int, value string) string {
	return strings.TrimRight(padRight(id, width)+"  "+value, " ")
}

func padRight(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
