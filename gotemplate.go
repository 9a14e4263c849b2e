package listview

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate runs tmplStr once for each section of res, passing a
// [Section] with its header value and rows, and ends each section's output
// with a newline. An empty result writes nothing.
func writeGoTemplate[S, R any](w io.Writer, tmplStr string, res Result[S, R]) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, sec := range res.Sections() {
		if err := tmpl.Execute(w, sec); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
