package listview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors returned by [Write], [Marshal], [ParseEncoding] and the identifier
// parsers. ErrInvalidID also covers decoded documents whose identifiers
// disagree with their dataBlob.
var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrInvalidTemplate     = errors.New("invalid template")
	ErrInvalidID           = errors.New("invalid identifier")
)

// Encoding selects how [Write] and [Marshal] serialize a [Result]: the
// dataBlob document as JSON or YAML, a flat CSV table, a text outline, or a
// caller template.
type Encoding string

const (
	JSON    Encoding = "json"
	YAML    Encoding = "yaml"
	CSV     Encoding = "csv"
	Outline Encoding = "outline"
)

const goTemplatePrefix = "go-template="

var encodings = []Encoding{JSON, YAML, CSV, Outline}

// String returns the encoding name.
func (e Encoding) String() string { return string(e) }

// Encodings lists JSON, YAML, CSV and Outline. The result is a fresh slice
// the caller may modify. Template encodings come from [GoTemplate].
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	copy(out, encodings)
	return out
}

// GoTemplate returns an Encoding that renders a [Result] section by section.
// tmpl sees one [Section] per execution, so {{.Value}} is the header and
// {{range .Rows}} walks its rows. The template is parsed when written, and a
// parse failure is reported as [ErrInvalidTemplate].
func GoTemplate(tmpl string) Encoding {
	return Encoding(goTemplatePrefix + tmpl)
}

// ParseEncoding maps a name such as "json" or "outline" to its Encoding.
// A "go-template=" prefix yields [GoTemplate] with the remainder as the
// template. Any other name fails with [ErrUnsupportedEncoding].
func ParseEncoding(s string) (Encoding, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Encoding(s), nil
	}
	for _, e := range encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// Section is a self-contained view of one section of a [Result]: its
// identifier, header value, and rows in display order.
type Section[S, R any] struct {
	ID    SectionID
	Value S
	Rows  []Row[R]
}

// Row is one row of a [Section].
type Row[R any] struct {
	ID    RowID
	Value R
}

// Sections returns every section of r in display order.
func (r Result[S, R]) Sections() []Section[S, R] {
	out := make([]Section[S, R], len(r.SectionIDs))
	for i, sid := range r.SectionIDs {
		rids := r.Rows(sid)
		sec := Section[S, R]{ID: sid, Value: r.Content.Sections[sid], Rows: make([]Row[R], len(rids))}
		for j, rid := range rids {
			sec.Rows[j] = Row[R]{ID: rid, Value: r.Content.Rows[rid]}
		}
		out[i] = sec
	}
	return out
}

// Write encodes res and writes it to w.
func Write[S, R any](w io.Writer, e Encoding, res Result[S, R]) error {
	switch e {
	case JSON:
		return writeJSON(w, res)
	case YAML:
		return writeYAML(w, res)
	case CSV:
		return writeCSV(w, res)
	case Outline:
		return writeOutline(w, res)
	default:
		if tmpl, ok := strings.CutPrefix(string(e), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, res)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, e)
	}
}

// Marshal encodes res and returns the bytes.
func Marshal[S, R any](e Encoding, res Result[S, R]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, e, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellText renders a display value as a single text cell.
func cellText(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
