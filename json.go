package listview

import (
	"encoding/json"
	"fmt"
	"io"
)

// document is the wire shape of a Result, the same dataBlob/sectionIDs/rowIDs
// triple sectioned list widgets are built from.
type document struct {
	DataBlob   map[string]any `json:"dataBlob" yaml:"dataBlob"`
	SectionIDs []int          `json:"sectionIDs" yaml:"sectionIDs"`
	RowIDs     [][]string     `json:"rowIDs" yaml:"rowIDs"`
}

func (r Result[S, R]) document() document {
	doc := document{
		DataBlob:   r.Content.Blob(),
		SectionIDs: make([]int, len(r.SectionIDs)),
		RowIDs:     make([][]string, len(r.RowIDs)),
	}
	for i, sid := range r.SectionIDs {
		doc.SectionIDs[i] = int(sid)
	}
	for i, rows := range r.RowIDs {
		doc.RowIDs[i] = make([]string, len(rows))
		for j, rid := range rows {
			doc.RowIDs[i][j] = rid.String()
		}
	}
	return doc
}

// fromDocument rebuilds the typed result from decoded identifiers and
// checks that it is one [Format] could have produced: sections numbered from
// 0, one non-empty row list per section with consecutive ordinals, and exactly
// one blob entry per listed identifier. section and row fill a value from the
// dataBlob entry under key.
func fromDocument[S, R any](ids []int, rowIDs [][]string, blob []string, section func(key string, v *S) error, row func(key string, v *R) error) (Result[S, R], error) {
	if len(rowIDs) != len(ids) {
		return Result[S, R]{}, fmt.Errorf("%w: %d sections but %d row lists", ErrInvalidID, len(ids), len(rowIDs))
	}
	res := Result[S, R]{
		Content: Content[S, R]{
			Sections: make(map[SectionID]S, len(ids)),
			Rows:     make(map[RowID]R),
		},
		SectionIDs: make([]SectionID, 0, len(ids)),
		RowIDs:     make([][]RowID, 0, len(rowIDs)),
	}
	for i, n := range ids {
		if n != i {
			return Result[S, R]{}, fmt.Errorf("%w: section %d at position %d", ErrInvalidID, n, i)
		}
		res.SectionIDs = append(res.SectionIDs, SectionID(n))
	}
	total := 0
	for i, rows := range rowIDs {
		if len(rows) == 0 {
			return Result[S, R]{}, fmt.Errorf("%w: section %d has no rows", ErrInvalidID, i)
		}
		parsed := make([]RowID, 0, len(rows))
		for j, s := range rows {
			rid, err := ParseRowID(s)
			if err != nil {
				return Result[S, R]{}, err
			}
			if rid != (RowID{Section: SectionID(i), Row: j}) {
				return Result[S, R]{}, fmt.Errorf("%w: row %q at position %d,%d", ErrInvalidID, s, i, j)
			}
			parsed = append(parsed, rid)
		}
		res.RowIDs = append(res.RowIDs, parsed)
		total += len(rows)
	}
	for _, key := range blob {
		if rid, err := ParseRowID(key); err == nil {
			if int(rid.Section) >= len(res.RowIDs) || rid.Row >= len(res.RowIDs[rid.Section]) {
				return Result[S, R]{}, fmt.Errorf("%w: unlisted row %q", ErrInvalidID, key)
			}
			if _, dup := res.Content.Rows[rid]; dup {
				return Result[S, R]{}, fmt.Errorf("%w: duplicate row %q", ErrInvalidID, key)
			}
			var v R
			if err := row(key, &v); err != nil {
				return Result[S, R]{}, err
			}
			res.Content.Rows[rid] = v
			continue
		}
		sid, err := ParseSectionID(key)
		if err != nil {
			return Result[S, R]{}, err
		}
		if int(sid) >= len(res.SectionIDs) {
			return Result[S, R]{}, fmt.Errorf("%w: unlisted section %q", ErrInvalidID, key)
		}
		if _, dup := res.Content.Sections[sid]; dup {
			return Result[S, R]{}, fmt.Errorf("%w: duplicate section %q", ErrInvalidID, key)
		}
		var v S
		if err := section(key, &v); err != nil {
			return Result[S, R]{}, err
		}
		res.Content.Sections[sid] = v
	}
	if len(res.Content.Sections) != len(res.SectionIDs) || len(res.Content.Rows) != total {
		return Result[S, R]{}, fmt.Errorf("%w: dataBlob is missing listed identifiers", ErrInvalidID)
	}
	return res, nil
}

// MarshalJSON encodes the result as {"dataBlob":…,"sectionIDs":…,"rowIDs":…}.
func (r Result[S, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.document())
}

// UnmarshalJSON decodes the form produced by [Result.MarshalJSON].
func (r *Result[S, R]) UnmarshalJSON(b []byte) error {
	var raw struct {
		DataBlob   map[string]json.RawMessage `json:"dataBlob"`
		SectionIDs []int                      `json:"sectionIDs"`
		RowIDs     [][]string                 `json:"rowIDs"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	keys := make([]string, 0, len(raw.DataBlob))
	for k := range raw.DataBlob {
		keys = append(keys, k)
	}
	res, err := fromDocument(raw.SectionIDs, raw.RowIDs, keys,
		func(key string, v *S) error { return json.Unmarshal(raw.DataBlob[key], v) },
		func(key string, v *R) error { return json.Unmarshal(raw.DataBlob[key], v) },
	)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func writeJSON[S, R any](w io.Writer, res Result[S, R]) error {
	return json.NewEncoder(w).Encode(res)
}
