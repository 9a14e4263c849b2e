package listview

// Content holds the display value of every section and row in a [Result],
// keyed by identifier. Section and row identifiers have disjoint text forms,
// so together the two maps behave as one unique-keyed table.
type Content[S, R any] struct {
	Sections map[SectionID]S
	Rows     map[RowID]R
}

// Len returns the number of entries across sections and rows.
func (c Content[S, R]) Len() int { return len(c.Sections) + len(c.Rows) }

// Section returns the header value of section id.
func (c Content[S, R]) Section(id SectionID) (S, bool) {
	v, ok := c.Sections[id]
	return v, ok
}

// Row returns the value of row id.
func (c Content[S, R]) Row(id RowID) (R, bool) {
	v, ok := c.Rows[id]
	return v, ok
}

// Lookup resolves an identifier in either text form ("2" or "2,0"). It
// returns nil and false if there is no such entry.
func (c Content[S, R]) Lookup(id string) (any, bool) {
	if rid, err := ParseRowID(id); err == nil {
		if v, ok := c.Rows[rid]; ok {
			return v, true
		}
		return nil, false
	}
	sid, err := ParseSectionID(id)
	if err != nil {
		return nil, false
	}
	if v, ok := c.Sections[sid]; ok {
		return v, true
	}
	return nil, false
}

// Blob flattens the content into a single string-keyed map, the data blob
// shape sectioned list widgets consume.
func (c Content[S, R]) Blob() map[string]any {
	blob := make(map[string]any, c.Len())
	for id, v := range c.Sections {
		blob[id.String()] = v
	}
	for id, v := range c.Rows {
		blob[id.String()] = v
	}
	return blob
}

// Result is the input of a sectioned list: the content table, the section
// order, and the row order of each section. RowIDs[i] belongs to
// SectionIDs[i].
type Result[S, R any] struct {
	Content    Content[S, R]
	SectionIDs []SectionID
	RowIDs     [][]RowID
}

// Len returns the number of sections.
func (r Result[S, R]) Len() int { return len(r.SectionIDs) }

// Empty reports whether the result has no sections.
func (r Result[S, R]) Empty() bool { return len(r.SectionIDs) == 0 }

// Rows returns the row order of section id, or nil if there is no such
// section.
func (r Result[S, R]) Rows(id SectionID) []RowID {
	if id < 0 || int(id) >= len(r.RowIDs) {
		return nil
	}
	return r.RowIDs[id]
}

// Grouped returns a group key for the item. It is both the section key and
// the section header value in [FormatGrouped].
type Grouped interface {
	Group() string
}

// Format arranges records into sections of equal key, in the order each key
// first appears, keeping the input order of records within a section.
//
// sectionKey is called once per record, sectionValue once per section on its
// first record, and rowValue once per record. Panics raised by any of them
// propagate to the caller.
func Format[T any, K comparable, S, R any](records []T, sectionKey func(T) K, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return FormatWith[T, K, S, R](records, GroupBy[T, K], sectionKey, sectionValue, rowValue)
}

// FormatFunc is like [Format] but compares section keys with equal.
func FormatFunc[T, K, S, R any](records []T, sectionKey func(T) K, equal func(a, b K) bool, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return FormatWith[T, K, S, R](records, EqualFunc[T](equal), sectionKey, sectionValue, rowValue)
}

// FormatWith is like [Format] but partitions records with group.
func FormatWith[T, K, S, R any](records []T, group Grouper[T, K], sectionKey func(T) K, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return build(group(records, sectionKey), sectionValue, rowValue)
}

// FormatGrouped sections records by their [Grouped] key. The key is used as
// the section value and each record as its own row value.
func FormatGrouped[T Grouped](records []T) Result[string, T] {
	key := func(r T) string { return r.Group() }
	return Format(records, key, key, func(r T) T { return r })
}

func build[T, S, R any](groups [][]T, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	res := Result[S, R]{
		Content: Content[S, R]{
			Sections: make(map[SectionID]S, len(groups)),
			Rows:     make(map[RowID]R),
		},
		SectionIDs: make([]SectionID, 0, len(groups)),
		RowIDs:     make([][]RowID, 0, len(groups)),
	}
	for i, group := range groups {
		sid := SectionID(i)
		// Every record in a group shares a section value; take the first.
		res.Content.Sections[sid] = sectionValue(group[0])
		rows := make([]RowID, 0, len(group))
		for j, record := range group {
			rid := RowID{Section: sid, Row: j}
			res.Content.Rows[rid] = rowValue(record)
			rows = append(rows, rid)
		}
		res.RowIDs = append(res.RowIDs, rows)
		res.SectionIDs = append(res.SectionIDs, sid)
	}
	return res
}
