package listview

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionID is the 0-based ordinal of a section in first-appearance order.
type SectionID int

// String returns the decimal ordinal.
func (id SectionID) String() string { return strconv.Itoa(int(id)) }

// MarshalText implements [encoding.TextMarshaler].
func (id SectionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *SectionID) UnmarshalText(b []byte) error {
	v, err := ParseSectionID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ParseSectionID parses the text form produced by [SectionID.String]. Other
// spellings of the same number, such as "01" or "+1", are rejected.
func ParseSectionID(s string) (SectionID, error) {
	n, ok := parseOrdinal(s)
	if !ok {
		return 0, fmt.Errorf("%w: section %q", ErrInvalidID, s)
	}
	return SectionID(n), nil
}

// parseOrdinal accepts only the canonical decimal form of a non-negative int,
// so each ordinal has exactly one text form.
func parseOrdinal(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}

// RowID identifies a row by its owning section and its ordinal within that
// section. It is unique across a [Result].
type RowID struct {
	Section SectionID
	Row     int
}

// String returns "<section>,<row>".
func (id RowID) String() string {
	return id.Section.String() + "," + strconv.Itoa(id.Row)
}

// MarshalText implements [encoding.TextMarshaler].
func (id RowID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *RowID) UnmarshalText(b []byte) error {
	v, err := ParseRowID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ParseRowID parses the text form produced by [RowID.String]. Both parts must
// be canonical decimal ordinals.
func ParseRowID(s string) (RowID, error) {
	sec, row, ok := strings.Cut(s, ",")
	if !ok {
		return RowID{}, fmt.Errorf("%w: row %q", ErrInvalidID, s)
	}
	sid, err := ParseSectionID(sec)
	if err != nil {
		return RowID{}, fmt.Errorf("%w: row %q", ErrInvalidID, s)
	}
	n, ok := parseOrdinal(row)
	if !ok {
		return RowID{}, fmt.Errorf("%w: row %q", ErrInvalidID, s)
	}
	return RowID{Section: sid, Row: n}, nil
}
