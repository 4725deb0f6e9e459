package table

import (
	"strings"
)

// FormatOptions controls cosmetic aspects of serialization. A whitespace-only
// separator never affects parsing; non-whitespace characters in it end up
// inside the adjacent tokens when the text is re-parsed. Zero value is the
// compact default.
type FormatOptions struct {
	// ColumnSeparator is written between adjacent entries on a row and
	// between adjacent header symbols. Defaults to a single space.
	ColumnSeparator string
}

// DefaultFormatOptions returns the compact, single-space-separated default.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{ColumnSeparator: " "}
}

func (o FormatOptions) sep() string {
	if o.ColumnSeparator == "" {
		return " "
	}
	return o.ColumnSeparator
}

// flagPrefix is the width-4 (rune count, not byte count — "→" is a
// multi-byte rune) flag column used by every row and the header, so that
// state names start in the same column regardless of flags
// ("→ * ", "→   ", "  * ", "    "). Each of the four branches below already
// writes exactly two two-rune pieces, so the result never needs truncating.
const flagColumnWidth = 4

func flagPrefix(initial, accepting bool) string {
	var b strings.Builder
	if initial {
		b.WriteString("→ ")
	} else {
		b.WriteString("  ")
	}
	if accepting {
		b.WriteString("* ")
	} else {
		b.WriteString("  ")
	}
	return b.String()
}

// SerialRow is a state row ready to be written out: names already
// resolved, nothing left to look up.
type SerialRow struct {
	Name      string
	Initial   bool
	Accepting bool
	Entries   []Entry
}

// Serialize formats a header and its rows into the canonical table text.
// isSet selects DFA-style single-word entries (false) or NFA-style
// brace-enclosed sets (true); it must match how Entries was populated in
// each row.
func Serialize(header []string, rows []SerialRow, isSet bool, opts FormatOptions) string {
	sep := opts.sep()
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", flagColumnWidth))
	b.WriteString(strings.Join(header, sep))
	b.WriteByte('\n')

	for _, row := range rows {
		b.WriteString(flagPrefix(row.Initial, row.Accepting))
		b.WriteString(row.Name)
		for _, e := range row.Entries {
			b.WriteString(sep)
			b.WriteString(formatEntry(e, isSet))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func formatEntry(e Entry, isSet bool) string {
	if !isSet {
		return e.Word
	}
	if len(e.Words) == 0 {
		return "{}"
	}
	return "{" + strings.Join(e.Words, " ") + "}"
}
