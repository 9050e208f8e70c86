package ingest

import "strings"

// SplitRow splits one line of delimited text into trimmed fields.
// Commas delimit only outside double-quoted spans; tabs always delimit.
// A double quote toggles quoted state and is never emitted. Unbalanced
// quotes are tolerated: the span simply runs to end of line. This is
// deliberately naive CSV quoting — no escaped quotes, no embedded
// newlines; each physical line is one record.
func SplitRow(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case (r == ',' && !inQuotes) || r == '\t':
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
