// Package picker formats menu levels for the external fuzzel process and
// maps its output back to config entries.
package picker

import "bytes"

// Row pairs a display name with an optional resolved icon path.
type Row struct {
	Name     string
	IconPath string
}

// Format renders rows into fuzzel's dmenu input: one line per entry in the
// given order, with the icon path attached out-of-band after a NUL using
// fuzzel's per-line icon convention (name\0icon\x1fpath). Entries are never
// reordered or filtered here; filtering is the picker's job.
func Format(rows []Row) []byte {
	var buf bytes.Buffer
	for _, row := range rows {
		buf.WriteString(row.Name)
		if row.IconPath != "" {
			buf.WriteString("\x00icon\x1f")
			buf.WriteString(row.IconPath)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
