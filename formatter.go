package gradeforge

import "strings"

// FormatRows renders rows one per line with fields joined by sep.
// There is no header row and no trailing newline.
func FormatRows(rows [][]string, sep string) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, sep))
	}

	return strings.Join(lines, "\n")
}
