// Package csvtext renders report tables as comma-separated text.
//
// Cells are written verbatim: callers quote the free-text cells they produce
// with Escape, while dates, durations and numbers stay bare. encoding/csv only
// quotes on demand, which would change the layout of generated reports.
package csvtext

import "strings"

// Escape wraps s in double quotes, doubling any embedded quote.
func Escape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Unescape reverses Escape. Values that are not wrapped in quotes are returned unchanged.
func Unescape(s string) string {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
}

// Text joins the rows into CSV text, one row per line, without a trailing newline.
func Text(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}
