package extract

import (
	"strings"
	"time"
)

// Timestamp formats seen in the test-time column of exported workbooks.
var testTimeFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"01-02-06 15:04",
}

// FormatTestTime normalizes a raw test-time cell to YYYY-MM-DD. Cells that
// parse in none of the known formats are truncated to their first ten
// characters, matching how exports embed the date prefix.
func FormatTestTime(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range testTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
