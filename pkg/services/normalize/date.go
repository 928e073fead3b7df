package normalize

import (
	"strings"
	"time"
)

const displayLayout = "02/01/2006"

// Date is the outcome of a best-effort date parse. Display always holds
// something printable; Valid reports whether Time is usable for sorting
// and filtering.
type Date struct {
	Display string
	Time    time.Time
	Valid   bool
}

// ParseDate normalizes the date shapes found across the workbook:
// "2025-12-01", "2025-12-01 00:00:00" and "01/12/2025". Unparseable input
// keeps the raw string as its display value and is marked invalid, so
// callers can sort such rows last or drop them without special-casing.
func ParseDate(raw string) Date {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Date{Display: raw}
	}

	// Drop a time suffix such as " 00:00:00".
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		text = text[:i]
	}

	var layout string
	switch {
	case strings.Contains(text, "-"):
		layout = "2006-1-2"
	case strings.Contains(text, "/"):
		layout = "2/1/2006"
	default:
		return Date{Display: raw}
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return Date{Display: raw}
	}
	return Date{Display: t.Format(displayLayout), Time: t, Valid: true}
}
