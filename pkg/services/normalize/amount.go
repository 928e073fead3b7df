package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Amount parses a locale-formatted currency cell into a float. It never
// fails: empty cells, NaN sentinels and unparseable junk all yield 0.
//
// The sheet mixes "R$ 1.234,56", "1234.56" and plain integers, so the cell
// is scrubbed down to digits and a single decimal point before parsing.
func Amount(raw string) float64 {
	text := strings.TrimSpace(raw)
	if text == "" || strings.EqualFold(text, "nan") || strings.EqualFold(text, "none") {
		return 0
	}

	text = strings.ReplaceAll(text, "R$", "")
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", ".")

	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	text = b.String()
	if text == "" {
		return 0
	}

	// After the comma swap a value like "1.234,56" reads "1.234.56"; every
	// dot but the last is a thousands separator.
	if n := strings.Count(text, "."); n > 1 {
		last := strings.LastIndex(text, ".")
		text = strings.ReplaceAll(text[:last], ".", "") + text[last:]
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

// Round2 rounds a monetary value to 2 decimal places. Applied once, when a
// value enters the report model.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
