package utils

import (
	"strconv"
	"strings"
)

// ParseLocaleNumber converts a raw spreadsheet cell into a float64. Handles
// Brazilian formatting ("1.234,56", "R$ 2.500,00") as well as plain numbers.
// Anything unparseable coerces to 0: spreadsheet noise degrades to zero
// totals instead of failing the whole dataset.
func ParseLocaleNumber(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		cleaned := strings.NewReplacer("R$", "", " ", "", " ", "").Replace(v)
		if cleaned == "" {
			return 0
		}
		// Thousands dots first, then the decimal comma.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// CleanString trims a raw cell and collapses a nil into "".
func CleanString(raw any) string {
	s, _ := raw.(string)
	return strings.TrimSpace(s)
}
