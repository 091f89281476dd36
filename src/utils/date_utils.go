package utils

import (
	"fmt"
	"strings"
	"time"
)

// ISODateFormat is the canonical date format of normalized records.
const ISODateFormat = "2006-01-02"

// BRDateFormat is the display format used by spreadsheet exports.
const BRDateFormat = "02/01/2006"

// CanonicalDate converts a raw spreadsheet date value to ISO YYYY-MM-DD.
// Accepts ISO timestamps ("2026-01-15T03:00:00.000Z"), Brazilian DD/MM/YYYY
// and already-canonical dates. Returns nil for anything unparseable; dirty
// dates never abort normalization.
func CanonicalDate(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if idx := strings.Index(s, "T"); idx > 0 {
		s = s[:idx]
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			s = fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
		}
	}

	if _, err := time.Parse(ISODateFormat, s); err != nil {
		return nil
	}
	return &s
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// FormatBRDate renders an ISO date for reports (DD/MM/YYYY). Unparseable
// input is returned unchanged.
func FormatBRDate(iso string) string {
	t, err := time.Parse(ISODateFormat, iso)
	if err != nil {
		return iso
	}
	return t.Format(BRDateFormat)
}
