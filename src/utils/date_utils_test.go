package utils_test

import (
	"testing"

	"github.com/username/safrapanel/backend/src/utils"
)

func TestCanonicalDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // "" means nil
	}{
		{"ISO date", "2026-02-10", "2026-02-10"},
		{"ISO timestamp", "2026-02-10T03:00:00.000Z", "2026-02-10"},
		{"Brazilian format", "10/02/2026", "2026-02-10"},
		{"Brazilian single digits", "5/3/2026", "2026-03-05"},
		{"padded", "  10/02/2026  ", "2026-02-10"},
		{"garbage", "sem data", ""},
		{"impossible date", "32/13/2026", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.CanonicalDate(tt.raw)
			if tt.want == "" {
				if got != nil {
					t.Errorf("CanonicalDate(%q) = %q, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("CanonicalDate(%q) = %v, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatBRDate(t *testing.T) {
	if got := utils.FormatBRDate("2026-02-10"); got != "10/02/2026" {
		t.Errorf("FormatBRDate = %q, want 10/02/2026", got)
	}
	// Non-ISO input passes through untouched.
	if got := utils.FormatBRDate("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatBRDate passthrough = %q", got)
	}
}
