package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain name", "Jane", "Jane", nil},
		{"trims whitespace", "  Jane ", "Jane", nil},
		{"hyphenated", "Anne-Marie", "Anne-Marie", nil},
		{"apostrophe", "O'Brien", "O'Brien", nil},
		{"initial with period", "J. R.", "J. R.", nil},
		{"unicode letters", "Žofia", "Žofia", nil},
		{"empty", "", "", ErrMissingName},
		{"whitespace only", "   ", "", ErrMissingName},
		{"digits rejected", "Jane2", "", ErrBadName},
		{"angle brackets rejected", "<script>", "", ErrBadName},
		{"too long", strings.Repeat("a", MaxNameLength+1), "", ErrNameTooLong},
		{"at length cap", strings.Repeat("a", MaxNameLength), strings.Repeat("a", MaxNameLength), nil},
		{"multibyte past cap in bytes but not characters", strings.Repeat("Ж", 40), strings.Repeat("Ж", 40), nil},
		{"multibyte at length cap", strings.Repeat("Ж", MaxNameLength), strings.Repeat("Ж", MaxNameLength), nil},
		{"multibyte over length cap", strings.Repeat("Ж", MaxNameLength+1), "", ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Name(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
