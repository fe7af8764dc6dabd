// Package validate enforces the form's field rules on the server.
// The HTML form carries the same rules as attributes (required, maxlength,
// pattern), but those only help honest browsers; everything here runs on
// every request regardless of what the client claimed to check.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength matches the maxlength attribute on the form inputs.
const MaxNameLength = 64

var (
	ErrMissingName = errors.New("first or last name not found")
	ErrNameTooLong = fmt.Errorf("name exceeds %d characters", MaxNameLength)
	ErrBadName     = errors.New("name contains unsupported characters")
)

// Name trims the given field value and checks it against the form rules:
// present after trimming, within the length cap, and composed of letters
// plus the usual name punctuation (spaces, hyphens, apostrophes, periods).
// Returns the trimmed value.
func Name(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrMissingName
	}
	// Count characters, not bytes: maxlength on the form counts characters.
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", ErrNameTooLong
	}
	for _, r := range trimmed {
		if !isNameRune(r) {
			return "", ErrBadName
		}
	}
	return trimmed, nil
}

func isNameRune(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	switch r {
	case ' ', '-', '\'', '.':
		return true
	}
	return false
}
