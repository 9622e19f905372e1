package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DateLayout     = "2006-01-02"
	maxLabelLength = 200
)

var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateLabel validates a catalog value used as a selector: a brand, fuel type or model.
// Catalog values are free text ("MERCEDES-BENZ", "Golf 2.0 TDI", "Eléctrico"), so any
// printable text is accepted.
func ValidateLabel(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value cannot be empty")
	}

	if !utf8.ValidString(value) {
		return errors.New("value is not valid UTF-8")
	}

	if utf8.RuneCountInString(value) > maxLabelLength {
		return errors.New("value too long (max 200 characters)")
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return errors.New("value contains control characters")
		}
	}

	if dangerousPattern.MatchString(value) {
		return errors.New("value contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	// Empty dates are allowed (will default to current date)
	if date == "" {
		return nil
	}

	if _, err := time.Parse(DateLayout, date); err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}
