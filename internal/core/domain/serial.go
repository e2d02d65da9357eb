package domain

import (
	"regexp"
	"strings"
)

// serialNumberPattern is YYYYMM, AMP or API, six digits, then B
var serialNumberPattern = regexp.MustCompile(`^[0-9]{6}(AMP|API)[0-9]{6}B$`)

// IsValidSerialNumber reports whether s matches the serial number format exactly
func IsValidSerialNumber(s string) bool {
	return serialNumberPattern.MatchString(s)
}

// NormalizeSerialNumber trims s and validates it
func NormalizeSerialNumber(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", ErrSerialNumberRequired
	}
	if !IsValidSerialNumber(cleaned) {
		return "", ErrInvalidSerialNumber
	}
	return cleaned, nil
}
