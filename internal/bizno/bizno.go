// Package bizno validates and formats Korean business registration numbers
// (사업자등록번호).
package bizno

import (
	"errors"
	"strings"
)

var (
	ErrLength   = errors.New("business number must be 10 digits")
	ErrChecksum = errors.New("business number checksum mismatch")
)

var weights = [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// Normalize strips everything except ASCII digits, so "124-81-00998" and
// "124 81 00998" both become "1248100998".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks the length and the weighted mod-10 check digit.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != 10 || len(digits) != len(stripSeparators(s)) {
		return ErrLength
	}

	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	sum += (int(digits[8]-'0') * 5) / 10

	check := (10 - sum%10) % 10
	if check != int(digits[9]-'0') {
		return ErrChecksum
	}
	return nil
}

func IsValid(s string) bool {
	return Validate(s) == nil
}

// Format renders a 10-digit number as XXX-XX-XXXXX. It checks length only.
func Format(s string) (string, error) {
	digits := Normalize(s)
	if len(digits) != 10 || len(digits) != len(stripSeparators(s)) {
		return "", ErrLength
	}
	return digits[:3] + "-" + digits[3:5] + "-" + digits[5:], nil
}

// stripSeparators drops the separators users commonly type so that any other
// stray character makes the input invalid instead of being silently dropped.
func stripSeparators(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}
