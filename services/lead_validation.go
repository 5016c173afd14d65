package services

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Validation thresholds for the lead form
const (
	MinFullNameLength = 2
	MinGoalLength     = 6
)

// browserWhitespace is the whitespace class browsers use for \s and trim().
// It differs from unicode.IsSpace: it includes U+FEFF and excludes U+0085.
const browserWhitespace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// emailPattern is ^[^\s@]+@[^\s@]+\.[^\s@]+$ with the browser whitespace class
var emailPattern = regexp.MustCompile(`^[^` + browserWhitespace + `@]+@[^` + browserWhitespace + `@]+\.[^` + browserWhitespace + `@]+$`)

func isBrowserSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

// TrimField strips leading and trailing whitespace the way the browser form did
func TrimField(s string) string {
	return strings.TrimFunc(s, isBrowserSpace)
}

// fieldLength counts UTF-16 code units, matching the length the browser reports
func fieldLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// IsEmailValid reports whether the trimmed email looks like local@domain.tld
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(TrimField(email))
}

// IsFullNameValid requires at least two characters after trimming
func IsFullNameValid(name string) bool {
	return fieldLength(TrimField(name)) >= MinFullNameLength
}

// IsGoalValid requires at least six characters after trimming
func IsGoalValid(goal string) bool {
	return fieldLength(TrimField(goal)) >= MinGoalLength
}

// ShouldHintEmail reports whether the inline "Enter a valid email address."
// hint is shown: something was typed but it is not a valid email.
func ShouldHintEmail(email string) bool {
	return TrimField(email) != "" && !IsEmailValid(email)
}
