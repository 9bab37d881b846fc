package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,4}$`

	// Phone pattern - country code of 1 to 3 digits followed by exactly
	// 10 digits, e.g. +919876543210
	PhonePattern = `^\+[0-9]{1,3}[0-9]{10}$`

	// Password min length
	PasswordMinLength = 8

	// PasswordSpecials are the special characters a password must include
	// at least one of
	PasswordSpecials = "!@#$%^&*"
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// ValidEmail reports whether email has a plausible address format
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidPhone reports whether phone includes a country code and a
// 10-digit subscriber number
func ValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// ValidPassword reports whether password is at least 8 characters and
// contains a letter, a digit and one of the required special characters
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case strings.ContainsRune(PasswordSpecials, ch):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// ValidSemesterCGPA reports whether a per-semester CGPA value lies in (0, 10]
func ValidSemesterCGPA(value float64) bool {
	return value > 0 && value <= 10
}

// ValidSemesterCGPAs checks a full per-semester list: the expected length is
// two semesters per academic year and every value must be in range
func ValidSemesterCGPAs(values []float64, year int) bool {
	if len(values) != year*2 {
		return false
	}
	for _, v := range values {
		if !ValidSemesterCGPA(v) {
			return false
		}
	}
	return true
}
