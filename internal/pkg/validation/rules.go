package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Enrollment number pattern - ENR + 4-digit year + 4-digit sequence
	EnrollmentNumberPattern = `^ENR\d{4}\d{4}$`

	// Phone validation pattern - optional country code plus digits
	PhonePattern = `^\+?\d{7,14}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	EnrollmentNumber *regexp.Regexp
	Phone            *regexp.Regexp
}{
	EnrollmentNumber: regexp.MustCompile(EnrollmentNumberPattern),
	Phone:            regexp.MustCompile(PhonePattern),
}

// IsValidEnrollmentNumber reports whether s has the ENR<year><sequence> format.
func IsValidEnrollmentNumber(s string) bool {
	return CompiledPatterns.EnrollmentNumber.MatchString(s)
}
