package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone pattern - 10 to 13 digits with optional leading +
	PhonePattern = `^\+?\d{10,13}$`

	// Roll number pattern - alphanumeric, 2 to 20 characters
	RollNoPattern = `^[A-Za-z0-9]{2,20}$`

	// Password min length
	PasswordMinLength = 6

	// Name min length
	NameMinLength = 2
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Phone  *regexp.Regexp
	RollNo *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Phone:  regexp.MustCompile(PhonePattern),
	RollNo: regexp.MustCompile(RollNoPattern),
}

// IsValidEmail reports whether s has an acceptable email shape.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidPhone reports whether s has an acceptable phone shape.
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// IsValidRollNo reports whether s has an acceptable roll number shape.
func IsValidRollNo(s string) bool {
	return CompiledPatterns.RollNo.MatchString(s)
}

// InRange reports whether v lies in [min, max].
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}
