package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern, matched against the lowercased value
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Slug pattern - lowercase letters, digits and hyphens
	SlugPattern = `^[a-z0-9-]+$`

	// Date pattern - YYYY-MM-DD, calendar validity checked separately
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// Length and size bounds
const (
	NameMinLength     = 2
	NameMaxLength     = 100
	TeamNameMinLength = 3
	TeamNameMaxLength = 100

	ContactNumberLength = 10

	// Additional members besides the leader on a team registration
	MinTeamMembers = 1
	MaxTeamMembers = 3

	TeamSizeMin = 1
	TeamSizeMax = 10
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Slug     *regexp.Regexp
	Date     *regexp.Regexp
	NonDigit *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Slug:     regexp.MustCompile(SlugPattern),
	Date:     regexp.MustCompile(DatePattern),
	NonDigit: regexp.MustCompile(`\D`),
}

// Digits strips every non-digit character from a string
func Digits(s string) string {
	return CompiledPatterns.NonDigit.ReplaceAllString(s, "")
}

// IsValidEmail checks email shape, case-insensitively
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidSlug checks the lowercase slug pattern
func IsValidSlug(slug string) bool {
	return CompiledPatterns.Slug.MatchString(slug)
}

// IsRealDate checks that a YYYY-MM-DD string is an actual calendar date.
// "2025-13-40" matches the pattern but is not a date.
func IsRealDate(date string) bool {
	if !CompiledPatterns.Date.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
