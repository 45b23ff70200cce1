package model

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxDescriptionLength is the longest description the sandbox API accepts
// for counterparties and transactions.
const MaxDescriptionLength = 36

// maxPrefixLength bounds the sanitized username used to namespace bank IDs.
const maxPrefixLength = 20

// GenerateUUIDWithSuffix generates a UUID with a given module name as a suffix.
// This is useful for creating unique identifiers with context-specific prefixes.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// SanitizePrefix turns a username into a bank-ID prefix: lowercased, every
// non-alphanumeric rune mapped to a dot, bounded to maxPrefixLength runes.
// Alphanumeric is Unicode-aware, so accented letters survive.
func SanitizePrefix(username string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '.'
	}, strings.ToLower(username))

	runes := []rune(cleaned)
	if len(runes) > maxPrefixLength {
		runes = runes[:maxPrefixLength]
	}
	return string(runes)
}

// TruncateDescription bounds a description to MaxDescriptionLength runes.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > MaxDescriptionLength {
		runes = runes[:MaxDescriptionLength]
	}
	return string(runes)
}
