package entity

import (
	"regexp"
	"unicode/utf8"
)

// Field limits mirrored by the database columns
const (
	MaxNameLength  = 100
	MaxEmailLength = 255
	MaxTitleLength = 255
	// MinPasswordLength is the shortest password accepted at registration
	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks the address shape and length
func IsValidEmail(email string) bool {
	return len(email) <= MaxEmailLength && emailPattern.MatchString(email)
}

// IsValidPassword checks the minimum password length in characters
func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}
