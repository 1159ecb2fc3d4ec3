package auth

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	otpFormat   = regexp.MustCompile(`^\d{4}$`)
	namePattern = regexp.MustCompile(`^[\p{L}\s\-']+$`)
	emailFormat = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func isValidOTPFormat(code string) bool {
	return otpFormat.MatchString(code)
}

// isValidName: от 2 до 150 символов, только буквы, пробелы, дефисы и апострофы.
func isValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 150 && namePattern.MatchString(name)
}

func isValidEmail(email string) bool {
	if !emailFormat.MatchString(email) {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
