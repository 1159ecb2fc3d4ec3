package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength    = 150
	maxAddressLength = 1000
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	return utf8.RuneCountInString(name) <= maxNameLength
}

func isValidAddress(address string) bool {
	return utf8.RuneCountInString(address) <= maxAddressLength
}

// isValidEmail принимает только голый адрес без отображаемого имени.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}
