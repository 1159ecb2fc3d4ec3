package otp

import "unicode"

const (
	minMobileDigits = 7
	maxMobileDigits = 15
)

// isValidMobile проверяет нормализованный формат {код страны}{цифры}.
func isValidMobile(mobile string) bool {
	if len(mobile) < 2 || mobile[0] != '+' {
		return false
	}
	digits := mobile[1:]
	if len(digits) < minMobileDigits || len(digits) > maxMobileDigits {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
