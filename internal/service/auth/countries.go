package auth

import (
	"regexp"
	"strings"

	"food-delivery/internal/entities"
)

const DefaultCountryCode = "+91"

type country struct {
	name    string
	pattern *regexp.Regexp
	example string
}

var countries = map[string]country{
	"+1":   {"United States/Canada", regexp.MustCompile(`^\d{10}$`), "2025551234"},
	"+44":  {"United Kingdom", regexp.MustCompile(`^\d{10}$`), "7911123456"},
	"+91":  {"India", regexp.MustCompile(`^\d{10}$`), "9876543210"},
	"+86":  {"China", regexp.MustCompile(`^\d{11}$`), "13812345678"},
	"+81":  {"Japan", regexp.MustCompile(`^\d{10}$`), "9012345678"},
	"+49":  {"Germany", regexp.MustCompile(`^\d{10,11}$`), "15112345678"},
	"+33":  {"France", regexp.MustCompile(`^\d{9}$`), "612345678"},
	"+61":  {"Australia", regexp.MustCompile(`^\d{9}$`), "412345678"},
	"+7":   {"Russia", regexp.MustCompile(`^\d{10}$`), "9123456789"},
	"+55":  {"Brazil", regexp.MustCompile(`^\d{11}$`), "11987654321"},
	"+52":  {"Mexico", regexp.MustCompile(`^\d{10}$`), "5512345678"},
	"+34":  {"Spain", regexp.MustCompile(`^\d{9}$`), "612345678"},
	"+39":  {"Italy", regexp.MustCompile(`^\d{10}$`), "3123456789"},
	"+82":  {"South Korea", regexp.MustCompile(`^\d{10}$`), "1012345678"},
	"+65":  {"Singapore", regexp.MustCompile(`^\d{8}$`), "81234567"},
	"+60":  {"Malaysia", regexp.MustCompile(`^\d{9,10}$`), "123456789"},
	"+66":  {"Thailand", regexp.MustCompile(`^\d{9}$`), "812345678"},
	"+63":  {"Philippines", regexp.MustCompile(`^\d{10}$`), "9171234567"},
	"+62":  {"Indonesia", regexp.MustCompile(`^\d{10,12}$`), "81234567890"},
	"+84":  {"Vietnam", regexp.MustCompile(`^\d{9,10}$`), "912345678"},
	"+971": {"UAE", regexp.MustCompile(`^\d{9}$`), "501234567"},
	"+966": {"Saudi Arabia", regexp.MustCompile(`^\d{9}$`), "501234567"},
	"+27":  {"South Africa", regexp.MustCompile(`^\d{9}$`), "712345678"},
	"+234": {"Nigeria", regexp.MustCompile(`^\d{10}$`), "8012345678"},
	"+20":  {"Egypt", regexp.MustCompile(`^\d{10}$`), "1001234567"},
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizeMobile приводит номер к виду {код страны}{цифры} и проверяет длину по таблице стран.
func NormalizeMobile(input entities.MobileInput) (string, error) {
	code := strings.TrimSpace(input.CountryCode)
	if code == "" {
		code = DefaultCountryCode
	}

	digits := nonDigits.ReplaceAllString(input.Number, "")
	if digits == "" {
		return "", ErrMissingRequiredFields
	}

	c, ok := countries[code]
	if !ok {
		return "", ErrInvalidCountryCode
	}
	if !c.pattern.MatchString(digits) {
		return "", &InvalidMobileError{Country: c.name, Example: c.example}
	}
	return code + digits, nil
}
