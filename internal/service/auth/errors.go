package auth

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCountryCode    = errors.New("invalid country code")
	ErrInvalidMobile         = errors.New("invalid mobile number")
	ErrInvalidOTPFormat      = errors.New("otp must be exactly 4 digits")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidPurpose        = errors.New("invalid otp purpose")

	ErrAccountNotFound    = errors.New("account not found, please sign up first")
	ErrAccountExists      = errors.New("account already exists, please login")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrNotVerified        = errors.New("mobile number is not verified")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// InvalidMobileError - номер не соответствует формату страны.
type InvalidMobileError struct {
	Country string
	Example string
}

func (e *InvalidMobileError) Error() string {
	return fmt.Sprintf("invalid mobile number format for %s, example: %s", e.Country, e.Example)
}

func (e *InvalidMobileError) Unwrap() error {
	return ErrInvalidMobile
}
