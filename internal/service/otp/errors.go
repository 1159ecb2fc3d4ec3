package otp

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMobile = errors.New("invalid mobile number")

	ErrAlreadySent  = errors.New("otp already sent")
	ErrCodeNotFound = errors.New("otp expired or not found")
	ErrMaxAttempts  = errors.New("maximum otp attempts exceeded")
	ErrInvalidCode  = errors.New("invalid otp")
)

// AlreadySentError несет оставшееся время жизни выданного кода.
type AlreadySentError struct {
	RetryAfter time.Duration
}

func (e *AlreadySentError) Error() string {
	return fmt.Sprintf("otp already sent, retry in %d seconds", int(e.RetryAfter.Seconds()))
}

func (e *AlreadySentError) Unwrap() error {
	return ErrAlreadySent
}

// InvalidCodeError несет количество оставшихся попыток.
type InvalidCodeError struct {
	AttemptsRemaining int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid otp, %d attempts remaining", e.AttemptsRemaining)
}

func (e *InvalidCodeError) Unwrap() error {
	return ErrInvalidCode
}
