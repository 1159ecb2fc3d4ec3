// Package autherr - общее отображение ошибок входа и OTP в HTTP-ответы.
package autherr

import (
	"errors"
	"net/http"
	"strconv"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/auth"
	"food-delivery/internal/service/otp"
	"food-delivery/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func Write(w http.ResponseWriter, log errorLogger, err error) {
	var (
		body        dto.Error
		mobileErr   *auth.InvalidMobileError
		alreadySent *otp.AlreadySentError
		invalidCode *otp.InvalidCodeError
		status      int
	)

	switch {
	case errors.As(err, &mobileErr):
		status = http.StatusBadRequest
		body.Example = &mobileErr.Example
	case errors.Is(err, auth.ErrMissingRequiredFields),
		errors.Is(err, auth.ErrInvalidCountryCode),
		errors.Is(err, auth.ErrInvalidMobile),
		errors.Is(err, auth.ErrInvalidOTPFormat),
		errors.Is(err, auth.ErrInvalidName),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrInvalidRole),
		errors.Is(err, auth.ErrInvalidPurpose),
		errors.Is(err, auth.ErrNotVerified),
		errors.Is(err, otp.ErrInvalidMobile),
		errors.Is(err, otp.ErrCodeNotFound),
		errors.Is(err, httpio.ErrBadJSON):
		status = http.StatusBadRequest
	case errors.As(err, &invalidCode):
		status = http.StatusBadRequest
		body.AttemptsRemaining = &invalidCode.AttemptsRemaining
	case errors.Is(err, otp.ErrInvalidCode):
		status = http.StatusBadRequest
	case errors.As(err, &alreadySent):
		status = http.StatusTooManyRequests
		retryAfter := int(alreadySent.RetryAfter.Seconds())
		body.RetryAfter = &retryAfter
	case errors.Is(err, otp.ErrAlreadySent),
		errors.Is(err, otp.ErrMaxAttempts):
		status = http.StatusTooManyRequests
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrAccountInactive):
		status = http.StatusForbidden
	case errors.Is(err, auth.ErrAccountNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrAccountExists):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusTooManyRequests && body.RetryAfter != nil {
		w.Header().Set("Retry-After", strconv.Itoa(*body.RetryAfter))
	}
	httpio.WriteErrorBody(w, log, status, err, body)
}
