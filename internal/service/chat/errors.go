package chat

import (
	"errors"

	"food-delivery/internal/service/booking"
)

var (
	ErrEmptyMessage   = errors.New("empty message")
	ErrMessageTooLong = errors.New("message is too long")
	ErrChatClosed     = errors.New("chat is not available for this booking")

	ErrAccessDenied    = booking.ErrAccessDenied
	ErrBookingNotFound = booking.ErrBookingNotFound
)
