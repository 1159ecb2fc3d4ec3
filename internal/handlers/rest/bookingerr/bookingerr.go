// Package bookingerr отображает ошибки жизненного цикла заказа в HTTP-статусы.
package bookingerr

import (
	"errors"
	"net/http"

	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/booking"
	"food-delivery/internal/service/chat"
)

func Status(err error) int {
	switch {
	case errors.Is(err, booking.ErrMissingRequiredFields),
		errors.Is(err, booking.ErrInvalidBookingID),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidPartner),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong),
		errors.Is(err, httpio.ErrBadJSON),
		errors.Is(err, httpio.ErrInvalidPathID):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrBookingTerminal),
		errors.Is(err, booking.ErrBookingNotPending),
		errors.Is(err, booking.ErrPartnerNotAssigned),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, chat.ErrChatClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
