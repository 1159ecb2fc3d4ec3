package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrInvalidPartner        = errors.New("delivery partner is not specified or inactive")

	ErrAccessDenied       = errors.New("access denied")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingTerminal    = errors.New("booking is already delivered or cancelled")
	ErrBookingNotPending  = errors.New("booking is not pending")
	ErrPartnerNotAssigned = errors.New("delivery partner is not assigned")
	ErrInvalidTransition  = errors.New("status transition is not allowed")
)
