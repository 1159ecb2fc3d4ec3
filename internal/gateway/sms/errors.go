package sms

import "errors"

var (
	ErrEmptyRecipient = errors.New("empty recipient")
	ErrEmptyText      = errors.New("empty text")
)
