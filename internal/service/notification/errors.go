package notification

import "errors"

var ErrUnknownEventType = errors.New("unknown booking event type")
