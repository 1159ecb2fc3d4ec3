package healthcheck_head

import "context"

// Pinger - зависимость, без которой сервис не готов принимать трафик.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc позволяет передать функцию вместо клиента.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}
