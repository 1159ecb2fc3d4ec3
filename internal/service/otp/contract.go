//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_test
package otp

import (
	"context"

	"food-delivery/internal/entities"
)

// Store - хранилище с истечением ключей. Update выполняет fn и применяет мутацию атомарно
// относительно других Update по тому же номеру; fn может быть вызвана повторно.
type Store interface {
	Load(ctx context.Context, mobile string) (entities.OTPState, error)
	Update(ctx context.Context, mobile string, fn func(entities.OTPState) entities.OTPMutation) error
}

type CodeGenerator interface {
	Generate() (string, error)
}
