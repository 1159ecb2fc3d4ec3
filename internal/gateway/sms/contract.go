//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_test
package sms

import (
	"context"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type client interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type sendRetrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
