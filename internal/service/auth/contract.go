//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/token"
)

type OTPService interface {
	IssueCode(ctx context.Context, mobile string) (*entities.OTPIssue, error)
	RevokeCode(ctx context.Context, mobile, code string) error
	VerifyCode(ctx context.Context, mobile, submitted string) error
	IsVerified(ctx context.Context, mobile string) (bool, error)
	ClearVerified(ctx context.Context, mobile string) error
}

type UserRepository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByMobile(ctx context.Context, mobile string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type SMSSender interface {
	Send(ctx context.Context, notification entities.Notification) error
}

type TokenManager interface {
	Issue(claims token.Claims) (string, time.Time, error)
	Parse(raw string) (token.Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, userID int64, action entities.ActivityAction, description string)
}

type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
