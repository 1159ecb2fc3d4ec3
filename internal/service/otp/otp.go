package otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-delivery/internal/entities"
)

const (
	CodeLength  = 4
	CodeTTL     = 300 * time.Second
	AttemptsTTL = 300 * time.Second
	VerifiedTTL = 600 * time.Second
	MaxAttempts = 3
)

type Service struct {
	store     Store
	generator CodeGenerator
}

func New(store Store, generator CodeGenerator) *Service {
	return &Service{
		store:     store,
		generator: generator,
	}
}

// IssueCode выдает новый код, если по номеру нет действующего.
// Счетчик попыток и флаг подтверждения при этом сбрасываются.
func (s *Service) IssueCode(ctx context.Context, mobile string) (*entities.OTPIssue, error) {
	if !isValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	code, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("issue otp: %w", err)
	}

	var outcome error
	err = s.store.Update(ctx, mobile, func(state entities.OTPState) entities.OTPMutation {
		outcome = nil
		if state.HasCode() {
			outcome = &AlreadySentError{RetryAfter: state.CodeTTL}
			return entities.OTPMutation{}
		}
		return entities.OTPMutation{
			SetCode:        &entities.OTPValue{Code: code, TTL: CodeTTL},
			DeleteAttempts: true,
			DeleteVerified: true,
		}
	})
	if err != nil {
		err = fmt.Errorf("issue otp: %w", err)
	} else {
		err = outcome
	}
	observe("issue", err)
	if err != nil {
		return nil, err
	}

	return &entities.OTPIssue{
		Mobile:    mobile,
		Code:      code,
		ExpiresIn: CodeTTL,
	}, nil
}

// VerifyCode сверяет код. После MaxAttempts неудачных попыток код удаляется,
// после успешной проверки номер считается подтвержденным VerifiedTTL.
func (s *Service) VerifyCode(ctx context.Context, mobile, submitted string) error {
	if !isValidMobile(mobile) {
		return ErrInvalidMobile
	}
	submitted = strings.TrimSpace(submitted)

	var outcome error
	err := s.store.Update(ctx, mobile, func(state entities.OTPState) entities.OTPMutation {
		outcome = nil

		if !state.HasCode() {
			outcome = ErrCodeNotFound
			return entities.OTPMutation{}
		}

		if state.Attempts >= MaxAttempts {
			outcome = ErrMaxAttempts
			return entities.OTPMutation{
				DeleteCode:     true,
				DeleteAttempts: true,
			}
		}

		if subtle.ConstantTimeCompare([]byte(submitted), []byte(state.Code)) == 1 {
			verifiedTTL := VerifiedTTL
			return entities.OTPMutation{
				DeleteCode:     true,
				DeleteAttempts: true,
				SetVerified:    &verifiedTTL,
			}
		}

		attempts := state.Attempts + 1
		outcome = &InvalidCodeError{AttemptsRemaining: MaxAttempts - attempts}
		return entities.OTPMutation{
			SetAttempts: &entities.OTPCounter{Value: attempts, TTL: AttemptsTTL},
		}
	})
	if err != nil {
		err = fmt.Errorf("verify otp: %w", err)
	} else {
		err = outcome
	}
	observe("verify", err)
	return err
}

// RevokeCode удаляет выданный код, если он все еще действует.
// Код, замененный другим, не трогается.
func (s *Service) RevokeCode(ctx context.Context, mobile, code string) error {
	err := s.store.Update(ctx, mobile, func(state entities.OTPState) entities.OTPMutation {
		if !state.HasCode() || state.Code != code {
			return entities.OTPMutation{}
		}
		return entities.OTPMutation{
			DeleteCode:     true,
			DeleteAttempts: true,
		}
	})
	if err != nil {
		return fmt.Errorf("revoke otp: %w", err)
	}
	return nil
}

func (s *Service) IsVerified(ctx context.Context, mobile string) (bool, error) {
	state, err := s.store.Load(ctx, mobile)
	if err != nil {
		return false, fmt.Errorf("check otp verification: %w", err)
	}
	return state.Verified, nil
}

func (s *Service) ClearVerified(ctx context.Context, mobile string) error {
	err := s.store.Update(ctx, mobile, func(entities.OTPState) entities.OTPMutation {
		return entities.OTPMutation{DeleteVerified: true}
	})
	if err != nil {
		return fmt.Errorf("clear otp verification: %w", err)
	}
	return nil
}

func (s *Service) Status(ctx context.Context, mobile string) (*entities.OTPStatus, error) {
	if !isValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	state, err := s.store.Load(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("otp status: %w", err)
	}

	status := &entities.OTPStatus{
		Exists:   state.HasCode(),
		Verified: state.Verified,
		Attempts: state.Attempts,
	}
	if status.Exists {
		status.ExpiresIn = state.CodeTTL
	}
	return status, nil
}

func isRejection(err error) bool {
	return errors.Is(err, ErrInvalidMobile) ||
		errors.Is(err, ErrAlreadySent) ||
		errors.Is(err, ErrCodeNotFound) ||
		errors.Is(err, ErrMaxAttempts) ||
		errors.Is(err, ErrInvalidCode)
}
