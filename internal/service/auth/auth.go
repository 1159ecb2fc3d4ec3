package auth

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"food-delivery/internal/entities"
	"food-delivery/internal/service/user"
	"food-delivery/pkg/hasher"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/token"
)

type Config struct {
	// EchoCode возвращает код в ответе вместо отправки SMS (окружение разработки).
	EchoCode bool
}

type Service struct {
	otp       OTPService
	users     UserRepository
	sms       SMSSender
	tokens    TokenManager
	passwords PasswordHasher
	activity  ActivityRecorder
	txManager TxManager
	log       serviceLogger
	config    Config
}

func New(
	otp OTPService,
	users UserRepository,
	sms SMSSender,
	tokens TokenManager,
	passwords PasswordHasher,
	activity ActivityRecorder,
	txManager TxManager,
	log serviceLogger,
	config Config,
) *Service {
	return &Service{
		otp:       otp,
		users:     users,
		sms:       sms,
		tokens:    tokens,
		passwords: passwords,
		activity:  activity,
		txManager: txManager,
		log:       log,
		config:    config,
	}
}

// SendOTP выдает код для входа или регистрации.
// Для входа аккаунт должен существовать, для регистрации наоборот.
func (s *Service) SendOTP(ctx context.Context, input entities.MobileInput, purpose entities.OTPPurpose) (*entities.OTPDispatch, error) {
	if !purpose.IsValid() {
		return nil, ErrInvalidPurpose
	}

	mobile, err := NormalizeMobile(input)
	if err != nil {
		return nil, err
	}

	exists, err := s.accountExists(ctx, mobile)
	if err != nil {
		return nil, err
	}
	switch {
	case purpose == entities.OTPPurposeLogin && !exists:
		return nil, ErrAccountNotFound
	case purpose == entities.OTPPurposeSignup && exists:
		return nil, ErrAccountExists
	}

	issued, err := s.otp.IssueCode(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("issue otp: %w", err)
	}

	dispatch := &entities.OTPDispatch{
		Mobile:    issued.Mobile,
		ExpiresIn: issued.ExpiresIn,
	}
	if s.config.EchoCode {
		dispatch.DebugCode = issued.Code
		return dispatch, nil
	}

	err = s.sms.Send(ctx, entities.Notification{
		Mobile: mobile,
		Text:   fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", issued.Code, int(issued.ExpiresIn.Minutes())),
	})
	if err != nil {
		if revokeErr := s.otp.RevokeCode(ctx, mobile, issued.Code); revokeErr != nil {
			s.log.Warn("revoke undelivered otp", logger.NewField("error", revokeErr))
		}
		return nil, fmt.Errorf("send otp sms: %w", err)
	}
	return dispatch, nil
}

// VerifyOTP подтверждает номер без входа. Вход или регистрация затем проходят без кода.
func (s *Service) VerifyOTP(ctx context.Context, input entities.MobileInput, code string) (string, error) {
	mobile, err := NormalizeMobile(input)
	if err != nil {
		return "", err
	}

	if err := s.verify(ctx, mobile, code); err != nil {
		return "", err
	}
	return mobile, nil
}

func (s *Service) Signup(ctx context.Context, req entities.SignupRequest) (*entities.Session, error) {
	if req.Role != entities.RoleCustomer && req.Role != entities.RoleDeliveryPartner {
		return nil, ErrInvalidRole
	}

	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Address = strings.TrimSpace(req.Address)

	if !isValidName(req.FirstName) {
		return nil, fmt.Errorf("%w: first name", ErrInvalidName)
	}
	if req.LastName != "" && !isValidName(req.LastName) {
		return nil, fmt.Errorf("%w: last name", ErrInvalidName)
	}
	if req.Email != "" && !isValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	if err := s.requireVerified(ctx, mobile, req.Code); err != nil {
		return nil, err
	}

	active := true
	created, err := s.users.Create(ctx, entities.UserModify{
		Mobile:    &mobile,
		Email:     &req.Email,
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
		Address:   &req.Address,
		Role:      &req.Role,
		IsActive:  &active,
	})
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.clearVerified(ctx, mobile)
	s.activity.Record(ctx, created.ID, entities.ActivitySignup, fmt.Sprintf("New %s registered", created.Role.Display()))

	return s.session(ctx, created, "User logged in after signup")
}

func (s *Service) Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error) {
	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	if err := s.requireVerified(ctx, mobile, req.Code); err != nil {
		return nil, err
	}

	found, err := s.users.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found.IsActive {
		return nil, ErrAccountInactive
	}

	s.clearVerified(ctx, mobile)
	return s.session(ctx, found, "User logged in")
}

// AdminLogin - вход администратора по email и паролю.
func (s *Service) AdminLogin(ctx context.Context, req entities.AdminLoginRequest) (*entities.Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if found.Role != entities.RoleAdmin || found.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwords.Compare(found.PasswordHash, req.Password); err != nil {
		if errors.Is(err, hasher.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !found.IsActive {
		return nil, ErrAccountInactive
	}

	return s.session(ctx, found, "Admin logged in")
}

// Authenticate проверяет токен и возвращает актуальные данные пользователя.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (entities.Actor, error) {
	if isBlank(rawToken) {
		return entities.Actor{}, ErrInvalidToken
	}

	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	found, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return entities.Actor{}, ErrInvalidToken
		}
		return entities.Actor{}, fmt.Errorf("get user: %w", err)
	}
	if !found.IsActive {
		return entities.Actor{}, ErrAccountInactive
	}

	return found.Actor(), nil
}

// EnsureAdmin создает администратора или сбрасывает пароль существующему.
func (s *Service) EnsureAdmin(ctx context.Context, req entities.AdminCreate) (*entities.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !isValidEmail(email) {
		return nil, false, ErrInvalidEmail
	}
	if req.Password == "" {
		return nil, false, ErrMissingRequiredFields
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, false, err
	}

	var (
		admin   *entities.User
		created bool
	)
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		created = false

		existing, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil:
			if existing.Role != entities.RoleAdmin {
				return fmt.Errorf("%w: %s belongs to a %s", ErrAccountExists, email, existing.Role.Display())
			}
			active := true
			admin, err = s.users.Update(ctx, entities.UserModify{
				ID:           &existing.ID,
				PasswordHash: &hash,
				IsActive:     &active,
			})
			return err
		case !errors.Is(err, user.ErrUserNotFound):
			return fmt.Errorf("get user: %w", err)
		}

		mobile := adminMobile(email)
		role := entities.RoleAdmin
		active := true
		admin, err = s.users.Create(ctx, entities.UserModify{
			Mobile:       &mobile,
			Email:        &email,
			PasswordHash: &hash,
			FirstName:    &req.FirstName,
			LastName:     &req.LastName,
			Role:         &role,
			IsActive:     &active,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("admin account ready",
		logger.NewField("user_id", admin.ID),
		logger.NewField("created", created),
	)
	return admin, created, nil
}

func (s *Service) requireVerified(ctx context.Context, mobile, code string) error {
	code = strings.TrimSpace(code)
	if code != "" {
		return s.verify(ctx, mobile, code)
	}

	verified, err := s.otp.IsVerified(ctx, mobile)
	if err != nil {
		return fmt.Errorf("check otp verification: %w", err)
	}
	if !verified {
		return ErrNotVerified
	}
	return nil
}

func (s *Service) verify(ctx context.Context, mobile, code string) error {
	code = strings.TrimSpace(code)
	if !isValidOTPFormat(code) {
		return ErrInvalidOTPFormat
	}
	if err := s.otp.VerifyCode(ctx, mobile, code); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	return nil
}

// clearVerified снимает подтверждение после использования. Флаг все равно истечет по TTL.
func (s *Service) clearVerified(ctx context.Context, mobile string) {
	if err := s.otp.ClearVerified(ctx, mobile); err != nil {
		s.log.Warn("clear otp verification", logger.NewField("error", err))
	}
}

func (s *Service) accountExists(ctx context.Context, mobile string) (bool, error) {
	_, err := s.users.GetByMobile(ctx, mobile)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, user.ErrUserNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("get user: %w", err)
	}
}

func (s *Service) session(ctx context.Context, u *entities.User, description string) (*entities.Session, error) {
	raw, expiresAt, err := s.tokens.Issue(token.Claims{
		UserID: u.ID,
		Role:   u.Role.String(),
		Name:   u.FullName(),
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.activity.Record(ctx, u.ID, entities.ActivityLogin, description)
	return &entities.Session{
		Token:     raw,
		ExpiresAt: expiresAt,
		User:      *u,
	}, nil
}

// adminMobile - заглушка номера для администратора, уникальная по email.
func adminMobile(email string) string {
	sum := md5.Sum([]byte(email))
	return "+admin_" + hex.EncodeToString(sum[:])[:10]
}
