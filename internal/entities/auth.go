package entities

import "time"

type OTPPurpose string

const (
	OTPPurposeLogin  OTPPurpose = "login"
	OTPPurposeSignup OTPPurpose = "signup"
)

func (p OTPPurpose) IsValid() bool {
	return p == OTPPurposeLogin || p == OTPPurposeSignup
}

// MobileInput - номер в том виде, в котором его ввел пользователь.
type MobileInput struct {
	CountryCode string
	Number      string
}

// OTPDispatch - результат отправки кода. DebugCode заполняется только вне production.
type OTPDispatch struct {
	Mobile    string
	ExpiresIn time.Duration
	DebugCode string
}

type SignupRequest struct {
	Mobile    MobileInput
	Code      string
	Role      Role
	FirstName string
	LastName  string
	Email     string
	Address   string
}

type LoginRequest struct {
	Mobile MobileInput
	Code   string
}

type AdminLoginRequest struct {
	Email    string
	Password string
}

type AdminCreate struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
