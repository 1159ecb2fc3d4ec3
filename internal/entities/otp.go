package entities

import "time"

// OTPState - снимок состояния одноразового кода по номеру телефона.
// Нулевой CodeTTL означает отсутствие кода.
type OTPState struct {
	Code     string
	CodeTTL  time.Duration
	Attempts int
	Verified bool
}

func (s OTPState) HasCode() bool {
	return s.Code != "" && s.CodeTTL > 0
}

// OTPMutation описывает изменения, которые хранилище применяет атомарно.
// Каждое поле независимо, nil - не трогать.
type OTPMutation struct {
	SetCode        *OTPValue
	DeleteCode     bool
	SetAttempts    *OTPCounter
	DeleteAttempts bool
	SetVerified    *time.Duration
	DeleteVerified bool
}

type OTPValue struct {
	Code string
	TTL  time.Duration
}

type OTPCounter struct {
	Value int
	TTL   time.Duration
}

type OTPStatus struct {
	Exists    bool
	Verified  bool
	Attempts  int
	ExpiresIn time.Duration
}

type OTPIssue struct {
	Mobile    string
	Code      string
	ExpiresIn time.Duration
}
