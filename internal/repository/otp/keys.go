package otp

const (
	codePrefix     = "otp:"
	attemptsPrefix = "otp_attempts:"
	verifiedPrefix = "otp_verified:"
)

type keys struct {
	code     string
	attempts string
	verified string
}

func keysFor(mobile string) keys {
	return keys{
		code:     codePrefix + mobile,
		attempts: attemptsPrefix + mobile,
		verified: verifiedPrefix + mobile,
	}
}

func (k keys) all() []string {
	return []string{k.code, k.attempts, k.verified}
}
