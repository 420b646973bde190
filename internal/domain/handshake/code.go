package handshake

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"
)

var (
	ErrInvalidCodeLength = errors.New("code length out of range")
	ErrMalformedCode     = errors.New("malformed verification code")
)

const (
	MinCodeLength = 4
	MaxCodeLength = 9
)

// Policy is the configurable half of the protocol: how long codes are, how
// long they stay valid and how hard the public endpoint may be hammered.
type Policy struct {
	CodeLength     int
	CodeTTL        time.Duration
	VerifyAttempts int
	VerifyWindow   time.Duration
}

func NewPolicy(codeLength int, codeTTL time.Duration, verifyAttempts int, verifyWindow time.Duration) (Policy, error) {
	if codeLength < MinCodeLength || codeLength > MaxCodeLength {
		return Policy{}, ErrInvalidCodeLength
	}
	return Policy{
		CodeLength:     codeLength,
		CodeTTL:        codeTTL,
		VerifyAttempts: verifyAttempts,
		VerifyWindow:   verifyWindow,
	}, nil
}

// GenerateCode draws a fixed-length numeric code, zero-padded so "004217"
// stays six characters. Numeric keeps it speakable over a phone call.
func (p Policy) GenerateCode() (string, error) {
	upper := big.NewInt(1)
	for range p.CodeLength {
		upper.Mul(upper, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", err
	}
	digits := n.String()
	for len(digits) < p.CodeLength {
		digits = "0" + digits
	}
	return digits, nil
}

// ValidateCodeShape rejects obviously malformed input before a lookup ever
// reaches the store. It deliberately does not reveal more than "malformed".
func (p Policy) ValidateCodeShape(code string) error {
	if len(code) != p.CodeLength {
		return ErrMalformedCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrMalformedCode
		}
	}
	return nil
}

// ExpiredAt reports whether a code is dead at instant now. The interval is
// closed on the right: a code checked at exactly expires_at is expired.
func ExpiredAt(now, expiresAt time.Time) bool {
	return !now.Before(expiresAt)
}
