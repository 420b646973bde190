package handshake

import "strings"

// MatchOutcome classifies an identity comparison between the loan's recorded
// counterparty and the identity asserted on the public verification form.
type MatchOutcome int

const (
	MatchOK MatchOutcome = iota
	MatchNameMismatch
	MatchPhoneMismatch
)

const subscriberDigits = 10

// NormalizePhone reduces a free-text phone to its subscriber digits: strip
// every non-digit, then drop whatever country code ("91") or trunk prefix
// ("0") precedes the trailing 10 digits. Idempotent by construction.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	digits := b.String()
	if len(digits) > subscriberDigits {
		digits = digits[len(digits)-subscriberDigits:]
	}
	return digits
}

// MatchName is strict by policy: case-insensitive equality after trimming
// leading/trailing whitespace. No fuzzy or typo tolerance.
func MatchName(recorded, asserted string) bool {
	return strings.EqualFold(strings.TrimSpace(recorded), strings.TrimSpace(asserted))
}

func MatchPhone(recorded, asserted string) bool {
	return NormalizePhone(recorded) == NormalizePhone(asserted)
}

// MatchIdentity applies both checks. A loan recorded without a counterparty
// phone is matched on name alone; the asserted phone is then ignored.
func MatchIdentity(recordedName, recordedPhone, assertedName, assertedPhone string) MatchOutcome {
	if !MatchName(recordedName, assertedName) {
		return MatchNameMismatch
	}
	if strings.TrimSpace(recordedPhone) == "" {
		return MatchOK
	}
	if !MatchPhone(recordedPhone, assertedPhone) {
		return MatchPhoneMismatch
	}
	return MatchOK
}
