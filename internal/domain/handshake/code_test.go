//go:build unit

package handshake_test

import (
	"testing"
	"time"

	"udhaarbook/internal/domain/handshake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) handshake.Policy {
	t.Helper()
	p, err := handshake.NewPolicy(6, 168*time.Hour, 5, time.Hour)
	require.NoError(t, err)
	return p
}

func TestNewPolicy(t *testing.T) {
	t.Run("rejects out-of-range code lengths", func(t *testing.T) {
		_, err := handshake.NewPolicy(3, time.Hour, 5, time.Hour)
		assert.ErrorIs(t, err, handshake.ErrInvalidCodeLength)

		_, err = handshake.NewPolicy(10, time.Hour, 5, time.Hour)
		assert.ErrorIs(t, err, handshake.ErrInvalidCodeLength)
	})
}

func TestGenerateCode(t *testing.T) {
	p := testPolicy(t)

	for range 50 {
		code, err := p.GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NoError(t, p.ValidateCodeShape(code), "generated code must pass its own shape check")
	}
}

func TestValidateCodeShape(t *testing.T) {
	p := testPolicy(t)

	cases := []struct {
		name string
		code string
		ok   bool
	}{
		{name: "valid", code: "482917", ok: true},
		{name: "leading zeros valid", code: "004217", ok: true},
		{name: "too short", code: "48291", ok: false},
		{name: "too long", code: "4829171", ok: false},
		{name: "letters", code: "48a917", ok: false},
		{name: "empty", code: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.ValidateCodeShape(tc.code)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, handshake.ErrMalformedCode)
			}
		})
	}
}

func TestExpiredAt(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("before expiry is live", func(t *testing.T) {
		assert.False(t, handshake.ExpiredAt(expiry.Add(-time.Second), expiry))
	})

	t.Run("exactly at expiry is expired", func(t *testing.T) {
		// Closed interval favors expiry over leniency.
		assert.True(t, handshake.ExpiredAt(expiry, expiry))
	})

	t.Run("after expiry is expired", func(t *testing.T) {
		assert.True(t, handshake.ExpiredAt(expiry.Add(time.Second), expiry))
	})
}

func TestVerifyURL(t *testing.T) {
	assert.Equal(t, "https://udhaarbook.app/v/482917", handshake.VerifyURL("https://udhaarbook.app", "482917"))
	assert.Equal(t, "https://udhaarbook.app/v/482917", handshake.VerifyURL("https://udhaarbook.app/", "482917"))
}

func TestBuildShareMessage(t *testing.T) {
	msg := handshake.BuildShareMessage(handshake.ShareMessageParams{
		RecorderName:     "Priya Sharma",
		CounterpartyName: "Ravi Kumar",
		AmountDisplay:    "₹5000",
		Direction:        "given",
		LoanDate:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Code:             "482917",
		VerifyURL:        "https://udhaarbook.app/v/482917",
		ExpiresAt:        time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "482917")
	assert.Contains(t, msg, "Priya Sharma")
	assert.Contains(t, msg, "₹5000")
	assert.Contains(t, msg, "https://udhaarbook.app/v/482917")
	assert.Contains(t, msg, "lent you")

	taken := handshake.BuildShareMessage(handshake.ShareMessageParams{
		RecorderName:     "Priya Sharma",
		CounterpartyName: "Ravi Kumar",
		AmountDisplay:    "₹5000",
		Direction:        "taken",
		LoanDate:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Code:             "482917",
		VerifyURL:        "https://udhaarbook.app/v/482917",
		ExpiresAt:        time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, taken, "borrowed from you")
}
