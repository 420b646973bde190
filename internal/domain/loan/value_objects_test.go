//go:build unit

package loan_test

import (
	"strings"
	"testing"

	"udhaarbook/internal/domain/loan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirection(t *testing.T) {
	given, err := loan.NewDirection("given")
	require.NoError(t, err)
	assert.Equal(t, loan.DirectionGiven, given)

	taken, err := loan.NewDirection("taken")
	require.NoError(t, err)
	assert.Equal(t, loan.DirectionTaken, taken)

	_, err = loan.NewDirection("lent")
	assert.ErrorIs(t, err, loan.ErrInvalidDirection)
}

func TestNewAmount(t *testing.T) {
	t.Run("positive amount", func(t *testing.T) {
		a, err := loan.NewAmount(500000)
		require.NoError(t, err)
		assert.Equal(t, int64(500000), a.Paise())
	})

	t.Run("zero rejected", func(t *testing.T) {
		_, err := loan.NewAmount(0)
		assert.ErrorIs(t, err, loan.ErrNonPositiveAmount)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := loan.NewAmount(-100)
		assert.ErrorIs(t, err, loan.ErrNonPositiveAmount)
	})
}

func TestAmountDisplay(t *testing.T) {
	whole, err := loan.NewAmount(500000)
	require.NoError(t, err)
	assert.Equal(t, "₹5000", whole.Display())

	withPaise, err := loan.NewAmount(500050)
	require.NoError(t, err)
	assert.Equal(t, "₹5000.50", withPaise.Display())
}

func TestNewCounterpartyName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := loan.NewCounterpartyName("  Ravi Kumar  ")
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", n.String())
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := loan.NewCounterpartyName("   ")
		assert.ErrorIs(t, err, loan.ErrEmptyCounterparty)
	})

	t.Run("too long rejected", func(t *testing.T) {
		_, err := loan.NewCounterpartyName(strings.Repeat("a", loan.MaxCounterpartyNameLength+1))
		assert.ErrorIs(t, err, loan.ErrCounterpartyTooLong)
	})
}

func TestNewNote(t *testing.T) {
	n, err := loan.NewNote("  for tractor repair  ")
	require.NoError(t, err)
	assert.Equal(t, "for tractor repair", n.String())

	_, err = loan.NewNote(strings.Repeat("x", loan.MaxNoteLength+1))
	assert.ErrorIs(t, err, loan.ErrNoteTooLong)
}
