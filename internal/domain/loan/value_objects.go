package loan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrEmptyCounterparty    = errors.New("counterparty name is required")
	ErrCounterpartyTooLong  = errors.New("counterparty name too long")
	ErrNoteTooLong          = errors.New("note too long")
)

const (
	MaxCounterpartyNameLength = 120
	MaxNoteLength             = 500
)

// Amount is the principal in paise. Informal loans are rupee amounts; paise
// precision avoids floating point in storage and arithmetic.
type Amount struct {
	paise int64
}

func NewAmount(paise int64) (Amount, error) {
	if paise <= 0 {
		return Amount{}, ErrNonPositiveAmount
	}
	return Amount{paise: paise}, nil
}

func (a Amount) Paise() int64 {
	return a.paise
}

// Display renders the amount the way the share message and the counterparty
// form show it: whole rupees without a fraction, otherwise two decimals.
func (a Amount) Display() string {
	rupees := a.paise / 100
	frac := a.paise % 100
	if frac == 0 {
		return fmt.Sprintf("₹%d", rupees)
	}
	return fmt.Sprintf("₹%d.%02d", rupees, frac)
}

// CounterpartyName is recorder-asserted free text. It is stored as entered
// (trimmed); matching normalization happens at verification time only.
type CounterpartyName struct {
	value string
}

func NewCounterpartyName(s string) (CounterpartyName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CounterpartyName{}, ErrEmptyCounterparty
	}
	if len(s) > MaxCounterpartyNameLength {
		return CounterpartyName{}, ErrCounterpartyTooLong
	}
	return CounterpartyName{value: s}, nil
}

func (n CounterpartyName) String() string {
	return n.value
}

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: s}, nil
}

func (n Note) String() string {
	return n.value
}
