//go:build unit || e2e

package builder

import (
	"time"

	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	ID                uuid.UUID
	RecorderID        uuid.UUID
	RecorderName      string
	WorkspaceID       *uuid.UUID
	Direction         string
	AmountPaise       int64
	CounterpartyName  string
	CounterpartyPhone string
	LoanDate          time.Time
	Note              string
	Verified          bool
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		ID:                uuid.New(),
		RecorderID:        uuid.New(),
		RecorderName:      "Priya Sharma",
		Direction:         "given",
		AmountPaise:       500000, // ₹5000
		CounterpartyName:  "Ravi Kumar",
		CounterpartyPhone: "9876543210",
		LoanDate:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Note:              "seed money",
	}
}

func (b *LoanBuilder) WithDirection(direction string) *LoanBuilder {
	b.Direction = direction
	return b
}

func (b *LoanBuilder) WithCounterparty(name, phone string) *LoanBuilder {
	b.CounterpartyName = name
	b.CounterpartyPhone = phone
	return b
}

func (b *LoanBuilder) WithoutPhone() *LoanBuilder {
	b.CounterpartyPhone = ""
	return b
}

func (b *LoanBuilder) WithAmountPaise(paise int64) *LoanBuilder {
	b.AmountPaise = paise
	return b
}

func (b *LoanBuilder) AsVerified() *LoanBuilder {
	b.Verified = true
	return b
}

func (b *LoanBuilder) BuildSnapshot() *commands.LoanSnapshot {
	return &commands.LoanSnapshot{
		ID:                b.ID,
		RecorderID:        b.RecorderID,
		RecorderName:      b.RecorderName,
		WorkspaceID:       b.WorkspaceID,
		Direction:         b.Direction,
		AmountPaise:       b.AmountPaise,
		CounterpartyName:  b.CounterpartyName,
		CounterpartyPhone: b.CounterpartyPhone,
		LoanDate:          b.LoanDate,
		Verified:          b.Verified,
	}
}

func (b *LoanBuilder) BuildReadModel() *queries.LoanView {
	view := &queries.LoanView{
		ID:                b.ID,
		RecorderID:        b.RecorderID,
		RecorderName:      b.RecorderName,
		WorkspaceID:       b.WorkspaceID,
		Direction:         b.Direction,
		AmountPaise:       b.AmountPaise,
		CounterpartyName:  b.CounterpartyName,
		CounterpartyPhone: b.CounterpartyPhone,
		LoanDate:          b.LoanDate,
		Note:              b.Note,
		CreatedAt:         time.Now(),
	}
	if b.Verified {
		verifiedAt := time.Now()
		view.VerifiedAt = &verifiedAt
	}
	return view
}

func (b *LoanBuilder) BuildCreateRequest() map[string]any {
	return map[string]any{
		"direction":         b.Direction,
		"amountPaise":       b.AmountPaise,
		"counterpartyName":  b.CounterpartyName,
		"counterpartyPhone": b.CounterpartyPhone,
		"loanDate":          b.LoanDate.Format("2006-01-02"),
		"note":              b.Note,
	}
}
