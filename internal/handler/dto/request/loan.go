package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateLoanRequest struct {
	Direction         string     `json:"direction" binding:"required,oneof=given taken"`
	AmountPaise       int64      `json:"amountPaise" binding:"required,gt=0"`
	CounterpartyName  string     `json:"counterpartyName" binding:"required,max=120"`
	CounterpartyPhone string     `json:"counterpartyPhone" binding:"omitempty,max=20"`
	LoanDate          string     `json:"loanDate" binding:"required,datetime=2006-01-02"`
	Note              string     `json:"note" binding:"omitempty,max=500"`
	WorkspaceID       *uuid.UUID `json:"workspaceId" binding:"omitempty"`
}

func (r *CreateLoanRequest) GetCounterpartyPhone() string {
	return strings.TrimSpace(r.CounterpartyPhone)
}

// ParsedLoanDate assumes the binding validator already checked the layout.
func (r *CreateLoanRequest) ParsedLoanDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.LoanDate)
	return t
}
