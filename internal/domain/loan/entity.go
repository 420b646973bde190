package loan

import (
	"time"

	"github.com/google/uuid"
)

// Loan is the recorder's side of an informal loan. Counterparty identity
// fields stay recorder-asserted forever; verification stores the
// counterparty's submitted values separately and never corrects these.
type Loan struct {
	id                uuid.UUID
	recorderID        uuid.UUID
	workspaceID       *uuid.UUID
	direction         Direction
	amount            Amount
	counterpartyName  CounterpartyName
	counterpartyPhone string
	loanDate          time.Time
	note              Note
	verifiedAt        *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewLoan(
	recorderID uuid.UUID,
	workspaceID *uuid.UUID,
	direction Direction,
	amount Amount,
	counterpartyName CounterpartyName,
	counterpartyPhone string,
	loanDate time.Time,
	note Note,
) *Loan {
	return &Loan{
		id:                uuid.New(),
		recorderID:        recorderID,
		workspaceID:       workspaceID,
		direction:         direction,
		amount:            amount,
		counterpartyName:  counterpartyName,
		counterpartyPhone: counterpartyPhone,
		loanDate:          loanDate,
		note:              note,
	}
}

func ReconstructLoan(
	id, recorderID uuid.UUID,
	workspaceID *uuid.UUID,
	direction Direction,
	amount Amount,
	counterpartyName CounterpartyName,
	counterpartyPhone string,
	loanDate time.Time,
	note Note,
	verifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Loan {
	return &Loan{
		id:                id,
		recorderID:        recorderID,
		workspaceID:       workspaceID,
		direction:         direction,
		amount:            amount,
		counterpartyName:  counterpartyName,
		counterpartyPhone: counterpartyPhone,
		loanDate:          loanDate,
		note:              note,
		verifiedAt:        verifiedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (l *Loan) IsVerified() bool {
	return l.verifiedAt != nil
}

// HasCounterpartyPhone reports whether the recorder supplied a phone. Loans
// without one are verified on name match alone.
func (l *Loan) HasCounterpartyPhone() bool {
	return l.counterpartyPhone != ""
}

func (l *Loan) ID() uuid.UUID                      { return l.id }
func (l *Loan) RecorderID() uuid.UUID              { return l.recorderID }
func (l *Loan) WorkspaceID() *uuid.UUID            { return l.workspaceID }
func (l *Loan) Direction() Direction               { return l.direction }
func (l *Loan) Amount() Amount                     { return l.amount }
func (l *Loan) CounterpartyName() CounterpartyName { return l.counterpartyName }
func (l *Loan) CounterpartyPhone() string          { return l.counterpartyPhone }
func (l *Loan) LoanDate() time.Time                { return l.loanDate }
func (l *Loan) Note() Note                         { return l.note }
func (l *Loan) VerifiedAt() *time.Time             { return l.verifiedAt }
func (l *Loan) CreatedAt() time.Time               { return l.createdAt }
func (l *Loan) UpdatedAt() time.Time               { return l.updatedAt }
