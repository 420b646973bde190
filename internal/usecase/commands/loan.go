package commands

import (
	"context"
	"time"

	"udhaarbook/internal/domain/loan"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLoanValidation = errs.New("loan validation error")

type CreateLoanParams struct {
	RecorderID        uuid.UUID
	WorkspaceID       *uuid.UUID
	Direction         string
	AmountPaise       int64
	CounterpartyName  string
	CounterpartyPhone string
	LoanDate          time.Time
	Note              string
}

type LoanCommands interface {
	CreateLoan(ctx context.Context, params CreateLoanParams) (uuid.UUID, error)
}

type loanCommandsImpl struct {
	loanRepo LoanRepository
}

func NewLoanCommands(loanRepo LoanRepository) LoanCommands {
	return &loanCommandsImpl{loanRepo: loanRepo}
}

func (l *loanCommandsImpl) CreateLoan(ctx context.Context, params CreateLoanParams) (uuid.UUID, error) {
	entity, err := toLoanEntity(params)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrLoanValidation)
	}

	id, err := l.loanRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrLoanValidation)
		}
		return uuid.Nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return id, nil
}

func toLoanEntity(params CreateLoanParams) (*loan.Loan, error) {
	direction, err := loan.NewDirection(params.Direction)
	if err != nil {
		return nil, err
	}
	amount, err := loan.NewAmount(params.AmountPaise)
	if err != nil {
		return nil, err
	}
	name, err := loan.NewCounterpartyName(params.CounterpartyName)
	if err != nil {
		return nil, err
	}
	note, err := loan.NewNote(params.Note)
	if err != nil {
		return nil, err
	}

	return loan.NewLoan(
		params.RecorderID,
		params.WorkspaceID,
		direction,
		amount,
		name,
		params.CounterpartyPhone,
		params.LoanDate,
		note,
	), nil
}
