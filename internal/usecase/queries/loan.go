package queries

import (
	"context"
	"time"

	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLoanNotFound  = errs.New("loan not found")
	ErrLoanForbidden = errs.New("loan not accessible")
)

type LoanView struct {
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
	VerifiedAt        *time.Time
	CreatedAt         time.Time
}

type LoanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	IsAccessibleBy(ctx context.Context, loanID, userID uuid.UUID) (bool, error)
}

type LoanQueries interface {
	GetByID(ctx context.Context, loanID, requestingUserID uuid.UUID) (*LoanView, error)
}

type loanQueriesImpl struct {
	readStore LoanReadStore
}

func NewLoanQueries(readStore LoanReadStore) LoanQueries {
	return &loanQueriesImpl{readStore: readStore}
}

func (q *loanQueriesImpl) GetByID(ctx context.Context, loanID, requestingUserID uuid.UUID) (*LoanView, error) {
	accessible, err := q.readStore.IsAccessibleBy(ctx, loanID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !accessible {
		// Not-found and not-yours collapse on purpose: a loan ID probe must
		// not reveal which loans exist.
		return nil, ErrLoanNotFound
	}

	view, err := q.readStore.FindByID(ctx, loanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}

	return view, nil
}
