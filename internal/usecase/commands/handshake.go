package commands

import (
	"context"
	"log/slog"
	"time"

	"udhaarbook/internal/domain/handshake"
	"udhaarbook/internal/domain/loan"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/clock"
	"udhaarbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLoanNotFound        = errs.New("loan not found")
	ErrForbidden           = errs.New("caller does not own this loan")
	ErrLoanAlreadyVerified = errs.New("loan already verified")
	ErrCodeIssueFailed     = errs.New("code issuance failed")
	ErrStoreUnavailable    = errs.New("record store unavailable")
)

// codeIssueAttempts bounds collision retries against the active-code space.
const codeIssueAttempts = 5

type LoanRepository interface {
	Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error)
	FindSnapshot(ctx context.Context, loanID uuid.UUID) (*LoanSnapshot, error)
	IsAccessibleBy(ctx context.Context, loanID, userID uuid.UUID) (bool, error)
}

type CodeRepository interface {
	// Supersede atomically removes any unused code for the loan and inserts
	// the new one, so at most one code can ever resolve to a given loan.
	Supersede(ctx context.Context, loanID uuid.UUID, code string, issuedAt, expiresAt time.Time) error
	Resolve(ctx context.Context, code string) (*CodeRecord, error)
	// ConsumeAndConfirm performs the conditional consume, confirmation insert
	// and loan verification stamp as one transaction. A caller that loses the
	// consume race gets KindConflict.
	ConsumeAndConfirm(ctx context.Context, code, assertedName, assertedPhone string, confirmedAt time.Time) (*ConfirmationSnapshot, error)
}

type IssueResult struct {
	Code         string
	ExpiresAt    time.Time
	ShareMessage string
}

type HandshakeCommands interface {
	IssueCode(ctx context.Context, loanID, requestingUserID uuid.UUID) (*IssueResult, error)
	Verify(ctx context.Context, code, assertedName, assertedPhone string) (*VerifyResult, error)
}

type handshakeCommandsImpl struct {
	loanRepo LoanRepository
	codeRepo CodeRepository
	policy   handshake.Policy
	baseURL  string
	clock    clock.Clock
}

func NewHandshakeCommands(
	loanRepo LoanRepository,
	codeRepo CodeRepository,
	policy handshake.Policy,
	baseURL string,
	clk clock.Clock,
) HandshakeCommands {
	return &handshakeCommandsImpl{
		loanRepo: loanRepo,
		codeRepo: codeRepo,
		policy:   policy,
		baseURL:  baseURL,
		clock:    clk,
	}
}

func (h *handshakeCommandsImpl) IssueCode(ctx context.Context, loanID, requestingUserID uuid.UUID) (*IssueResult, error) {
	snap, err := h.loanRepo.FindSnapshot(ctx, loanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	accessible, err := h.loanRepo.IsAccessibleBy(ctx, loanID, requestingUserID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if !accessible {
		return nil, ErrForbidden
	}

	if snap.Verified {
		return nil, ErrLoanAlreadyVerified
	}

	now := h.clock.Now()
	expiresAt := now.Add(h.policy.CodeTTL)

	code, err := h.issueUniqueCode(ctx, loanID, now, expiresAt)
	if err != nil {
		return nil, err
	}

	amount, err := loan.NewAmount(snap.AmountPaise)
	if err != nil {
		return nil, errs.Mark(err, ErrCodeIssueFailed)
	}

	verifyURL := handshake.VerifyURL(h.baseURL, code)
	message := handshake.BuildShareMessage(handshake.ShareMessageParams{
		RecorderName:     snap.RecorderName,
		CounterpartyName: snap.CounterpartyName,
		AmountDisplay:    amount.Display(),
		Direction:        snap.Direction,
		LoanDate:         snap.LoanDate,
		Code:             code,
		VerifyURL:        verifyURL,
		ExpiresAt:        expiresAt,
	})

	return &IssueResult{
		Code:         code,
		ExpiresAt:    expiresAt,
		ShareMessage: message,
	}, nil
}

// issueUniqueCode retries generation on collision with an existing code.
// The 6-digit space is sparse enough that a handful of attempts suffices.
func (h *handshakeCommandsImpl) issueUniqueCode(ctx context.Context, loanID uuid.UUID, issuedAt, expiresAt time.Time) (string, error) {
	for attempt := range codeIssueAttempts {
		code, err := h.policy.GenerateCode()
		if err != nil {
			return "", errs.Mark(err, ErrCodeIssueFailed)
		}

		err = h.codeRepo.Supersede(ctx, loanID, code, issuedAt, expiresAt)
		if err == nil {
			return code, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Warn("verification code collision, regenerating",
				"loan_id", loanID, "attempt", attempt+1)
			continue
		}
		return "", errs.Mark(err, ErrStoreUnavailable)
	}
	return "", ErrCodeIssueFailed
}
