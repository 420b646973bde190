package commands

import (
	"context"
	"time"

	"udhaarbook/internal/domain/handshake"
	"udhaarbook/internal/domain/loan"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/errs"
)

var (
	// Not-found and expired deliberately collapse into one sentinel so a
	// guesser learns nothing about which codes exist.
	ErrCodeInvalidOrExpired = errs.New("invalid or expired code")
	ErrAlreadyVerified      = errs.New("code already consumed")
	ErrNameMismatch         = errs.New("asserted name does not match")
	ErrPhoneMismatch        = errs.New("asserted phone does not match")
)

type VerifyResult struct {
	LoanType      string
	AmountPaise   int64
	AmountDisplay string
	LoanDate      time.Time
	RecorderName  string
	ConfirmedAt   time.Time
}

func (h *handshakeCommandsImpl) Verify(ctx context.Context, code, assertedName, assertedPhone string) (*VerifyResult, error) {
	if err := h.policy.ValidateCodeShape(code); err != nil {
		return nil, ErrCodeInvalidOrExpired
	}

	rec, err := h.codeRepo.Resolve(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeInvalidOrExpired
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	// A second legitimate visitor deserves a clear answer, so consumed is
	// reported distinctly even though it narrows the guessing feedback a bit.
	if rec.State == CodeStateConsumed {
		return nil, ErrAlreadyVerified
	}

	now := h.clock.Now()
	if handshake.ExpiredAt(now, rec.ExpiresAt) {
		return nil, ErrCodeInvalidOrExpired
	}

	snap, err := h.loanRepo.FindSnapshot(ctx, rec.LoanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeInvalidOrExpired
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	switch handshake.MatchIdentity(snap.CounterpartyName, snap.CounterpartyPhone, assertedName, assertedPhone) {
	case handshake.MatchNameMismatch:
		return nil, ErrNameMismatch
	case handshake.MatchPhoneMismatch:
		return nil, ErrPhoneMismatch
	}

	conf, err := h.codeRepo.ConsumeAndConfirm(ctx, code, assertedName, assertedPhone, now)
	if err != nil {
		switch {
		// Lost the consume race: some concurrent request confirmed first.
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrAlreadyVerified
		// Superseded or expired between resolve and consume.
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCodeInvalidOrExpired
		default:
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return toVerifyResult(conf), nil
}

func toVerifyResult(conf *ConfirmationSnapshot) *VerifyResult {
	display := ""
	if a, err := loan.NewAmount(conf.AmountPaise); err == nil {
		display = a.Display()
	}
	return &VerifyResult{
		LoanType:      conf.Direction,
		AmountPaise:   conf.AmountPaise,
		AmountDisplay: display,
		LoanDate:      conf.LoanDate,
		RecorderName:  conf.RecorderName,
		ConfirmedAt:   conf.ConfirmedAt,
	}
}
