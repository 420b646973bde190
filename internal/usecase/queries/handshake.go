package queries

import (
	"context"
	"time"

	"udhaarbook/internal/domain/handshake"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/clock"
	"udhaarbook/internal/pkg/errs"
)

var (
	ErrCodeInvalidOrExpired = errs.New("invalid or expired code")
	ErrCodeAlreadyConsumed  = errs.New("code already consumed")
)

// CodePreviewView is what the counterparty-facing form renders before any
// identity is asserted: enough to recognize the loan, nothing more.
type CodePreviewView struct {
	Code          string
	LoanType      string
	AmountPaise   int64
	AmountDisplay string
	LoanDate      time.Time
	RecorderName  string
	ExpiresAt     time.Time
}

type HandshakeReadStore interface {
	FindCodePreview(ctx context.Context, code string) (*CodePreviewView, string, error)
}

type HandshakeQueries interface {
	GetCodePreview(ctx context.Context, code string) (*CodePreviewView, error)
}

type handshakeQueriesImpl struct {
	readStore HandshakeReadStore
	policy    handshake.Policy
	clock     clock.Clock
}

func NewHandshakeQueries(readStore HandshakeReadStore, policy handshake.Policy, clk clock.Clock) HandshakeQueries {
	return &handshakeQueriesImpl{
		readStore: readStore,
		policy:    policy,
		clock:     clk,
	}
}

func (q *handshakeQueriesImpl) GetCodePreview(ctx context.Context, code string) (*CodePreviewView, error) {
	if err := q.policy.ValidateCodeShape(code); err != nil {
		return nil, ErrCodeInvalidOrExpired
	}

	view, state, err := q.readStore.FindCodePreview(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeInvalidOrExpired
		}
		return nil, err
	}

	if state == "consumed" {
		return nil, ErrCodeAlreadyConsumed
	}
	if handshake.ExpiredAt(q.clock.Now(), view.ExpiresAt) {
		return nil, ErrCodeInvalidOrExpired
	}

	return view, nil
}
