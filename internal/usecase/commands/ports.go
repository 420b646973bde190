package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

// LoanSnapshot is what issuance and verification need to know about a loan.
// Counterparty fields are the recorder-asserted originals.
type LoanSnapshot struct {
	ID                uuid.UUID
	RecorderID        uuid.UUID
	RecorderName      string
	WorkspaceID       *uuid.UUID
	Direction         string
	AmountPaise       int64
	CounterpartyName  string
	CounterpartyPhone string
	LoanDate          time.Time
	Verified          bool
}

type CodeRecord struct {
	Code      string
	LoanID    uuid.UUID
	State     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ConfirmationSnapshot is the display payload the counterparty sees after a
// successful handshake.
type ConfirmationSnapshot struct {
	LoanID       uuid.UUID
	Direction    string
	AmountPaise  int64
	LoanDate     time.Time
	RecorderName string
	ConfirmedAt  time.Time
}

const (
	CodeStateUnused   = "unused"
	CodeStateConsumed = "consumed"
)
