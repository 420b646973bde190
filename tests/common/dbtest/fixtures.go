//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes all protocol state between subtests. TRUNCATE keeps the
// schema and is far cheaper than re-running migrations.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE handshake_confirmations, verification_codes, loans,
		         workspace_members, workspaces, users CASCADE
	`)
	return err
}

func InsertUser(ctx context.Context, pool *pgxpool.Pool, displayName, phone string) (uuid.UUID, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO users (display_name, phone)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id
	`, displayName, phone).Scan(&id)
	return id, err
}

func InsertWorkspace(ctx context.Context, pool *pgxpool.Pool, name string, memberIDs ...uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO workspaces (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	for _, memberID := range memberIDs {
		if _, err := pool.Exec(ctx, `
			INSERT INTO workspace_members (workspace_id, user_id) VALUES ($1, $2)
		`, id, memberID); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

type LoanFixture struct {
	RecorderID        uuid.UUID
	WorkspaceID       *uuid.UUID
	Direction         string
	AmountPaise       int64
	CounterpartyName  string
	CounterpartyPhone string
	LoanDate          time.Time
	Note              string
}

func InsertLoan(ctx context.Context, pool *pgxpool.Pool, f LoanFixture) (uuid.UUID, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO loans (recorder_id, workspace_id, direction, amount_paise,
		                   counterparty_name, counterparty_phone, loan_date, note)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		RETURNING id
	`, f.RecorderID, f.WorkspaceID, f.Direction, f.AmountPaise,
		f.CounterpartyName, f.CounterpartyPhone, f.LoanDate, f.Note).Scan(&id)
	return id, err
}

func InsertUnusedCode(ctx context.Context, pool *pgxpool.Pool, loanID uuid.UUID, code string, issuedAt, expiresAt time.Time) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO verification_codes (code, loan_id, state, issued_at, expires_at)
		VALUES ($1, $2, 'unused', $3, $4)
	`, code, loanID, issuedAt, expiresAt)
	return err
}

func InsertConfirmation(ctx context.Context, pool *pgxpool.Pool, loanID uuid.UUID, code, name, phone string, confirmedAt time.Time) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO handshake_confirmations (loan_id, code, confirmed_name, confirmed_phone, confirmed_at)
		VALUES ($1, $2, $3, $4, $5)
	`, loanID, code, name, phone, confirmedAt)
	return err
}

func MarkLoanVerified(ctx context.Context, pool *pgxpool.Pool, loanID uuid.UUID, verifiedAt time.Time) error {
	_, err := pool.Exec(ctx, `
		UPDATE loans SET verified_at = $2, updated_at = $2 WHERE id = $1
	`, loanID, verifiedAt)
	return err
}

func CountConfirmations(ctx context.Context, pool *pgxpool.Pool, loanID uuid.UUID) (int, error) {
	var n int
	err := pool.QueryRow(ctx, `
		SELECT count(*) FROM handshake_confirmations WHERE loan_id = $1
	`, loanID).Scan(&n)
	return n, err
}

func CodeState(ctx context.Context, pool *pgxpool.Pool, code string) (string, error) {
	var state string
	err := pool.QueryRow(ctx, `
		SELECT state FROM verification_codes WHERE code = $1
	`, code).Scan(&state)
	return state, err
}

func UnusedCodeCount(ctx context.Context, pool *pgxpool.Pool, loanID uuid.UUID) (int, error) {
	var n int
	err := pool.QueryRow(ctx, `
		SELECT count(*) FROM verification_codes WHERE loan_id = $1 AND state = 'unused'
	`, loanID).Scan(&n)
	return n, err
}
