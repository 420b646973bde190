package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"udhaarbook/internal/infra"
	"udhaarbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CodeRepository struct {
	db *pgxpool.Pool
}

func NewCodeRepository(db *pgxpool.Pool) *CodeRepository {
	return &CodeRepository{db: db}
}

// Supersede deletes the loan's prior unused code (if any) and inserts the new
// one in the same transaction. Once the old row is gone it can never resolve
// again, which is the whole supersession guarantee.
func (r *CodeRepository) Supersede(ctx context.Context, loanID uuid.UUID, code string, issuedAt, expiresAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	_, err = tx.Exec(ctx,
		`DELETE FROM verification_codes WHERE loan_id = $1 AND state = 'unused'`, loanID)
	if err != nil {
		return infra.WrapRepoErr("failed to supersede prior code", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO verification_codes (code, loan_id, state, issued_at, expires_at)
        VALUES ($1, $2, 'unused', $3, $4)
    `, code, loanID, issuedAt, expiresAt)
	if err != nil {
		return wrapPgErr("failed to insert verification code", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit code supersession", err)
	}
	return nil
}

func (r *CodeRepository) Resolve(ctx context.Context, code string) (*commands.CodeRecord, error) {
	query := `
        SELECT code, loan_id, state, issued_at, expires_at
        FROM verification_codes
        WHERE code = $1
    `
	var rec commands.CodeRecord
	err := r.db.QueryRow(ctx, query, code).Scan(
		&rec.Code,
		&rec.LoanID,
		&rec.State,
		&rec.IssuedAt,
		&rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve code", err)
	}
	return &rec, nil
}

// ConsumeAndConfirm is the protocol's one atomic step: conditionally flip the
// code to consumed, record the confirmation and stamp the loan, all or
// nothing. The conditional predicate (state = 'unused' checked and set in the
// same statement) is what makes concurrent verifies at-most-once; a plain
// read-then-write would let both racers through.
func (r *CodeRepository) ConsumeAndConfirm(ctx context.Context, code, assertedName, assertedPhone string, confirmedAt time.Time) (*commands.ConfirmationSnapshot, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	var loanID uuid.UUID
	err = tx.QueryRow(ctx, `
        UPDATE verification_codes
        SET state = 'consumed', consumed_name = $2, consumed_phone = $3, consumed_at = $4
        WHERE code = $1 AND state = 'unused' AND expires_at > $4
        RETURNING loan_id
    `, code, assertedName, assertedPhone, confirmedAt).Scan(&loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyConsumeFailure(ctx, tx, code)
		}
		return nil, infra.WrapRepoErr("failed to consume code", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO handshake_confirmations (loan_id, code, confirmed_name, confirmed_phone, confirmed_at)
        VALUES ($1, $2, $3, $4, $5)
    `, loanID, code, assertedName, assertedPhone, confirmedAt)
	if err != nil {
		// The loan_id unique constraint firing here means the loan was already
		// confirmed through another code, so this attempt lost a conflict, not
		// a duplicate-key programming error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("loan already confirmed", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to create confirmation", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE loans SET verified_at = $2, updated_at = $2 WHERE id = $1`, loanID, confirmedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark loan verified", err)
	}

	var snap commands.ConfirmationSnapshot
	err = tx.QueryRow(ctx, `
        SELECT l.id, l.direction, l.amount_paise, l.loan_date, u.display_name
        FROM loans l
        JOIN users u ON u.id = l.recorder_id
        WHERE l.id = $1
    `, loanID).Scan(&snap.LoanID, &snap.Direction, &snap.AmountPaise, &snap.LoanDate, &snap.RecorderName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read confirmed loan", err)
	}
	snap.ConfirmedAt = confirmedAt

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit confirmation", err)
	}
	return &snap, nil
}

// classifyConsumeFailure distinguishes a lost race (code consumed by a
// concurrent request) from a code that vanished or expired under us.
func (r *CodeRepository) classifyConsumeFailure(ctx context.Context, tx pgx.Tx, code string) error {
	var state string
	err := tx.QueryRow(ctx,
		`SELECT state FROM verification_codes WHERE code = $1`, code).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("code no longer exists", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect code state", err)
	}
	if state == "consumed" {
		return infra.WrapRepoErr("code already consumed", nil, infra.KindConflict)
	}
	// Still unused but not consumable: it expired between resolve and consume.
	return infra.WrapRepoErr("code expired", nil, infra.KindNotFound)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
