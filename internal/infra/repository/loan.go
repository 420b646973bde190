package repository

import (
	"context"
	"errors"

	"udhaarbook/internal/domain/loan"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoanRepository struct {
	db *pgxpool.Pool
}

func NewLoanRepository(db *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error) {
	query := `
        INSERT INTO loans (id, recorder_id, workspace_id, direction, amount_paise,
                           counterparty_name, counterparty_phone, loan_date, note)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
        RETURNING id
    `
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		l.ID(),
		l.RecorderID(),
		l.WorkspaceID(),
		l.Direction().String(),
		l.Amount().Paise(),
		l.CounterpartyName().String(),
		l.CounterpartyPhone(),
		l.LoanDate(),
		l.Note().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create loan", err)
	}
	return id, nil
}

func (r *LoanRepository) FindSnapshot(ctx context.Context, loanID uuid.UUID) (*commands.LoanSnapshot, error) {
	query := `
        SELECT l.id, l.recorder_id, u.display_name, l.workspace_id, l.direction,
               l.amount_paise, l.counterparty_name, COALESCE(l.counterparty_phone, ''),
               l.loan_date, l.verified_at IS NOT NULL
        FROM loans l
        JOIN users u ON u.id = l.recorder_id
        WHERE l.id = $1
    `
	var snap commands.LoanSnapshot
	err := r.db.QueryRow(ctx, query, loanID).Scan(
		&snap.ID,
		&snap.RecorderID,
		&snap.RecorderName,
		&snap.WorkspaceID,
		&snap.Direction,
		&snap.AmountPaise,
		&snap.CounterpartyName,
		&snap.CounterpartyPhone,
		&snap.LoanDate,
		&snap.Verified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan", err)
	}
	return &snap, nil
}

// IsAccessibleBy covers direct ownership and shared-workspace membership.
func (r *LoanRepository) IsAccessibleBy(ctx context.Context, loanID, userID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM loans l
            WHERE l.id = $1
              AND (l.recorder_id = $2
                   OR EXISTS (
                       SELECT 1 FROM workspace_members m
                       WHERE m.workspace_id = l.workspace_id AND m.user_id = $2
                   ))
        )
    `
	var accessible bool
	if err := r.db.QueryRow(ctx, query, loanID, userID).Scan(&accessible); err != nil {
		return false, infra.WrapRepoErr("failed to check loan access", err)
	}
	return accessible, nil
}
