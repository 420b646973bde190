package readstore

import (
	"context"
	"errors"

	"udhaarbook/internal/infra"
	"udhaarbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoanReadStore struct {
	db *pgxpool.Pool
}

func NewLoanReadStore(db *pgxpool.Pool) *LoanReadStore {
	return &LoanReadStore{db: db}
}

func (r *LoanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoanView, error) {
	query := `
        SELECT l.id, l.recorder_id, u.display_name, l.workspace_id, l.direction,
               l.amount_paise, l.counterparty_name, COALESCE(l.counterparty_phone, ''),
               l.loan_date, l.note, l.verified_at, l.created_at
        FROM loans l
        JOIN users u ON u.id = l.recorder_id
        WHERE l.id = $1
    `
	var view queries.LoanView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.RecorderID,
		&view.RecorderName,
		&view.WorkspaceID,
		&view.Direction,
		&view.AmountPaise,
		&view.CounterpartyName,
		&view.CounterpartyPhone,
		&view.LoanDate,
		&view.Note,
		&view.VerifiedAt,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan", err)
	}
	return &view, nil
}

func (r *LoanReadStore) IsAccessibleBy(ctx context.Context, loanID, userID uuid.UUID) (bool, error) {
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
