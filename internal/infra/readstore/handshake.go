package readstore

import (
	"context"
	"errors"

	"udhaarbook/internal/domain/loan"
	"udhaarbook/internal/infra"
	"udhaarbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HandshakeReadStore struct {
	db *pgxpool.Pool
}

func NewHandshakeReadStore(db *pgxpool.Pool) *HandshakeReadStore {
	return &HandshakeReadStore{db: db}
}

// FindCodePreview resolves a code to the loan summary the public form shows.
// The raw state comes back alongside so the query layer can decide how much
// of the failure taxonomy to disclose.
func (r *HandshakeReadStore) FindCodePreview(ctx context.Context, code string) (*queries.CodePreviewView, string, error) {
	query := `
        SELECT c.code, c.state, c.expires_at, l.direction, l.amount_paise,
               l.loan_date, u.display_name
        FROM verification_codes c
        JOIN loans l ON l.id = c.loan_id
        JOIN users u ON u.id = l.recorder_id
        WHERE c.code = $1
    `
	var (
		view  queries.CodePreviewView
		state string
	)
	err := r.db.QueryRow(ctx, query, code).Scan(
		&view.Code,
		&state,
		&view.ExpiresAt,
		&view.LoanType,
		&view.AmountPaise,
		&view.LoanDate,
		&view.RecorderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find code preview", err)
	}

	if amount, err := loan.NewAmount(view.AmountPaise); err == nil {
		view.AmountDisplay = amount.Display()
	}

	return &view, state, nil
}
