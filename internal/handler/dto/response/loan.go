package response

import (
	"log/slog"
	"time"

	"udhaarbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoanResponse struct {
	ID                uuid.UUID  `json:"id"`
	RecorderID        uuid.UUID  `json:"recorderId"`
	RecorderName      string     `json:"recorderName"`
	WorkspaceID       *uuid.UUID `json:"workspaceId,omitempty"`
	Direction         string     `json:"direction"`
	AmountPaise       int64      `json:"amountPaise"`
	CounterpartyName  string     `json:"counterpartyName"`
	CounterpartyPhone string     `json:"counterpartyPhone,omitempty"`
	LoanDate          string     `json:"loanDate"`
	Note              string     `json:"note,omitempty"`
	Verified          bool       `json:"verified"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func FromLoanView(view *queries.LoanView) *LoanResponse {
	resp := &LoanResponse{}
	if err := copier.Copy(resp, view); err != nil {
		slog.Error("failed to copy loan view", "error", err.Error())
	}
	resp.LoanDate = view.LoanDate.Format("2006-01-02")
	resp.Verified = view.VerifiedAt != nil
	return resp
}
