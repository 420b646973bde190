package response

import (
	"time"

	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"
)

type IssueCodeResponse struct {
	Code         string    `json:"code"`
	ExpiresAt    time.Time `json:"expiresAt"`
	ShareMessage string    `json:"shareMessage"`
}

func FromIssueResult(result *commands.IssueResult) *IssueCodeResponse {
	return &IssueCodeResponse{
		Code:         result.Code,
		ExpiresAt:    result.ExpiresAt,
		ShareMessage: result.ShareMessage,
	}
}

// CodePreviewResponse backs the public verification form. It omits the
// counterparty identity so the form never leaks who is expected to confirm.
type CodePreviewResponse struct {
	Code          string    `json:"code"`
	LoanType      string    `json:"loanType"`
	AmountPaise   int64     `json:"amountPaise"`
	AmountDisplay string    `json:"amountDisplay"`
	LoanDate      string    `json:"loanDate"`
	RecorderName  string    `json:"recorderName"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func FromCodePreviewView(view *queries.CodePreviewView) *CodePreviewResponse {
	return &CodePreviewResponse{
		Code:          view.Code,
		LoanType:      view.LoanType,
		AmountPaise:   view.AmountPaise,
		AmountDisplay: view.AmountDisplay,
		LoanDate:      view.LoanDate.Format("2006-01-02"),
		RecorderName:  view.RecorderName,
		ExpiresAt:     view.ExpiresAt,
	}
}
