package response

import (
	"time"

	"udhaarbook/internal/usecase/commands"
)

type VerifySuccessResponse struct {
	Success       bool      `json:"success"`
	LoanType      string    `json:"loanType"`
	AmountPaise   int64     `json:"amountPaise"`
	AmountDisplay string    `json:"amountDisplay"`
	LoanDate      string    `json:"loanDate"`
	RecorderName  string    `json:"recorderName"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

type VerifyFailureResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message"`
}

func FromVerifyResult(result *commands.VerifyResult) *VerifySuccessResponse {
	return &VerifySuccessResponse{
		Success:       true,
		LoanType:      result.LoanType,
		AmountPaise:   result.AmountPaise,
		AmountDisplay: result.AmountDisplay,
		LoanDate:      result.LoanDate.Format("2006-01-02"),
		RecorderName:  result.RecorderName,
		ConfirmedAt:   result.ConfirmedAt,
	}
}

func VerifyFailure(message string) *VerifyFailureResponse {
	return &VerifyFailureResponse{
		Success:      false,
		ErrorMessage: message,
	}
}
