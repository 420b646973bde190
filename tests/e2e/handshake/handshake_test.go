//go:build e2e

package handshake_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "udhaarbook/internal/handler/dto/response"
	"udhaarbook/tests/common/dbtest"
	"udhaarbook/tests/common/httptest"
	"udhaarbook/tests/e2e"
	"udhaarbook/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandshakeE2ETestSuite struct {
	e2e.SharedSuite
}

func TestHandshakeE2ESuite(t *testing.T) {
	suite.Run(t, new(HandshakeE2ETestSuite))
}

func (s *HandshakeE2ETestSuite) seedRecorder(ctx context.Context, name string) (uuid.UUID, string) {
	userID, err := dbtest.InsertUser(ctx, s.DB, name, "9811111111")
	require.NoError(s.T(), err)
	token := helper.MintAccessToken(s.T(), s.Config.JWT.Secret, userID)
	return userID, token
}

func (s *HandshakeE2ETestSuite) issueCode(token string, loanID uuid.UUID) resdto.IssueCodeResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/loans/"+loanID.String()+"/handshake", nil, token)

	var issued resdto.IssueCodeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &issued)
	return issued
}

func (s *HandshakeE2ETestSuite) TestHandshakeLifecycle() {
	s.Run("full lifecycle: record, issue, preview, verify, re-verify", func() {
		ctx := context.Background()
		_, token := s.seedRecorder(ctx, "Priya Sharma")

		// Record a loan through the API.
		createBody := map[string]any{
			"direction":         "given",
			"amountPaise":       500000,
			"counterpartyName":  "Ravi Kumar",
			"counterpartyPhone": "9876543210",
			"loanDate":          "2026-08-01",
			"note":              "seed money",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/loans", createBody, token)
		var created resdto.LoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.False(created.Verified)

		issued := s.issueCode(token, created.ID)
		s.Len(issued.Code, 6)
		s.Contains(issued.ShareMessage, issued.Code)

		// The counterparty opens the link and sees the loan summary.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/v/"+issued.Code, nil, "")
		var preview resdto.CodePreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &preview)
		s.Equal("Priya Sharma", preview.RecorderName)
		s.Equal("₹5000", preview.AmountDisplay)

		// Casing and phone formatting differences must not block a real match.
		verifyBody := map[string]any{
			"code":  issued.Code,
			"name":  "ravi kumar",
			"phone": "98765 43210",
		}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", verifyBody, "")
		var verified resdto.VerifySuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verified)
		s.True(verified.Success)
		s.Equal("given", verified.LoanType)
		s.Equal("Priya Sharma", verified.RecorderName)

		// The loan is now stamped verified for the recorder.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/loans/"+created.ID.String(), nil, token)
		var after resdto.LoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &after)
		s.True(after.Verified)

		state, err := dbtest.CodeState(ctx, s.DB, issued.Code)
		require.NoError(s.T(), err)
		s.Equal("consumed", state)

		// A second attempt is told the handshake already happened.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", verifyBody, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusConflict, "already been verified")

		// Re-issuing for a verified loan is refused.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/loans/"+created.ID.String()+"/handshake", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already verified")
	})

	s.Run("supersession: re-issuing kills the previous code", func() {
		ctx := context.Background()
		recorderID, token := s.seedRecorder(ctx, "Priya Sharma")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:       recorderID,
			Direction:        "taken",
			AmountPaise:      120000,
			CounterpartyName: "Ravi Kumar",
			LoanDate:         time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		first := s.issueCode(token, loanID)
		second := s.issueCode(token, loanID)
		s.NotEqual(first.Code, second.Code)

		unused, err := dbtest.UnusedCodeCount(ctx, s.DB, loanID)
		require.NoError(s.T(), err)
		s.Equal(1, unused, "at most one unused code per loan")

		// The superseded code is gone, indistinguishable from never existing.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": first.Code, "name": "Ravi Kumar",
		}, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusNotFound, "invalid or has expired")

		// The fresh one still works.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": second.Code, "name": "Ravi Kumar",
		}, "")
		var verified resdto.VerifySuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verified)
		s.Equal("taken", verified.LoanType)
	})

	s.Run("identity mismatch leaves the code usable", func() {
		ctx := context.Background()
		recorderID, token := s.seedRecorder(ctx, "Priya Sharma")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:        recorderID,
			Direction:         "given",
			AmountPaise:       75000,
			CounterpartyName:  "Ravi Kumar",
			CounterpartyPhone: "9876543210",
			LoanDate:          time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		issued := s.issueCode(token, loanID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": issued.Code, "name": "Ravi Kummar", "phone": "9876543210",
		}, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusUnprocessableEntity, "name")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": issued.Code, "name": "Ravi Kumar", "phone": "9999999999",
		}, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusUnprocessableEntity, "phone")

		state, err := dbtest.CodeState(ctx, s.DB, issued.Code)
		require.NoError(s.T(), err)
		s.Equal("unused", state, "mismatches must not consume the code")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": issued.Code, "name": "Ravi Kumar", "phone": "9876543210",
		}, "")
		var verified resdto.VerifySuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verified)
		s.True(verified.Success)
	})

	s.Run("loan without phone verifies on name alone", func() {
		ctx := context.Background()
		recorderID, token := s.seedRecorder(ctx, "Priya Sharma")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:       recorderID,
			Direction:        "given",
			AmountPaise:      30050,
			CounterpartyName: "Sunita Devi",
			LoanDate:         time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		issued := s.issueCode(token, loanID)

		// An asserted phone is ignored when the loan recorded none.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
			"code": issued.Code, "name": "  sunita devi ", "phone": "0000000000",
		}, "")
		var verified resdto.VerifySuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verified)
		s.Equal("₹300.50", verified.AmountDisplay)
	})

	s.Run("only the recorder can issue a code", func() {
		ctx := context.Background()
		recorderID, _ := s.seedRecorder(ctx, "Priya Sharma")
		_, strangerToken := s.seedRecorder(ctx, "Someone Else")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:       recorderID,
			Direction:        "given",
			AmountPaise:      10000,
			CounterpartyName: "Ravi Kumar",
			LoanDate:         time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/loans/"+loanID.String()+"/handshake", nil, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "your own loans")
	})
}

// TestStaleCodeOnConfirmedLoan covers the window where a re-issue lands just
// before a concurrent confirmation commits: the loan ends up verified while a
// fresh unused code survives. That code must report already-verified on every
// attempt, never an internal failure.
func (s *HandshakeE2ETestSuite) TestStaleCodeOnConfirmedLoan() {
	s.Run("leftover unused code on a confirmed loan reports already verified", func() {
		ctx := context.Background()
		recorderID, _ := s.seedRecorder(ctx, "Priya Sharma")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:        recorderID,
			Direction:         "given",
			AmountPaise:       500000,
			CounterpartyName:  "Ravi Kumar",
			CounterpartyPhone: "9876543210",
			LoanDate:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		confirmedAt := time.Now().UTC()
		require.NoError(s.T(), dbtest.InsertConfirmation(ctx, s.DB, loanID,
			"111111", "Ravi Kumar", "9876543210", confirmedAt))
		require.NoError(s.T(), dbtest.MarkLoanVerified(ctx, s.DB, loanID, confirmedAt))
		require.NoError(s.T(), dbtest.InsertUnusedCode(ctx, s.DB, loanID,
			"222222", confirmedAt, confirmedAt.Add(168*time.Hour)))

		verifyBody := map[string]any{
			"code": "222222", "name": "Ravi Kumar", "phone": "9876543210",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", verifyBody, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusConflict, "already been verified")

		// Retries stay on the same answer, and the single confirmation stands.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", verifyBody, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusConflict, "already been verified")

		confirmations, err := dbtest.CountConfirmations(ctx, s.DB, loanID)
		require.NoError(s.T(), err)
		s.Equal(1, confirmations)
	})
}

// TestConcurrentVerification hammers one code from many goroutines: exactly
// one must win, everyone else must see "already verified", and exactly one
// confirmation row may exist.
func (s *HandshakeE2ETestSuite) TestConcurrentVerification() {
	s.Run("N concurrent verifies produce exactly one confirmation", func() {
		ctx := context.Background()
		recorderID, token := s.seedRecorder(ctx, "Priya Sharma")
		loanID, err := dbtest.InsertLoan(ctx, s.DB, dbtest.LoanFixture{
			RecorderID:        recorderID,
			Direction:         "given",
			AmountPaise:       500000,
			CounterpartyName:  "Ravi Kumar",
			CounterpartyPhone: "9876543210",
			LoanDate:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(s.T(), err)

		issued := s.issueCode(token, loanID)

		const attempts = 20
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		wg.Add(attempts)
		for i := range attempts {
			go func(i int) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/verify", map[string]any{
					"code": issued.Code, "name": "Ravi Kumar", "phone": "9876543210",
				}, "")
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		successes, conflicts := 0, 0
		for _, status := range codes {
			switch status {
			case http.StatusOK:
				successes++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, successes, "exactly one attempt may win")
		s.Equal(attempts-1, conflicts, "all losers must see already-verified")

		confirmations, err := dbtest.CountConfirmations(ctx, s.DB, loanID)
		require.NoError(s.T(), err)
		s.Equal(1, confirmations)
	})
}
