//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"udhaarbook/internal/handler/api"
	resdto "udhaarbook/internal/handler/dto/response"
	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"
	"udhaarbook/tests/common/httptest"
	commandsmock "udhaarbook/tests/mock/commands"
	queriesmock "udhaarbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VerifyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHandshakeCommands
	mockQueries  *queriesmock.MockHandshakeQueries
	handler      *api.VerifyHandler
}

func (s *VerifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHandshakeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHandshakeQueries(s.mockCtrl)
	s.handler = api.NewVerifyHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/v/:code", s.handler.PreviewCode)
	s.router.POST("/api/verify", s.handler.Verify)
}

func (s *VerifyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerifyHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerifyHandlerTestSuite))
}

func (s *VerifyHandlerTestSuite) TestPreviewCode() {
	const code = "482913"

	s.Run("success: shows loan summary without counterparty identity", func() {
		view := &queries.CodePreviewView{
			Code:          code,
			LoanType:      "given",
			AmountPaise:   500000,
			AmountDisplay: "₹5000",
			LoanDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			RecorderName:  "Priya Sharma",
			ExpiresAt:     time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetCodePreview(gomock.Any(), code).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v/"+code, nil, "")

		var response resdto.CodePreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Priya Sharma", response.RecorderName)
		s.Equal("₹5000", response.AmountDisplay)
		s.Equal("2026-08-01", response.LoanDate)
	})

	s.Run("error: invalid and expired share a 404 message", func() {
		s.mockQueries.EXPECT().GetCodePreview(gomock.Any(), code).
			Return(nil, queries.ErrCodeInvalidOrExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v/"+code, nil, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusNotFound, "invalid or has expired")
	})

	s.Run("error: consumed code reports already verified", func() {
		s.mockQueries.EXPECT().GetCodePreview(gomock.Any(), code).
			Return(nil, queries.ErrCodeAlreadyConsumed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v/"+code, nil, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusConflict, "already been verified")
	})
}

func (s *VerifyHandlerTestSuite) TestVerify() {
	url := "/api/verify"
	reqBody := map[string]any{
		"code":  "482913",
		"name":  "Ravi Kumar",
		"phone": "9876543210",
	}

	s.Run("success: returns the confirmed loan summary", func() {
		confirmedAt := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Verify(gomock.Any(), "482913", "Ravi Kumar", "9876543210").
			Return(&commands.VerifyResult{
				LoanType:      "given",
				AmountPaise:   500000,
				AmountDisplay: "₹5000",
				LoanDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				RecorderName:  "Priya Sharma",
				ConfirmedAt:   confirmedAt,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.VerifySuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("given", response.LoanType)
		s.Equal("₹5000", response.AmountDisplay)
		s.Equal("Priya Sharma", response.RecorderName)
	})

	s.Run("error: 400 when code or name missing", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing code", body: map[string]any{"name": "Ravi Kumar"}},
			{name: "missing name", body: map[string]any{"code": "482913"}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertVerifyFailure(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps verification failures to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid or expired code",
				commandsError:  commands.ErrCodeInvalidOrExpired,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "invalid or has expired",
			},
			{
				name:           "already verified",
				commandsError:  commands.ErrAlreadyVerified,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already been verified",
			},
			{
				name:           "name mismatch invites a retry",
				commandsError:  commands.ErrNameMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "try again",
			},
			{
				name:           "phone mismatch invites a retry",
				commandsError:  commands.ErrPhoneMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "try again",
			},
			{
				name:           "store failure",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "try again in a moment",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Verify(gomock.Any(), "482913", "Ravi Kumar", "9876543210").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertVerifyFailure(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
