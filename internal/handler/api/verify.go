package api

import (
	"errors"
	"net/http"

	reqdto "udhaarbook/internal/handler/dto/request"
	resdto "udhaarbook/internal/handler/dto/response"
	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Counterparty-facing copy. Invalid and expired share one message on purpose;
// already-verified gets its own because it is a success from the
// counterparty's point of view, not a dead end.
const (
	msgInvalidOrExpired = "This code is invalid or has expired. Ask the person who recorded the loan to share a fresh code."
	msgAlreadyVerified  = "This loan has already been verified. Nothing more to do."
	msgNameMismatch     = "The name you entered does not match this loan. Check the spelling and try again."
	msgPhoneMismatch    = "The phone number you entered does not match this loan. Check it and try again."
	msgUnavailable      = "Something went wrong on our side. Please try again in a moment."
)

type VerifyHandler struct {
	handshakeCommands commands.HandshakeCommands
	handshakeQueries  queries.HandshakeQueries
}

func NewVerifyHandler(handshakeCommands commands.HandshakeCommands, handshakeQueries queries.HandshakeQueries) *VerifyHandler {
	return &VerifyHandler{
		handshakeCommands: handshakeCommands,
		handshakeQueries:  handshakeQueries,
	}
}

// @Summary Preview verification code
// @Description Public preview of the loan behind a handshake code
// @Tags verify
// @Produce json
// @Param code path string true "Verification code"
// @Success 200 {object} resdto.CodePreviewResponse
// @Failure 404 {object} resdto.VerifyFailureResponse
// @Failure 409 {object} resdto.VerifyFailureResponse
// @Router /v/{code} [get]
func (h *VerifyHandler) PreviewCode(c *gin.Context) {
	view, err := h.handshakeQueries.GetCodePreview(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCodeInvalidOrExpired):
			c.JSON(http.StatusNotFound, resdto.VerifyFailure(msgInvalidOrExpired))
		case errors.Is(err, queries.ErrCodeAlreadyConsumed):
			c.JSON(http.StatusConflict, resdto.VerifyFailure(msgAlreadyVerified))
		default:
			c.JSON(http.StatusServiceUnavailable, resdto.VerifyFailure(msgUnavailable))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodePreviewView(view))
}

// @Summary Verify loan
// @Description Confirm a loan by asserting the counterparty identity against a code
// @Tags verify
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequest true "Verification request"
// @Success 200 {object} resdto.VerifySuccessResponse
// @Failure 400 {object} resdto.VerifyFailureResponse
// @Failure 404 {object} resdto.VerifyFailureResponse
// @Failure 409 {object} resdto.VerifyFailureResponse
// @Failure 422 {object} resdto.VerifyFailureResponse
// @Failure 429 {object} resdto.VerifyFailureResponse
// @Router /verify [post]
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, resdto.VerifyFailure("Enter the code and your name to verify."))
		return
	}

	result, err := h.handshakeCommands.Verify(c.Request.Context(), req.GetCode(), req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeInvalidOrExpired):
			c.JSON(http.StatusNotFound, resdto.VerifyFailure(msgInvalidOrExpired))
		case errors.Is(err, commands.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, resdto.VerifyFailure(msgAlreadyVerified))
		case errors.Is(err, commands.ErrNameMismatch):
			c.JSON(http.StatusUnprocessableEntity, resdto.VerifyFailure(msgNameMismatch))
		case errors.Is(err, commands.ErrPhoneMismatch):
			c.JSON(http.StatusUnprocessableEntity, resdto.VerifyFailure(msgPhoneMismatch))
		default:
			c.JSON(http.StatusServiceUnavailable, resdto.VerifyFailure(msgUnavailable))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}
