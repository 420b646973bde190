package api

import (
	"errors"
	"net/http"

	resdto "udhaarbook/internal/handler/dto/response"
	"udhaarbook/internal/handler/middleware"
	"udhaarbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandshakeHandler struct {
	handshakeCommands commands.HandshakeCommands
}

func NewHandshakeHandler(handshakeCommands commands.HandshakeCommands) *HandshakeHandler {
	return &HandshakeHandler{
		handshakeCommands: handshakeCommands,
	}
}

// @Summary Issue verification code
// @Description Issue a fresh handshake code for a loan, superseding any unused one
// @Tags handshake
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 201 {object} resdto.IssueCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /loans/{id}/handshake [post]
func (h *HandshakeHandler) IssueCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid loan ID format",
		})
		return
	}

	result, err := h.handshakeCommands.IssueCode(c.Request.Context(), loanID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoanNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Loan not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only issue codes for your own loans",
			})
		case errors.Is(err, commands.ErrLoanAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Loan is already verified",
			})
		case errors.Is(err, commands.ErrCodeIssueFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Could not issue a code right now, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssueResult(result))
}
