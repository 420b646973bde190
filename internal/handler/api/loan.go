package api

import (
	"errors"
	"net/http"

	reqdto "udhaarbook/internal/handler/dto/request"
	resdto "udhaarbook/internal/handler/dto/response"
	"udhaarbook/internal/handler/middleware"
	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoanHandler struct {
	loanCommands commands.LoanCommands
	loanQueries  queries.LoanQueries
}

func NewLoanHandler(loanCommands commands.LoanCommands, loanQueries queries.LoanQueries) *LoanHandler {
	return &LoanHandler{
		loanCommands: loanCommands,
		loanQueries:  loanQueries,
	}
}

// @Summary Create loan
// @Description Record a loan given to or taken from a counterparty
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLoanRequest true "Loan request"
// @Success 201 {object} resdto.LoanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateLoanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateLoanParams{
		RecorderID:        userID,
		WorkspaceID:       req.WorkspaceID,
		Direction:         req.Direction,
		AmountPaise:       req.AmountPaise,
		CounterpartyName:  req.CounterpartyName,
		CounterpartyPhone: req.GetCounterpartyPhone(),
		LoanDate:          req.ParsedLoanDate(),
		Note:              req.Note,
	}

	loanID, err := h.loanCommands.CreateLoan(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoanValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Loan validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.loanQueries.GetByID(c.Request.Context(), loanID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLoanView(view))
}

// @Summary Get loan
// @Description Get loan by ID
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loans/{id} [get]
func (h *LoanHandler) GetLoan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid loan ID format",
		})
		return
	}

	view, err := h.loanQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLoanNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Loan not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}
