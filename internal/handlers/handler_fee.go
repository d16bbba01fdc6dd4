package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// FeeHandler handles fee ledger requests.
type FeeHandler struct {
	feeService portssvc.FeeSvcFacade
}

// NewFeeHandler creates a new fee handler.
func NewFeeHandler(feeService portssvc.FeeSvcFacade) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// ListFees godoc
// @Summary Receivables overview
// @Description One row per student with balance and last paid month, ordered by class, section and admission number
// @Tags fees
// @Produce json
// @Success 200 {array} dto.FeeOverviewResponse
// @Security BearerAuth
// @Router /fees [get]
func (h *FeeHandler) ListFees(c *gin.Context) {
	rows, err := h.feeService.ListAccounts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeOverviewResponse(rows))
}

// GetFeeAccount godoc
// @Summary Fee account for one student
// @Description Returns the student's fee account, creating a zero-balance one when none exists
// @Tags fees
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} dto.FeeAccountResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /fees/{studentID} [get]
func (h *FeeHandler) GetFeeAccount(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	account, created, err := h.feeService.GetOrCreateAccount(c.Request.Context(), c.Param("studentID"), actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeAccountResponse(account, created))
}

// RecordPayment godoc
// @Summary Record a fee payment
// @Description Atomically appends a payment and decrements the student's balance
// @Tags fees
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment data"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Non-positive amount or bad month"
// @Failure 403 {object} map[string]string "Role cannot record payments"
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /fees [post]
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	res, err := h.feeService.RecordPayment(c.Request.Context(), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
