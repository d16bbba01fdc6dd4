package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// receiptTemplate is a fixed-layout printable fee receipt. All money fields
// arrive pre-formatted; the template holds no logic beyond the optional rows.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Fee Receipt #{{.ReceiptNo}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; }
.receipt { max-width: 480px; margin: 0 auto; border: 1px solid #333; padding: 24px; }
.header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 12px; margin-bottom: 16px; }
.row { display: flex; justify-content: space-between; padding: 4px 0; }
.label { color: #555; }
.amount { font-size: 1.3em; font-weight: bold; text-align: center; margin: 16px 0; }
.footer { text-align: center; margin-top: 24px; font-size: 0.85em; color: #777; }
</style>
</head>
<body>
<div class="receipt">
  <div class="header">
    <h2>GSN School</h2>
    <div>Fee Receipt</div>
  </div>
  <div class="row"><span class="label">Receipt No.</span><span>{{.ReceiptNo}}</span></div>
  <div class="row"><span class="label">Date</span><span>{{.Date}}</span></div>
  <div class="row"><span class="label">Admission No.</span><span>{{.AdmNo}}</span></div>
  <div class="row"><span class="label">Student</span><span>{{.StudentName}}</span></div>
  <div class="row"><span class="label">Class</span><span>{{.Class}} - {{.Section}}</span></div>
  {{if .Month}}<div class="row"><span class="label">For Month</span><span>{{.Month}}</span></div>{{end}}
  <div class="row"><span class="label">Mode</span><span>{{.Mode}}</span></div>
  {{if .Notes}}<div class="row"><span class="label">Notes</span><span>{{.Notes}}</span></div>{{end}}
  <div class="amount">Amount Received: {{.Amount}}</div>
  <div class="footer">This is a computer generated receipt.</div>
</div>
</body>
</html>
`))

// PaymentHandler handles payment listings and receipts.
type PaymentHandler struct {
	feeService portssvc.FeeSvcFacade
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(feeService portssvc.FeeSvcFacade) *PaymentHandler {
	return &PaymentHandler{feeService: feeService}
}

// ListPayments godoc
// @Summary List recorded payments
// @Description Payments newest first, optionally filtered to one student
// @Tags payments
// @Produce json
// @Param student_id query string false "Filter by student ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.feeService.ListPayments(c.Request.Context(), params.StudentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// GetReceipt godoc
// @Summary Printable fee receipt
// @Description Renders the receipt for one payment as HTML
// @Tags payments
// @Produce html
// @Param id path int true "Payment ID (receipt number)"
// @Success 200 {string} string "HTML receipt"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /receipt/{id} [get]
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt number must be an integer"})
		return
	}

	receipt, err := h.feeService.GetReceipt(c.Request.Context(), paymentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := receiptTemplate.Execute(c.Writer, receipt); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render receipt", "error", err)
	}
}
