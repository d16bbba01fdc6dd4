package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// ReportingHandler handles dashboard requests.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new reporting handler.
func NewReportingHandler(reportingService portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Headline counts and total outstanding fees
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportingHandler) GetDashboard(c *gin.Context) {
	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
