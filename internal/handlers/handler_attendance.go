package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// AttendanceHandler handles attendance requests.
type AttendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService portssvc.AttendanceSvcFacade) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// GetRoster godoc
// @Summary Attendance roster for a class/section and date
// @Tags attendance
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param class query string true "Class"
// @Param section query string true "Section"
// @Success 200 {array} dto.StudentAttendanceResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) GetRoster(c *gin.Context) {
	var params dto.AttendanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	roster, err := h.attendanceService.GetRoster(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentAttendanceResponses(roster))
}

// SaveAttendance godoc
// @Summary Save attendance marks for a date
// @Description Upserts the submitted records; re-saving a (student, date) pair replaces the mark
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.SaveAttendanceRequest true "Attendance records"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	if err := h.attendanceService.SaveAttendance(c.Request.Context(), req, actor); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
