package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// StaffHandler handles staff management requests.
type StaffHandler struct {
	staffService portssvc.StaffSvcFacade
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(staffService portssvc.StaffSvcFacade) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// CreateStaff godoc
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff data"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Staff code already exists"
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	staff, err := h.staffService.CreateStaff(c.Request.Context(), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// ListStaff godoc
// @Summary List all staff members
// @Tags staff
// @Produce json
// @Success 200 {array} dto.StaffResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// UpdateStaff godoc
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staffID path string true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/{staffID} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	staff, err := h.staffService.UpdateStaff(c.Request.Context(), c.Param("staffID"), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// DeleteStaff godoc
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Param staffID path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/{staffID} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	if err := h.staffService.DeleteStaff(c.Request.Context(), c.Param("staffID"), actor); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
