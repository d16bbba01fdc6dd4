package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// StudentHandler handles student record requests.
type StudentHandler struct {
	studentService portssvc.StudentSvcFacade
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService portssvc.StudentSvcFacade) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudent godoc
// @Summary Enroll a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Admission number already exists"
// @Security BearerAuth
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	student, err := h.studentService.CreateStudent(c.Request.Context(), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// GetStudent godoc
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{studentID} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentService.GetStudentByID(c.Request.Context(), c.Param("studentID"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// ListStudents godoc
// @Summary List all students
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentResponse
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListStudentResponse(students))
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "Student ID"
// @Param student body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{studentID} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("studentID"), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{studentID} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("studentID"), actor); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NextAdmissionNumber godoc
// @Summary Next free admission number for the current year
// @Tags students
// @Produce json
// @Success 200 {object} dto.NextAdmNoResponse
// @Security BearerAuth
// @Router /students/next-adm-no [get]
func (h *StudentHandler) NextAdmissionNumber(c *gin.Context) {
	admNo, err := h.studentService.NextAdmissionNumber(c.Request.Context(), time.Now().Year())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NextAdmNoResponse{AdmNo: admNo})
}

// ImportStudents godoc
// @Summary Bulk import students
// @Description Upserts rows keyed by admission number; invalid rows are skipped
// @Tags students
// @Accept json
// @Produce json
// @Param rows body []dto.StudentImportRow true "Rows to import"
// @Success 200 {object} dto.ImportStudentsResponse
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /import/students [post]
func (h *StudentHandler) ImportStudents(c *gin.Context) {
	var rows []dto.StudentImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	result, err := h.studentService.ImportStudents(c.Request.Context(), rows, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
