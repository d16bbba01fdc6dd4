package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// HomeworkHandler handles homework requests.
type HomeworkHandler struct {
	homeworkService portssvc.HomeworkSvcFacade
}

// NewHomeworkHandler creates a new homework handler.
func NewHomeworkHandler(homeworkService portssvc.HomeworkSvcFacade) *HomeworkHandler {
	return &HomeworkHandler{homeworkService: homeworkService}
}

// CreateHomework godoc
// @Summary Post homework for a class/section
// @Tags homework
// @Accept json
// @Produce json
// @Param homework body dto.CreateHomeworkRequest true "Homework data"
// @Success 201 {object} dto.HomeworkResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /homework [post]
func (h *HomeworkHandler) CreateHomework(c *gin.Context) {
	var req dto.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actor, _ := middleware.GetActorFromContext(c)
	hw, err := h.homeworkService.CreateHomework(c.Request.Context(), req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToHomeworkResponse(hw))
}

// ListHomework godoc
// @Summary List recent homework
// @Tags homework
// @Produce json
// @Success 200 {array} dto.HomeworkResponse
// @Security BearerAuth
// @Router /homework [get]
func (h *HomeworkHandler) ListHomework(c *gin.Context) {
	entries, err := h.homeworkService.ListHomework(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListHomeworkResponse(entries))
}
