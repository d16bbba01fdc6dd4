package dto

import (
	"time"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// CreateHomeworkRequest defines the data needed to post homework.
type CreateHomeworkRequest struct {
	Class        string `json:"class" binding:"required"`
	Section      string `json:"section" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Instructions string `json:"instructions"`
	DueDate      string `json:"dueDate"`
}

// HomeworkResponse defines the data returned for a homework entry.
type HomeworkResponse struct {
	HomeworkID   string    `json:"homeworkID"`
	Class        string    `json:"class"`
	Section      string    `json:"section"`
	Subject      string    `json:"subject"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      string    `json:"dueDate"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToHomeworkResponse converts a domain.Homework to a response DTO.
func ToHomeworkResponse(h *domain.Homework) HomeworkResponse {
	return HomeworkResponse{
		HomeworkID:   h.HomeworkID,
		Class:        h.Class,
		Section:      h.Section,
		Subject:      h.Subject,
		Title:        h.Title,
		Instructions: h.Instructions,
		DueDate:      h.DueDate,
		CreatedBy:    h.CreatedBy,
		CreatedAt:    h.CreatedAt,
	}
}

// ToListHomeworkResponse converts a slice of domain.Homework to response DTOs.
func ToListHomeworkResponse(hws []domain.Homework) []HomeworkResponse {
	res := make([]HomeworkResponse, len(hws))
	for i := range hws {
		res[i] = ToHomeworkResponse(&hws[i])
	}
	return res
}
