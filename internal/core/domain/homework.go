package domain

import "time"

// Homework is an assignment posted for a class/section.
type Homework struct {
	HomeworkID   string    `json:"homeworkID"` // Primary Key (UUID)
	Class        string    `json:"class"`
	Section      string    `json:"section"`
	Subject      string    `json:"subject"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      string    `json:"dueDate"` // "YYYY-MM-DD", optional
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
