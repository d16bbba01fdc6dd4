package dto

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// AttendanceQueryParams selects the roster to display.
type AttendanceQueryParams struct {
	Date    string `form:"date" binding:"required"`
	Class   string `form:"class" binding:"required"`
	Section string `form:"section" binding:"required"`
}

// AttendanceRecordInput is one student's mark within a bulk save.
type AttendanceRecordInput struct {
	StudentID string `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=Present Absent Leave"`
	Remark    string `json:"remark"`
}

// SaveAttendanceRequest is a bulk attendance save for one date.
type SaveAttendanceRequest struct {
	Date    string                  `json:"date" binding:"required"`
	Records []AttendanceRecordInput `json:"records" binding:"required"`
}

// AttendanceRecordResponse mirrors a stored attendance record.
type AttendanceRecordResponse struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

// StudentAttendanceResponse pairs a student with their record for the date,
// null when nothing is marked yet.
type StudentAttendanceResponse struct {
	Student    StudentResponse           `json:"student"`
	Attendance *AttendanceRecordResponse `json:"attendance"`
}

// ToStudentAttendanceResponses converts the domain roster projection to DTOs.
func ToStudentAttendanceResponses(rows []domain.StudentAttendance) []StudentAttendanceResponse {
	res := make([]StudentAttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = StudentAttendanceResponse{Student: ToStudentResponse(&row.Student)}
		if row.Attendance != nil {
			res[i].Attendance = &AttendanceRecordResponse{
				StudentID: row.Attendance.StudentID,
				Date:      row.Attendance.Date,
				Status:    string(row.Attendance.Status),
				Remark:    row.Attendance.Remark,
			}
		}
	}
	return res
}
