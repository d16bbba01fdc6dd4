package domain

// AttendanceStatus is the per-day attendance state of a student.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Leave   AttendanceStatus = "Leave"
)

// Attendance is one student's attendance record for one date.
// (student, date) is the natural key; saving again for the same pair upserts.
type Attendance struct {
	StudentID string           `json:"studentID"`
	Date      string           `json:"date"` // "YYYY-MM-DD"
	Status    AttendanceStatus `json:"status"`
	Remark    string           `json:"remark"`
}

// StudentAttendance pairs a student with their attendance record for a date,
// nil when no record exists yet.
type StudentAttendance struct {
	Student    Student     `json:"student"`
	Attendance *Attendance `json:"attendance"`
}
