package models

// AttendanceStatus represents the status for a recorded class day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceExcused AttendanceStatus = "Excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

// Attended reports whether the status counts toward the attendance rate.
func (s AttendanceStatus) Attended() bool {
	return s == AttendancePresent || s == AttendanceLate
}

// AttendanceRecord is one (course, student, date) entry. Dates use
// YYYY-MM-DD; weekends are never recorded, and a missing entry means "no
// record", not "Absent".
type AttendanceRecord struct {
	CourseID    string           `json:"course_id"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
}

// AttendanceSummary aggregates one student's attendance within a course.
type AttendanceSummary struct {
	StudentID        string `json:"student_id"`
	StudentName      string `json:"student_name"`
	AttendedClasses  int    `json:"attended_classes"`
	TotalClassesHeld int    `json:"total_classes_held"`
}
