package dto

// DashboardKpis is the headline summary shown on the admin dashboard. The
// rate fields are pre-formatted (two decimals for CGPA, one for the rest) to
// keep display rounding out of the presentation layer.
type DashboardKpis struct {
	TotalStudents  int    `json:"total_students"`
	TotalFaculty   int    `json:"total_faculty"`
	TotalCourses   int    `json:"total_courses"`
	AverageCgpa    string `json:"average_cgpa"`
	AttendanceRate string `json:"attendance_rate"`
	StudentsAtRisk int    `json:"students_at_risk"`
	FacultyLoadAvg string `json:"faculty_load_avg"`
}
