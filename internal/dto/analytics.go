package dto

import "github.com/noah-isme/uni-portal-api/internal/models"

// GpaTrendPoint is the population-weighted average SGPA for one semester.
type GpaTrendPoint struct {
	Semester string  `json:"semester"`
	AvgSgpa  float64 `json:"avg_sgpa"`
}

// GradeCount is one slice of the grade distribution.
type GradeCount struct {
	Letter models.GradeLetter `json:"letter"`
	Count  int                `json:"count"`
}

// AttendanceCount is one slice of the attendance summary.
type AttendanceCount struct {
	Status models.AttendanceStatus `json:"status"`
	Count  int                     `json:"count"`
}

// AnalyticsResponse bundles the portfolio-wide aggregates for the analytics
// page. GpaTrend is chronologically ascending; semesters where no student
// earned credits are omitted.
type AnalyticsResponse struct {
	GpaTrend          []GpaTrendPoint   `json:"gpa_trend"`
	GradeDistribution []GradeCount      `json:"grade_distribution"`
	AttendanceSummary []AttendanceCount `json:"attendance_summary"`
}
