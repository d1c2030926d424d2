package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/dto"
	"github.com/noah-isme/uni-portal-api/internal/models"
)

type studentLister interface {
	Students(ctx context.Context) []models.Student
}

type facultyLister interface {
	Faculty(ctx context.Context) []models.Faculty
}

type attendanceLister interface {
	ListAttendance(ctx context.Context) []models.AttendanceRecord
}

type gradeEngine interface {
	SemesterGPA(ctx context.Context, studentID, semester string) models.SemesterGPA
	CGPA(ctx context.Context, studentID string) float64
}

// AtRiskThreshold is the fixed CGPA floor below which a student counts as at
// risk.
const AtRiskThreshold = 7.5

// AnalyticsService derives portfolio-wide aggregates from the full synthetic
// population: dashboard KPIs, the GPA trend, the grade distribution and the
// attendance summary.
type AnalyticsService struct {
	students    studentLister
	faculty     facultyLister
	courses     courseReader
	assessments assessmentReader
	attendance  attendanceLister
	grades      gradeEngine
	logger      *zap.Logger
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(students studentLister, faculty facultyLister, courses courseReader, assessments assessmentReader, attendance attendanceLister, grades gradeEngine, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		students:    students,
		faculty:     faculty,
		courses:     courses,
		assessments: assessments,
		attendance:  attendance,
		grades:      grades,
		logger:      logger,
	}
}

// DashboardKpis computes the headline numbers for the admin dashboard.
func (s *AnalyticsService) DashboardKpis(ctx context.Context) (*dto.DashboardKpis, error) {
	students := s.students.Students(ctx)
	faculty := s.faculty.Faculty(ctx)
	courses := s.courses.Courses(ctx)

	kpis := &dto.DashboardKpis{
		TotalStudents:  len(students),
		TotalFaculty:   len(faculty),
		TotalCourses:   len(courses),
		AverageCgpa:    "0.00",
		AttendanceRate: "0.0",
		FacultyLoadAvg: "0.0",
	}

	var totalCgpa float64
	for _, student := range students {
		cgpa := s.grades.CGPA(ctx, student.ID)
		totalCgpa += cgpa
		if cgpa < AtRiskThreshold {
			kpis.StudentsAtRisk++
		}
	}
	if len(students) > 0 {
		kpis.AverageCgpa = fmt.Sprintf("%.2f", totalCgpa/float64(len(students)))
	}

	var attended, totalClasses int
	for _, record := range s.attendance.ListAttendance(ctx) {
		totalClasses++
		if record.Status.Attended() {
			attended++
		}
	}
	if totalClasses > 0 {
		kpis.AttendanceRate = fmt.Sprintf("%.1f", float64(attended)/float64(totalClasses)*100)
	}

	if len(faculty) > 0 {
		kpis.FacultyLoadAvg = fmt.Sprintf("%.1f", float64(len(courses))/float64(len(faculty)))
	}

	return kpis, nil
}

// Analytics bundles the aggregates behind the analytics page.
func (s *AnalyticsService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	return &dto.AnalyticsResponse{
		GpaTrend:          s.gpaTrend(ctx),
		GradeDistribution: s.gradeDistribution(ctx),
		AttendanceSummary: s.attendanceSummary(ctx),
	}, nil
}

// gpaTrend computes, per semester, the population credit-weighted average
// SGPA, chronologically ascending. Semesters where no student earned credits
// are omitted.
func (s *AnalyticsService) gpaTrend(ctx context.Context) []dto.GpaTrendPoint {
	seen := map[string]bool{}
	var labels []string
	for _, assessment := range s.assessments.ListAssessments(ctx) {
		if assessment.Semester == "" || seen[assessment.Semester] {
			continue
		}
		seen[assessment.Semester] = true
		labels = append(labels, assessment.Semester)
	}
	models.SortSemestersAsc(labels)

	students := s.students.Students(ctx)
	var trend []dto.GpaTrendPoint
	for _, semester := range labels {
		var totalPoints float64
		var totalCredits int
		for _, student := range students {
			gpa := s.grades.SemesterGPA(ctx, student.ID, semester)
			if gpa.Credits == 0 {
				continue
			}
			totalPoints += gpa.SGPA * float64(gpa.Credits)
			totalCredits += gpa.Credits
		}
		if totalCredits == 0 {
			continue
		}
		trend = append(trend, dto.GpaTrendPoint{
			Semester: semester,
			AvgSgpa:  roundTo(totalPoints/float64(totalCredits), 2),
		})
	}
	return trend
}

// gradeDistribution counts letter grades across every individual scored
// assessment row, not course-level aggregates.
func (s *AnalyticsService) gradeDistribution(ctx context.Context) []dto.GradeCount {
	counts := map[models.GradeLetter]int{}
	for _, assessment := range s.assessments.ListAssessments(ctx) {
		if assessment.MaxScore <= 0 {
			continue
		}
		for _, record := range assessment.Scores {
			if record.Score == nil {
				continue
			}
			grade := models.GradeForPercentage(*record.Score / assessment.MaxScore * 100)
			counts[grade.Letter]++
		}
	}
	letters := []models.GradeLetter{models.GradeA, models.GradeB, models.GradeC, models.GradeD, models.GradeF}
	out := make([]dto.GradeCount, 0, len(letters))
	for _, letter := range letters {
		out = append(out, dto.GradeCount{Letter: letter, Count: counts[letter]})
	}
	return out
}

func (s *AnalyticsService) attendanceSummary(ctx context.Context) []dto.AttendanceCount {
	counts := map[models.AttendanceStatus]int{}
	for _, record := range s.attendance.ListAttendance(ctx) {
		counts[record.Status]++
	}
	statuses := []models.AttendanceStatus{models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate}
	out := make([]dto.AttendanceCount, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, dto.AttendanceCount{Status: status, Count: counts[status]})
	}
	return out
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
