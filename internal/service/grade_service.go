package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type courseReader interface {
	Courses(ctx context.Context) []models.Course
}

type enrollmentReader interface {
	IsEnrolled(ctx context.Context, courseID, studentID string) bool
}

type assessmentReader interface {
	AssessmentsByCourse(ctx context.Context, courseID string) []models.Assessment
	ListAssessments(ctx context.Context) []models.Assessment
}

type studentFinder interface {
	StudentByID(ctx context.Context, id string) (*models.Student, error)
}

// GradeService is the grade computation engine: course aggregation, SGPA,
// CGPA and mark sheets. Every method is a pure derivation over a store
// snapshot; grades and GPAs are never persisted.
type GradeService struct {
	courses     courseReader
	enrollments enrollmentReader
	assessments assessmentReader
	students    studentFinder
	logger      *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(courses courseReader, enrollments enrollmentReader, assessments assessmentReader, students studentFinder, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		courses:     courses,
		enrollments: enrollments,
		assessments: assessments,
		students:    students,
		logger:      logger,
	}
}

// CourseResult aggregates one student's assessments in a course for a
// semester. Rows with nil scores are excluded from both numerator and
// denominator: a missed assessment does not penalize. The result is nil when
// the course does not contribute (student not enrolled, no matching
// assessments, or total max score of zero).
func (s *GradeService) CourseResult(ctx context.Context, studentID, courseID, semester string) *models.CourseResult {
	if !s.enrollments.IsEnrolled(ctx, courseID, studentID) {
		return nil
	}

	var totalScore, totalMax float64
	for _, assessment := range s.assessments.AssessmentsByCourse(ctx, courseID) {
		if assessment.Semester != semester {
			continue
		}
		record, ok := assessment.ScoreFor(studentID)
		if !ok || record.Score == nil {
			continue
		}
		totalScore += *record.Score
		totalMax += assessment.MaxScore
	}
	if totalMax <= 0 {
		return nil
	}

	percentage := totalScore / totalMax * 100
	return &models.CourseResult{
		CourseID:   courseID,
		Score:      totalScore,
		MaxScore:   totalMax,
		Percentage: percentage,
		Grade:      models.GradeForPercentage(percentage),
	}
}

// SemesterGPA computes the credit-weighted SGPA across every course the
// student is enrolled in for the semester. Credits is 0 when nothing
// contributed; that zero SGPA is a sentinel, not a failing average.
func (s *GradeService) SemesterGPA(ctx context.Context, studentID, semester string) models.SemesterGPA {
	var totalCredits int
	var totalPoints float64
	for _, course := range s.courses.Courses(ctx) {
		result := s.CourseResult(ctx, studentID, course.ID, semester)
		if result == nil {
			continue
		}
		totalCredits += course.Credits
		totalPoints += result.Grade.Points * float64(course.Credits)
	}
	if totalCredits == 0 {
		return models.SemesterGPA{}
	}
	return models.SemesterGPA{SGPA: totalPoints / float64(totalCredits), Credits: totalCredits}
}

// Semesters lists every semester in which the student has at least one
// non-nil score, most recent first. Ordering uses the chronological
// (year, term) key rather than raw label comparison.
func (s *GradeService) Semesters(ctx context.Context, studentID string) []string {
	seen := map[string]bool{}
	for _, assessment := range s.assessments.ListAssessments(ctx) {
		if assessment.Semester == "" || seen[assessment.Semester] {
			continue
		}
		if record, ok := assessment.ScoreFor(studentID); ok && record.Score != nil {
			seen[assessment.Semester] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	models.SortSemestersDesc(labels)
	return labels
}

// CGPA is the credit-weighted average of per-semester SGPA across all
// assessed semesters. By policy it aggregates SGPA values rather than
// recomputing from raw scores; the two are not guaranteed to coincide and the
// SGPA-weighted form is the compatible one. Returns 0 when no semester
// contributed.
func (s *GradeService) CGPA(ctx context.Context, studentID string) float64 {
	var cumulativePoints float64
	var cumulativeCredits int
	for _, semester := range s.Semesters(ctx, studentID) {
		gpa := s.SemesterGPA(ctx, studentID, semester)
		cumulativePoints += gpa.SGPA * float64(gpa.Credits)
		cumulativeCredits += gpa.Credits
	}
	if cumulativeCredits == 0 {
		return 0
	}
	return cumulativePoints / float64(cumulativeCredits)
}

// MarkSheet builds the read-only (student, semester) projection: one row per
// contributing course plus SGPA for the semester and the student's cumulative
// CGPA. Unknown students are a not-found failure; an enrolled student with no
// contributing courses gets an empty sheet.
func (s *GradeService) MarkSheet(ctx context.Context, studentID, semester string) (*models.MarkSheet, error) {
	student, err := s.students.StudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	var rows []models.MarkSheetCourse
	for _, course := range s.courses.Courses(ctx) {
		result := s.CourseResult(ctx, studentID, course.ID, semester)
		if result == nil {
			continue
		}
		rows = append(rows, models.MarkSheetCourse{
			Code:     course.Code,
			Title:    course.Title,
			Credits:  course.Credits,
			Score:    result.Score,
			MaxScore: result.MaxScore,
			Grade:    result.Grade,
		})
	}

	student.CGPA = s.CGPA(ctx, studentID)
	return &models.MarkSheet{
		Student:  *student,
		Semester: semester,
		Courses:  rows,
		SGPA:     s.SemesterGPA(ctx, studentID, semester).SGPA,
		CGPA:     student.CGPA,
	}, nil
}
