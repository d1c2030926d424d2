package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-portal-api/internal/models"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

func newGradeService(db interface {
	Courses(ctx context.Context) []models.Course
	IsEnrolled(ctx context.Context, courseID, studentID string) bool
	AssessmentsByCourse(ctx context.Context, courseID string) []models.Assessment
	ListAssessments(ctx context.Context) []models.Assessment
	StudentByID(ctx context.Context, id string) (*models.Student, error)
}) *GradeService {
	return NewGradeService(db, db, db, db, nil)
}

func TestGradeForPercentageBands(t *testing.T) {
	cases := []struct {
		percentage float64
		letter     models.GradeLetter
		points     float64
	}{
		{95, models.GradeA, 10},
		{90, models.GradeA, 10},
		{89.99, models.GradeB, 9},
		{80, models.GradeB, 9},
		{75, models.GradeC, 8},
		{70, models.GradeC, 8},
		{65, models.GradeD, 7},
		{60, models.GradeD, 7},
		{59.99, models.GradeF, 0},
		{0, models.GradeF, 0},
	}
	for _, tc := range cases {
		grade := models.GradeForPercentage(tc.percentage)
		assert.Equal(t, tc.letter, grade.Letter, "percentage %v", tc.percentage)
		assert.Equal(t, tc.points, grade.Points, "percentage %v", tc.percentage)
	}
}

func TestCourseResultSkipsUngraded(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	// S002 has a graded midterm and an ungraded final in CS101. The final
	// must not drag the percentage down.
	result := svc.CourseResult(ctx, "S002", "CS101", "Fall 2023")
	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.Score)
	assert.Equal(t, 100.0, result.MaxScore)
	assert.InDelta(t, 75.0, result.Percentage, 1e-9)
	assert.Equal(t, models.GradeC, result.Grade.Letter)
}

func TestCourseResultNilWhenNotContributing(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	// Not enrolled.
	assert.Nil(t, svc.CourseResult(ctx, "S002", "CS201", "Fall 2023"))
	// Enrolled, but no assessments in this semester.
	assert.Nil(t, svc.CourseResult(ctx, "S002", "CS101", "Spring 2024"))
	// Unknown course.
	assert.Nil(t, svc.CourseResult(ctx, "S001", "ZZ999", "Fall 2023"))
}

func TestSemesterGPA(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	gpa := svc.SemesterGPA(ctx, "S001", "Fall 2023")
	assert.Equal(t, 7, gpa.Credits)
	assert.InDelta(t, 67.0/7.0, gpa.SGPA, 1e-9)

	gpa = svc.SemesterGPA(ctx, "S002", "Fall 2023")
	assert.Equal(t, 7, gpa.Credits)
	assert.InDelta(t, 53.0/7.0, gpa.SGPA, 1e-9)

	// No contributing courses: zero-credit sentinel, not a failing average.
	gpa = svc.SemesterGPA(ctx, "S002", "Spring 2024")
	assert.Equal(t, 0, gpa.Credits)
	assert.Zero(t, gpa.SGPA)
}

func TestSemestersNewestFirst(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	assert.Equal(t, []string{"Spring 2024", "Fall 2023"}, svc.Semesters(ctx, "S001"))
	// S002 never scored in Spring 2024.
	assert.Equal(t, []string{"Fall 2023"}, svc.Semesters(ctx, "S002"))
	assert.Empty(t, svc.Semesters(ctx, "S999"))
}

func TestCGPAWeightsByCredits(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	// (67/7 * 7 + 0 * 3) / 10
	assert.InDelta(t, 6.7, svc.CGPA(ctx, "S001"), 1e-9)
	assert.InDelta(t, 53.0/7.0, svc.CGPA(ctx, "S002"), 1e-9)
	assert.Zero(t, svc.CGPA(ctx, "S999"))
}

func TestCGPAIdempotent(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	first := svc.CGPA(ctx, "S001")
	second := svc.CGPA(ctx, "S001")
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 10.0)
}

func TestMarkSheet(t *testing.T) {
	svc := newGradeService(newTestStore())
	ctx := context.Background()

	sheet, err := svc.MarkSheet(ctx, "S001", "Fall 2023")
	require.NoError(t, err)
	assert.Equal(t, "Alice Carter", sheet.Student.Name)
	assert.Equal(t, "Fall 2023", sheet.Semester)
	require.Len(t, sheet.Courses, 2)
	assert.InDelta(t, 67.0/7.0, sheet.SGPA, 1e-9)
	// CGPA on a sheet is always cumulative, never scoped to the semester.
	assert.InDelta(t, 6.7, sheet.CGPA, 1e-9)

	totalCredits := 0
	for _, row := range sheet.Courses {
		totalCredits += row.Credits
	}
	assert.Equal(t, 7, totalCredits)
}

func TestMarkSheetUnknownStudent(t *testing.T) {
	svc := newGradeService(newTestStore())

	_, err := svc.MarkSheet(context.Background(), "S999", "Fall 2023")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestMarkSheetEmptySemester(t *testing.T) {
	svc := newGradeService(newTestStore())

	sheet, err := svc.MarkSheet(context.Background(), "S002", "Spring 2024")
	require.NoError(t, err)
	assert.Empty(t, sheet.Courses)
	assert.Zero(t, sheet.SGPA)
	assert.InDelta(t, 53.0/7.0, sheet.CGPA, 1e-9)
}
