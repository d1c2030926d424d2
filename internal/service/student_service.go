package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
)

type enrollmentLister interface {
	EnrolledStudentIDs(ctx context.Context, courseID string) []string
}

// StudentService answers student queries with the derived CGPA attached.
type StudentService struct {
	students    studentLister
	enrollments enrollmentLister
	grades      gradeEngine
	logger      *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(students studentLister, enrollments enrollmentLister, grades gradeEngine, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, enrollments: enrollments, grades: grades, logger: logger}
}

// List returns every student with CGPA computed on read.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students := s.students.Students(ctx)
	for i := range students {
		students[i].CGPA = s.grades.CGPA(ctx, students[i].ID)
	}
	return students, nil
}

// ListByCourse returns the students enrolled in a course, CGPA attached.
// Unknown course IDs yield an empty list rather than an error.
func (s *StudentService) ListByCourse(ctx context.Context, courseID string) ([]models.Student, error) {
	enrolled := map[string]bool{}
	for _, id := range s.enrollments.EnrolledStudentIDs(ctx, courseID) {
		enrolled[id] = true
	}
	var out []models.Student
	for _, student := range s.students.Students(ctx) {
		if !enrolled[student.ID] {
			continue
		}
		student.CGPA = s.grades.CGPA(ctx, student.ID)
		out = append(out, student)
	}
	return out, nil
}
