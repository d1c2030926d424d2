package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type courseRepo interface {
	Courses(ctx context.Context) []models.Course
	EnrolledStudentIDs(ctx context.Context, courseID string) []string
	AddCourse(ctx context.Context, course models.Course) (models.Course, error)
	RemoveCourse(ctx context.Context, courseID string) error
}

type facultyFinder interface {
	FacultyByID(ctx context.Context, id int) (*models.Faculty, error)
	FacultyByName(ctx context.Context, name string) (*models.Faculty, error)
}

// CourseFilter narrows course listings. Zero values mean "no filter".
type CourseFilter struct {
	StudentID  string
	FacultyID  int
	Department string
}

// AddCourseRequest is the add-course command payload.
type AddCourseRequest struct {
	Code       string `json:"code" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Department string `json:"department" validate:"required"`
	Credits    int    `json:"credits" validate:"required,gt=0"`
	Instructor string `json:"instructor" validate:"required"`
}

// CourseService serves catalogue queries and add/remove commands.
type CourseService struct {
	courses   courseRepo
	faculty   facultyFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(courses courseRepo, faculty facultyFinder, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, faculty: faculty, validator: validate, logger: logger}
}

// List returns catalogue entries matching the filter.
func (s *CourseService) List(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	courses := s.courses.Courses(ctx)

	if filter.FacultyID != 0 {
		member, err := s.faculty.FacultyByID(ctx, filter.FacultyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return []models.Course{}, nil
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve faculty")
		}
		courses = filterCourses(courses, func(c models.Course) bool { return c.Instructor == member.Name })
	}

	if filter.Department != "" {
		courses = filterCourses(courses, func(c models.Course) bool { return c.Department == filter.Department })
	}

	if filter.StudentID != "" {
		enrolledIn := map[string]bool{}
		for _, c := range courses {
			for _, id := range s.courses.EnrolledStudentIDs(ctx, c.ID) {
				if id == filter.StudentID {
					enrolledIn[c.ID] = true
					break
				}
			}
		}
		courses = filterCourses(courses, func(c models.Course) bool { return enrolledIn[c.ID] })
	}

	return courses, nil
}

// Add validates and inserts a catalogue entry. The course code becomes the
// uppercased ID and must be unique; the instructor must exist on the faculty
// roster. Nothing is mutated on rejection.
func (s *CourseService) Add(ctx context.Context, req AddCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	if _, err := s.faculty.FacultyByName(ctx, req.Instructor); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("instructor %q is not a faculty member", req.Instructor))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve instructor")
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	course := models.Course{
		ID:         code,
		Code:       code,
		Title:      req.Title,
		Department: req.Department,
		Credits:    req.Credits,
		Instructor: req.Instructor,
	}
	created, err := s.courses.AddCourse(ctx, course)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("course code %s already exists", code))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add course")
	}
	s.logger.Info("course added", zap.String("course_id", created.ID))
	return &created, nil
}

// Remove deletes a course; the store cascades enrollments, assessments and
// attendance so later queries return empty results.
func (s *CourseService) Remove(ctx context.Context, courseID string) error {
	if err := s.courses.RemoveCourse(ctx, courseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove course")
	}
	s.logger.Info("course removed", zap.String("course_id", courseID))
	return nil
}

func filterCourses(in []models.Course, keep func(models.Course) bool) []models.Course {
	out := make([]models.Course, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
