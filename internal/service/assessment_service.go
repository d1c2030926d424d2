package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type assessmentRepo interface {
	AssessmentsByCourse(ctx context.Context, courseID string) []models.Assessment
	AddAssessment(ctx context.Context, courseID string, a models.Assessment) (models.Assessment, error)
	UpdateAssessmentScore(ctx context.Context, courseID string, assessmentID int, studentID string, score *float64) error
}

// AddAssessmentRequest is the add-assessment command payload. Semester
// defaults to the service's current semester when omitted.
type AddAssessmentRequest struct {
	Title    string  `json:"title" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	MaxScore float64 `json:"max_score" validate:"required,gt=0"`
	Semester string  `json:"semester"`
}

// UpdateScoreRequest sets or clears one student's score on an assessment. A
// nil score marks the row ungraded again.
type UpdateScoreRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	Score     *float64 `json:"score"`
}

// AssessmentService manages a course's assessments and score entry.
type AssessmentService struct {
	assessments     assessmentRepo
	validator       *validator.Validate
	logger          *zap.Logger
	currentSemester string
}

// NewAssessmentService constructs an AssessmentService. New assessments
// without an explicit semester are filed under currentSemester.
func NewAssessmentService(assessments assessmentRepo, validate *validator.Validate, logger *zap.Logger, currentSemester string) *AssessmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if currentSemester == "" {
		currentSemester = "Spring 2024"
	}
	return &AssessmentService{
		assessments:     assessments,
		validator:       validate,
		logger:          logger,
		currentSemester: currentSemester,
	}
}

// ListByCourse returns a course's assessments; unknown courses yield an
// empty list.
func (s *AssessmentService) ListByCourse(ctx context.Context, courseID string) ([]models.Assessment, error) {
	return s.assessments.AssessmentsByCourse(ctx, courseID), nil
}

// Add creates an assessment on a course. The store seeds one null score row
// per enrolled student; a course with nobody enrolled is rejected before any
// mutation.
func (s *AssessmentService) Add(ctx context.Context, courseID string, req AddAssessmentRequest) (*models.Assessment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assessment payload")
	}
	semester := req.Semester
	if semester == "" {
		semester = s.currentSemester
	}
	created, err := s.assessments.AddAssessment(ctx, courseID, models.Assessment{
		Title:    req.Title,
		Type:     req.Type,
		MaxScore: req.MaxScore,
		Semester: semester,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		case errors.Is(err, store.ErrNoEnrollments):
			return nil, appErrors.Clone(appErrors.ErrValidation, "course has no enrolled students")
		default:
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add assessment")
		}
	}
	s.logger.Info("assessment added",
		zap.String("course_id", courseID),
		zap.Int("assessment_id", created.ID),
		zap.String("semester", created.Semester),
	)
	return &created, nil
}

// UpdateScore sets one score row. The row must exist and a non-nil score
// must lie within [0, maxScore].
func (s *AssessmentService) UpdateScore(ctx context.Context, courseID string, assessmentID int, req UpdateScoreRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid score payload")
	}
	if err := s.assessments.UpdateAssessmentScore(ctx, courseID, assessmentID, req.StudentID, req.Score); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no score row for student %s on assessment %d", req.StudentID, assessmentID))
		case errors.Is(err, store.ErrInvalidScore):
			return appErrors.Clone(appErrors.ErrValidation, "score must be between 0 and the assessment max score")
		default:
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update score")
		}
	}
	return nil
}
