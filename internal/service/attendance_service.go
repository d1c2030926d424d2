package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type attendanceRepo interface {
	AttendanceByCourse(ctx context.Context, courseID string) []models.AttendanceRecord
	AttendanceByCourseMonth(ctx context.Context, courseID string, year, month int) []models.AttendanceRecord
	AttendanceByCourseStudent(ctx context.Context, courseID, studentID string) []models.AttendanceRecord
	UpdateAttendance(ctx context.Context, courseID, studentID, date string, status models.AttendanceStatus) error
}

// UpdateAttendanceRequest sets one recorded class day.
type UpdateAttendanceRequest struct {
	StudentID string                  `json:"student_id" validate:"required"`
	Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" validate:"required"`
}

// AttendanceService serves attendance queries and the single-day update
// command.
type AttendanceService struct {
	attendance attendanceRepo
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(attendance attendanceRepo, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, validator: validate, logger: logger}
}

// SummaryByCourse aggregates attended vs held classes per enrolled student
// with recorded history in the course.
func (s *AttendanceService) SummaryByCourse(ctx context.Context, courseID string) ([]models.AttendanceSummary, error) {
	totals := map[string]*models.AttendanceSummary{}
	var order []string
	for _, record := range s.attendance.AttendanceByCourse(ctx, courseID) {
		summary, ok := totals[record.StudentID]
		if !ok {
			summary = &models.AttendanceSummary{StudentID: record.StudentID, StudentName: record.StudentName}
			totals[record.StudentID] = summary
			order = append(order, record.StudentID)
		}
		summary.TotalClassesHeld++
		if record.Status.Attended() {
			summary.AttendedClasses++
		}
	}
	out := make([]models.AttendanceSummary, 0, len(order))
	for _, studentID := range order {
		out = append(out, *totals[studentID])
	}
	return out, nil
}

// Daily returns one student's dated history in a course, oldest first.
func (s *AttendanceService) Daily(ctx context.Context, courseID, studentID string) ([]models.AttendanceRecord, error) {
	return s.attendance.AttendanceByCourseStudent(ctx, courseID, studentID), nil
}

// DailyByMonth returns a course's records scoped to one calendar month; a
// zero year/month means the whole history.
func (s *AttendanceService) DailyByMonth(ctx context.Context, courseID string, year, month int) ([]models.AttendanceRecord, error) {
	if year == 0 || month == 0 {
		return s.attendance.AttendanceByCourse(ctx, courseID), nil
	}
	if month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	return s.attendance.AttendanceByCourseMonth(ctx, courseID, year, month), nil
}

// Update sets the status for one (course, student, date). Students without
// attendance history in the course are rejected.
func (s *AttendanceService) Update(ctx context.Context, courseID string, req UpdateAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	if !req.Status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "unknown attendance status")
	}
	if err := s.attendance.UpdateAttendance(ctx, courseID, req.StudentID, req.Date, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student has no attendance history in this course")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update attendance")
	}
	return nil
}
