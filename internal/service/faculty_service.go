package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type facultyRepo interface {
	Faculty(ctx context.Context) []models.Faculty
	AddFaculty(ctx context.Context, f models.Faculty, account models.User) (models.Faculty, error)
	RemoveFaculty(ctx context.Context, facultyID int) error
}

// AddFacultyRequest is the add-faculty command payload.
type AddFacultyRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Office     string `json:"office"`
}

// FacultyService manages the teaching roster. Adding a member also creates
// their linked portal account; removing one removes the account as well.
type FacultyService struct {
	faculty         facultyRepo
	validator       *validator.Validate
	logger          *zap.Logger
	defaultPassword string
	now             func() time.Time
}

// NewFacultyService constructs a FacultyService. New accounts start with the
// given default password, which the user is expected to change on first
// login.
func NewFacultyService(faculty facultyRepo, validate *validator.Validate, logger *zap.Logger, defaultPassword string) *FacultyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultPassword == "" {
		defaultPassword = "password"
	}
	return &FacultyService{
		faculty:         faculty,
		validator:       validate,
		logger:          logger,
		defaultPassword: defaultPassword,
		now:             time.Now,
	}
}

// List returns the roster.
func (s *FacultyService) List(ctx context.Context) ([]models.Faculty, error) {
	return s.faculty.Faculty(ctx), nil
}

// Add validates and inserts a faculty member together with their portal
// account in one atomic store operation.
func (s *FacultyService) Add(ctx context.Context, req AddFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	member := models.Faculty{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Title:      req.Title,
		Office:     req.Office,
	}
	account := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleFaculty,
		Status:       models.UserActive,
		LastLogin:    s.now(),
	}

	created, err := s.faculty.AddFaculty(ctx, member, account)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("faculty email %s already exists", req.Email))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add faculty")
	}
	s.logger.Info("faculty added", zap.Int("faculty_id", created.ID))
	return &created, nil
}

// Remove deletes a faculty member and their linked account.
func (s *FacultyService) Remove(ctx context.Context, facultyID int) error {
	if err := s.faculty.RemoveFaculty(ctx, facultyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove faculty")
	}
	s.logger.Info("faculty removed", zap.Int("faculty_id", facultyID))
	return nil
}
