package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ionots/backend/internal/models"
)

// Validation errors surfaced to handlers as client errors
var (
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrInvalidStatus   = errors.New("unknown enrollment status")
)

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Create inserts a new enrollment with the initial Accepted status
	//
	// "ctx" is the context for the request.
	// "enrollment" is the enrollment to create; its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// GetAllByUser retrieves a user's enrollments joined with project details
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns a list of enrollments and an error if any.
	GetAllByUser(ctx context.Context, userID string) ([]models.EnrollmentListItem, error)
	// ApplyProgressUpdate applies a progress report's sub-updates atomically
	//
	// "ctx" is the context for the request.
	// "upd" is the progress report to apply.
	//
	// Returns an error if any.
	ApplyProgressUpdate(ctx context.Context, upd *models.ProgressUpdate) error
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	projectRepo    ProjectRepository
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, projectRepo ProjectRepository) *enrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		projectRepo:    projectRepo,
	}
}

// Enroll records a user's acceptance of a catalog project
func (s *enrollmentService) Enroll(ctx context.Context, userID string, projectID int) error {
	// Look the project up first so accepting an unknown project is a
	// distinguishable outcome, not a dangling enrollment row.
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	enrollment := &models.Enrollment{
		UserID:    userID,
		ProjectID: projectID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}

// ListForUser retrieves a user's enrollments with project details. A user
// with no enrollments yields an empty list, not an error.
func (s *enrollmentService) ListForUser(ctx context.Context, userID string) ([]models.EnrollmentListItem, error) {
	enrollments, err := s.enrollmentRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	if enrollments == nil {
		enrollments = []models.EnrollmentListItem{}
	}
	return enrollments, nil
}

// UpdateProgress applies the milestone and status sub-updates carried by a
// progress report. Each sub-update is applied only when its fields are
// present; a report carrying neither is accepted as a no-op.
func (s *enrollmentService) UpdateProgress(ctx context.Context, upd *models.ProgressUpdate) error {
	if !upd.HasMilestoneUpdate() && !upd.HasStatusUpdate() {
		return nil
	}

	if upd.HasStatusUpdate() {
		if !upd.Status.Valid() {
			return ErrInvalidStatus
		}
		if *upd.Progress < 0 || *upd.Progress > 100 {
			return ErrInvalidProgress
		}
	}

	if err := s.enrollmentRepo.ApplyProgressUpdate(ctx, upd); err != nil {
		return fmt.Errorf("failed to apply progress update: %w", err)
	}

	return nil
}
