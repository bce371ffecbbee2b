package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ionots/backend/internal/models"
	"github.com/ionots/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestNewEnrollmentService(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{}
	projectRepo := &mockProjectRepository{}

	svc := NewEnrollmentService(enrollmentRepo, projectRepo)

	assert.NotNil(t, svc)
	assert.Equal(t, enrollmentRepo, svc.enrollmentRepo)
	assert.Equal(t, projectRepo, svc.projectRepo)
}

func TestEnrollmentService_Enroll(t *testing.T) {
	tests := []struct {
		name               string
		mockProjectRepo    *mockProjectRepository
		mockEnrollmentRepo *mockEnrollmentRepository
		expectedError      error
		expectCreateCalled bool
	}{
		{
			name: "success",
			mockProjectRepo: &mockProjectRepository{
				project: &models.Project{ID: 1, Title: "AI Chatbot Development"},
			},
			mockEnrollmentRepo: &mockEnrollmentRepository{},
			expectCreateCalled: true,
		},
		{
			name: "unknown project skips enrollment creation",
			mockProjectRepo: &mockProjectRepository{
				err: repositories.ErrProjectNotFound,
			},
			mockEnrollmentRepo: &mockEnrollmentRepository{},
			expectedError:      repositories.ErrProjectNotFound,
			expectCreateCalled: false,
		},
		{
			name: "duplicate enrollment",
			mockProjectRepo: &mockProjectRepository{
				project: &models.Project{ID: 1, Title: "AI Chatbot Development"},
			},
			mockEnrollmentRepo: &mockEnrollmentRepository{
				err: repositories.ErrAlreadyEnrolled,
			},
			expectedError:      repositories.ErrAlreadyEnrolled,
			expectCreateCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEnrollmentService(tt.mockEnrollmentRepo, tt.mockProjectRepo)
			ctx := context.Background()

			err := svc.Enroll(ctx, "user123", 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectCreateCalled, tt.mockEnrollmentRepo.createCalled)
		})
	}
}

func TestEnrollmentService_ListForUser(t *testing.T) {
	startedAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mockRepo      *mockEnrollmentRepository
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			mockRepo: &mockEnrollmentRepository{
				enrollments: []models.EnrollmentListItem{
					{ID: 7, UserID: "user123", ProjectID: 1, Title: "AI Chatbot Development", Status: models.StatusInProgress, ProgressPercentage: 25, StartedAt: startedAt},
				},
			},
			expectedError: false,
			expectedCount: 1,
		},
		{
			name:          "no enrollments yields empty list",
			mockRepo:      &mockEnrollmentRepository{enrollments: nil},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "repository error",
			mockRepo: &mockEnrollmentRepository{
				err: errors.New("database error"),
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEnrollmentService(tt.mockRepo, &mockProjectRepository{})
			ctx := context.Background()

			result, err := svc.ListForUser(ctx, "user123")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
			}
		})
	}
}

func TestEnrollmentService_UpdateProgress(t *testing.T) {
	statusInProgress := models.StatusInProgress
	statusBogus := models.EnrollmentStatus("Paused")
	progress25 := 25
	progressNegative := -1
	progressOverflow := 101
	milestoneID := 2
	completed := true

	tests := []struct {
		name          string
		update        *models.ProgressUpdate
		mockRepo      *mockEnrollmentRepository
		expectedError error
		expectApplied bool
	}{
		{
			name: "status and progress update",
			update: &models.ProgressUpdate{
				UserProjectID: 7,
				Status:        &statusInProgress,
				Progress:      &progress25,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectApplied: true,
		},
		{
			name: "milestone update only",
			update: &models.ProgressUpdate{
				UserProjectID:      7,
				MilestoneID:        &milestoneID,
				MilestoneCompleted: &completed,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectApplied: true,
		},
		{
			name: "report without sub-updates is a no-op",
			update: &models.ProgressUpdate{
				UserProjectID: 7,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectApplied: false,
		},
		{
			name: "progress below zero rejected",
			update: &models.ProgressUpdate{
				UserProjectID: 7,
				Status:        &statusInProgress,
				Progress:      &progressNegative,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectedError: ErrInvalidProgress,
			expectApplied: false,
		},
		{
			name: "progress above hundred rejected",
			update: &models.ProgressUpdate{
				UserProjectID: 7,
				Status:        &statusInProgress,
				Progress:      &progressOverflow,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectedError: ErrInvalidProgress,
			expectApplied: false,
		},
		{
			name: "unknown status rejected",
			update: &models.ProgressUpdate{
				UserProjectID: 7,
				Status:        &statusBogus,
				Progress:      &progress25,
			},
			mockRepo:      &mockEnrollmentRepository{},
			expectedError: ErrInvalidStatus,
			expectApplied: false,
		},
		{
			name: "unknown enrollment",
			update: &models.ProgressUpdate{
				UserProjectID: 999,
				Status:        &statusInProgress,
				Progress:      &progress25,
			},
			mockRepo: &mockEnrollmentRepository{
				err: repositories.ErrEnrollmentNotFound,
			},
			expectedError: repositories.ErrEnrollmentNotFound,
			expectApplied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEnrollmentService(tt.mockRepo, &mockProjectRepository{})
			ctx := context.Background()

			err := svc.UpdateProgress(ctx, tt.update)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectApplied {
				assert.Equal(t, tt.update, tt.mockRepo.appliedUpdate)
			} else {
				assert.Nil(t, tt.mockRepo.appliedUpdate)
			}
		})
	}
}
