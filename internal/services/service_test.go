package services

import (
	"context"

	"github.com/ionots/backend/internal/models"
)

// mockProjectRepository is a mock implementation of ProjectRepository
type mockProjectRepository struct {
	projects []models.Project
	project  *models.Project
	err      error
}

func (m *mockProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

// mockMilestoneRepository is a mock implementation of MilestoneRepository
type mockMilestoneRepository struct {
	milestones []models.Milestone
	err        error
}

func (m *mockMilestoneRepository) GetByProjectID(ctx context.Context, projectID int) ([]models.Milestone, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.milestones, nil
}

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrollments   []models.EnrollmentListItem
	err           error
	createCalled  bool
	appliedUpdate *models.ProgressUpdate
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	m.createCalled = true
	if m.err != nil {
		return m.err
	}
	enrollment.ID = 7
	return nil
}

func (m *mockEnrollmentRepository) GetAllByUser(ctx context.Context, userID string) ([]models.EnrollmentListItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.enrollments, nil
}

func (m *mockEnrollmentRepository) ApplyProgressUpdate(ctx context.Context, upd *models.ProgressUpdate) error {
	m.appliedUpdate = upd
	if m.err != nil {
		return m.err
	}
	return nil
}
