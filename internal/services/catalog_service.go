package services

import (
	"context"
	"fmt"

	"github.com/ionots/backend/internal/models"
)

// ProjectRepository defines methods for project data access
type ProjectRepository interface {
	// GetAll retrieves all catalog projects, newest first
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of projects and an error if any.
	GetAll(ctx context.Context) ([]models.Project, error)
	// GetByID retrieves a project by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the project.
	//
	// Returns the project and an error if any.
	GetByID(ctx context.Context, id int) (*models.Project, error)
}

// MilestoneRepository defines methods for milestone data access
type MilestoneRepository interface {
	// GetByProjectID retrieves the milestones of a project in display order
	//
	// "ctx" is the context for the request.
	// "projectID" is the ID of the project.
	//
	// Returns a list of milestones and an error if any.
	GetByProjectID(ctx context.Context, projectID int) ([]models.Milestone, error)
}

type catalogService struct {
	projectRepo   ProjectRepository
	milestoneRepo MilestoneRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(projectRepo ProjectRepository, milestoneRepo MilestoneRepository) *catalogService {
	return &catalogService{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
	}
}

// ListProjects retrieves all catalog projects. An empty catalog yields an
// empty list, not an error.
func (s *catalogService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// ListMilestones retrieves the milestones of a project
func (s *catalogService) ListMilestones(ctx context.Context, projectID int) ([]models.Milestone, error) {
	// Look the project up first so an unknown ID is reported as not found
	// rather than an empty list.
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	milestones, err := s.milestoneRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	if milestones == nil {
		milestones = []models.Milestone{}
	}
	return milestones, nil
}
