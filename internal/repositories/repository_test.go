package repositories

import (
	"github.com/ionots/backend/internal/models"
)

// newTestProject returns a project fixture for repository tests
func newTestProject() *models.Project {
	return &models.Project{
		Title:           "New Project",
		Description:     "Description",
		DifficultyLevel: models.DifficultyLevelBeginner,
	}
}
