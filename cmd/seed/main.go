// Command seed populates an empty catalog with sample projects and their
// milestones. Running it against an already seeded database is a no-op.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ionots/backend/internal/config"
	"github.com/ionots/backend/internal/logger"
	"github.com/ionots/backend/internal/models"
	"github.com/ionots/backend/internal/repositories"
	"go.uber.org/zap"
)

var sampleProjects = []models.Project{
	{
		Title:           "Machine Learning Basics with Python",
		Description:     "Learn fundamental ML concepts by building a simple classification model",
		DifficultyLevel: models.DifficultyLevelBeginner,
	},
	{
		Title:           "Neural Networks from Scratch",
		Description:     "Implement a neural network without using any ML libraries",
		DifficultyLevel: models.DifficultyLevelAdvanced,
	},
	{
		Title:           "Data Visualization Dashboard",
		Description:     "Create an interactive dashboard using Python and Plotly",
		DifficultyLevel: models.DifficultyLevelIntermediate,
	},
	{
		Title:           "Natural Language Processing Project",
		Description:     "Build a sentiment analysis model using transformers",
		DifficultyLevel: models.DifficultyLevelAdvanced,
	},
}

// sampleMilestones is the default milestone set applied to every seeded project
var sampleMilestones = []models.Milestone{
	{Title: "Understand the problem", OrderIndex: 1},
	{Title: "Prepare the dataset", OrderIndex: 2},
	{Title: "Build the model", OrderIndex: 3},
	{Title: "Evaluate and report", OrderIndex: 4},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Logger.Fatal("Failed to ping database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		logger.Logger.Fatal("Failed to seed database", zap.Error(err))
	}
}

// seed inserts the sample catalog unless projects already exist
func seed(ctx context.Context, db *sql.DB) error {
	projectRepo := repositories.NewProjectRepository(db)
	milestoneRepo := repositories.NewMilestoneRepository(db)

	count, err := projectRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		logger.Logger.Info("Database already seeded, skipping", zap.Int("projects", count))
		return nil
	}

	for i := range sampleProjects {
		project := &sampleProjects[i]
		if err := projectRepo.Create(ctx, project); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", project.Title, err)
		}

		milestones := make([]models.Milestone, len(sampleMilestones))
		copy(milestones, sampleMilestones)
		if err := milestoneRepo.CreateForProject(ctx, project.ID, milestones); err != nil {
			return fmt.Errorf("failed to seed milestones for %q: %w", project.Title, err)
		}
	}

	logger.Logger.Info("Database seeded successfully", zap.Int("projects", len(sampleProjects)))
	return nil
}
