package models

import "time"

// DifficultyLevel represents the difficulty level of a catalog project
type DifficultyLevel string

const (
	DifficultyLevelBeginner     DifficultyLevel = "Beginner"
	DifficultyLevelIntermediate DifficultyLevel = "Intermediate"
	DifficultyLevelAdvanced     DifficultyLevel = "Advanced"
)

// Project represents a catalog entry in the project tracker
type Project struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level"`
	CreatedAt       time.Time       `json:"created_at"`
}
