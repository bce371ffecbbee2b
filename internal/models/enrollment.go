package models

import "time"

// EnrollmentStatus represents the status of a user's enrollment
type EnrollmentStatus string

const (
	StatusAccepted   EnrollmentStatus = "Accepted"
	StatusInProgress EnrollmentStatus = "In Progress"
	StatusCompleted  EnrollmentStatus = "Completed"
)

// Valid reports whether s is one of the known enrollment statuses
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusAccepted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Enrollment represents one user's attempt at one catalog project
type Enrollment struct {
	ID                 int              `json:"id"`
	UserID             string           `json:"user_id"`
	ProjectID          int              `json:"project_id"`
	Status             EnrollmentStatus `json:"status"`
	ProgressPercentage int              `json:"progress_percentage"`
	StartedAt          time.Time        `json:"started_at"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
}

// EnrollmentListItem represents an enrollment joined with its project in list responses
type EnrollmentListItem struct {
	ID                 int              `json:"id"`
	UserID             string           `json:"user_id"`
	ProjectID          int              `json:"project_id"`
	Status             EnrollmentStatus `json:"status"`
	ProgressPercentage int              `json:"progress_percentage"`
	StartedAt          time.Time        `json:"started_at"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DifficultyLevel    DifficultyLevel  `json:"difficulty_level"`
}

// EnrollRequest represents a request to accept a catalog project
type EnrollRequest struct {
	UserID    string `json:"userId"`
	ProjectID int    `json:"projectId"`
}

// ProgressUpdate represents a composite progress report. The milestone and
// status sub-updates are optional and independent; pointer fields distinguish
// "absent" from legitimate zero values (milestone ID 0, completed false).
type ProgressUpdate struct {
	UserProjectID      int               `json:"userProjectId"`
	Status             *EnrollmentStatus `json:"status,omitempty"`
	Progress           *int              `json:"progress,omitempty"`
	MilestoneID        *int              `json:"milestoneId,omitempty"`
	MilestoneCompleted *bool             `json:"milestoneCompleted,omitempty"`
}

// HasMilestoneUpdate reports whether the report carries a milestone sub-update
func (u *ProgressUpdate) HasMilestoneUpdate() bool {
	return u.MilestoneID != nil
}

// HasStatusUpdate reports whether the report carries a status sub-update
func (u *ProgressUpdate) HasStatusUpdate() bool {
	return u.Status != nil && u.Progress != nil
}
