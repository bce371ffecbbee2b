package models

import "time"

// Milestone represents an ordered sub-goal within a project
type Milestone struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"project_id,omitempty"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

// MilestoneProgress represents a user's completion record for a milestone,
// keyed by (user_project_id, milestone_id)
type MilestoneProgress struct {
	UserProjectID int        `json:"user_project_id"`
	MilestoneID   int        `json:"milestone_id"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
