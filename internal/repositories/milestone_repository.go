package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ionots/backend/internal/models"
)

type milestoneRepository struct {
	db *sql.DB
}

// NewMilestoneRepository creates a new milestone repository
func NewMilestoneRepository(db *sql.DB) *milestoneRepository {
	return &milestoneRepository{
		db: db,
	}
}

// GetByProjectID retrieves the milestones of a project in display order
func (r *milestoneRepository) GetByProjectID(ctx context.Context, projectID int) ([]models.Milestone, error) {
	query := `
		SELECT id, project_id, title, order_index
		FROM project_milestones
		WHERE project_id = ?
		ORDER BY order_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query milestones: %w", err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var milestone models.Milestone
		err := rows.Scan(
			&milestone.ID,
			&milestone.ProjectID,
			&milestone.Title,
			&milestone.OrderIndex,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, milestone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return milestones, nil
}

// UpsertProgress records a user's completion state for a milestone, replacing
// any prior record for the same (user_project_id, milestone_id) pair
func (r *milestoneRepository) UpsertProgress(ctx context.Context, userProjectID, milestoneID int, completed bool) error {
	return upsertMilestoneProgress(ctx, r.db, userProjectID, milestoneID, completed)
}

// CreateForProject inserts reference milestones for a project (seeding)
func (r *milestoneRepository) CreateForProject(ctx context.Context, projectID int, milestones []models.Milestone) error {
	query := `
		INSERT INTO project_milestones (project_id, title, order_index)
		VALUES (?, ?, ?)
	`

	for i := range milestones {
		result, err := r.db.ExecContext(ctx, query, projectID, milestones[i].Title, milestones[i].OrderIndex)
		if err != nil {
			return fmt.Errorf("failed to create milestone: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}

		milestones[i].ID = int(id)
		milestones[i].ProjectID = projectID
	}

	return nil
}

// upsertMilestoneProgress runs the replace-semantics write against db or an
// open transaction. completed_at is set iff completed is true.
func upsertMilestoneProgress(ctx context.Context, ex execer, userProjectID, milestoneID int, completed bool) error {
	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}

	query := `
		INSERT INTO user_milestone_progress (user_project_id, milestone_id, completed, completed_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE completed = VALUES(completed), completed_at = VALUES(completed_at)
	`

	if _, err := ex.ExecContext(ctx, query, userProjectID, milestoneID, completed, completedAt); err != nil {
		return fmt.Errorf("failed to upsert milestone progress: %w", err)
	}

	return nil
}
