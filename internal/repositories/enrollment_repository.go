package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ionots/backend/internal/models"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

// execer is the subset of *sql.DB and *sql.Tx used by progress writes
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment with the initial Accepted status and zero
// progress. A duplicate (user_id, project_id) pair yields ErrAlreadyEnrolled.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO user_projects (user_id, project_id, status, progress_percentage, started_at)
		VALUES (?, ?, ?, ?, NOW())
	`

	result, err := r.db.ExecContext(ctx, query,
		enrollment.UserID,
		enrollment.ProjectID,
		models.StatusAccepted,
		0,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	enrollment.ID = int(id)
	enrollment.Status = models.StatusAccepted
	enrollment.ProgressPercentage = 0
	return nil
}

// GetAllByUser retrieves a user's enrollments joined with their project's
// title, description and difficulty level, newest first
func (r *enrollmentRepository) GetAllByUser(ctx context.Context, userID string) ([]models.EnrollmentListItem, error) {
	query := `
		SELECT
			up.id,
			up.user_id,
			up.project_id,
			up.status,
			up.progress_percentage,
			up.started_at,
			up.completed_at,
			p.title,
			p.description,
			p.difficulty_level
		FROM user_projects up
		JOIN projects p ON p.id = up.project_id
		WHERE up.user_id = ?
		ORDER BY up.started_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.EnrollmentListItem
	for rows.Next() {
		var item models.EnrollmentListItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProjectID,
			&item.Status,
			&item.ProgressPercentage,
			&item.StartedAt,
			&item.CompletedAt,
			&item.Title,
			&item.Description,
			&item.DifficultyLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return enrollments, nil
}

// UpdateProgress sets the status and progress percentage of an enrollment.
// completed_at is set iff the status is Completed, cleared otherwise.
func (r *enrollmentRepository) UpdateProgress(ctx context.Context, id int, status models.EnrollmentStatus, progress int) error {
	return updateEnrollment(ctx, r.db, id, status, progress)
}

// ApplyProgressUpdate applies the milestone and status sub-updates of a
// progress report in a single transaction, so one cannot land without the
// other. Sub-updates with absent fields are skipped.
func (r *enrollmentRepository) ApplyProgressUpdate(ctx context.Context, upd *models.ProgressUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if upd.HasMilestoneUpdate() {
		completed := upd.MilestoneCompleted != nil && *upd.MilestoneCompleted
		if err := upsertMilestoneProgress(ctx, tx, upd.UserProjectID, *upd.MilestoneID, completed); err != nil {
			return err
		}
	}

	if upd.HasStatusUpdate() {
		if err := updateEnrollment(ctx, tx, upd.UserProjectID, *upd.Status, *upd.Progress); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// updateEnrollment runs the status/progress update against db or an open
// transaction. Requires clientFoundRows on the connection so a no-change
// update is not mistaken for a missing row.
func updateEnrollment(ctx context.Context, ex execer, id int, status models.EnrollmentStatus, progress int) error {
	var completedAt *time.Time
	if status == models.StatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	query := `
		UPDATE user_projects
		SET status = ?, progress_percentage = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := ex.ExecContext(ctx, query, status, progress, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}
