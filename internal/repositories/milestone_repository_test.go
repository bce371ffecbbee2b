package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ionots/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMilestoneTestRepository creates a milestone repository with a mock database
func setupMilestoneTestRepository(t *testing.T) (*milestoneRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMilestoneRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewMilestoneRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewMilestoneRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestMilestoneRepository_GetByProjectID(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedCount int
		expectedError bool
		errorContains string
	}{
		{
			name: "success ordered by order_index",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "project_id", "title", "order_index"}).
					AddRow(1, 1, "Understand the problem", 1).
					AddRow(2, 1, "Prepare the dataset", 2)
				mock.ExpectQuery(`SELECT.*FROM project_milestones.*WHERE project_id = \?.*ORDER BY order_index ASC`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "no milestones",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "project_id", "title", "order_index"})
				mock.ExpectQuery(`SELECT.*FROM project_milestones`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM project_milestones`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query milestones",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMilestoneTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			milestones, err := repo.GetByProjectID(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Len(t, milestones, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMilestoneRepository_UpsertProgress(t *testing.T) {
	tests := []struct {
		name          string
		completed     bool
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name:      "completed sets completed_at",
			completed: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_milestone_progress.*ON DUPLICATE KEY UPDATE`).
					WithArgs(7, 2, true, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:      "not completed clears completed_at",
			completed: false,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_milestone_progress.*ON DUPLICATE KEY UPDATE`).
					WithArgs(7, 2, false, nil).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name:      "database error",
			completed: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_milestone_progress`).
					WithArgs(7, 2, true, sqlmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to upsert milestone progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMilestoneTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpsertProgress(context.Background(), 7, 2, tt.completed)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMilestoneRepository_CreateForProject(t *testing.T) {
	repo, mock, cleanup := setupMilestoneTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO project_milestones`).
		WithArgs(1, "Understand the problem", 1).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec(`INSERT INTO project_milestones`).
		WithArgs(1, "Prepare the dataset", 2).
		WillReturnResult(sqlmock.NewResult(11, 1))

	milestones := []models.Milestone{
		{Title: "Understand the problem", OrderIndex: 1},
		{Title: "Prepare the dataset", OrderIndex: 2},
	}
	err := repo.CreateForProject(context.Background(), 1, milestones)

	assert.NoError(t, err)
	assert.Equal(t, 10, milestones[0].ID)
	assert.Equal(t, 11, milestones[1].ID)
	assert.Equal(t, 1, milestones[0].ProjectID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
