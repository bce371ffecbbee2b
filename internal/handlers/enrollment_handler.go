package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ionots/backend/internal/models"
	"github.com/ionots/backend/internal/repositories"
	"github.com/ionots/backend/internal/services"
	"go.uber.org/zap"
)

// EnrollmentService is the interface that wraps methods for enrollment operations
type EnrollmentService interface {
	// Enroll records a user's acceptance of a catalog project
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "projectID" is the ID of the project being accepted.
	//
	// Returns an error if any.
	Enroll(ctx context.Context, userID string, projectID int) error
	// ListForUser retrieves a user's enrollments with project details
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns a list of enrollments and an error if any.
	ListForUser(ctx context.Context, userID string) ([]models.EnrollmentListItem, error)
	// UpdateProgress applies a progress report's sub-updates
	//
	// "ctx" is the context for the request.
	// "upd" is the progress report to apply.
	//
	// Returns an error if any.
	UpdateProgress(ctx context.Context, upd *models.ProgressUpdate) error
}

// EnrollmentHandler handles HTTP requests for enrollments and progress reports
type EnrollmentHandler struct {
	BaseHandler
	service EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all enrollment handler routes
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/projects", h.Enroll)
	r.Get("/user-projects", h.ListUserProjects)
	r.Post("/progress", h.UpdateProgress)
}

// Enroll handles POST /projects
// @Summary Accept a project
// @Description Enroll a user in a catalog project with status Accepted and zero progress
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body models.EnrollRequest true "Enrollment request"
// @Success 201 {object} map[string]string "Confirmation message"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "User already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req models.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" || req.ProjectID == 0 {
		h.RespondError(w, http.StatusBadRequest, "userId and projectId are required")
		return
	}

	if err := h.service.Enroll(r.Context(), req.UserID, req.ProjectID); err != nil {
		h.Logger.Error("failed to enroll user",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.Int("project_id", req.ProjectID),
		)
		errStatus := http.StatusInternalServerError
		switch {
		case errors.Is(err, repositories.ErrProjectNotFound):
			errStatus = http.StatusNotFound
		case errors.Is(err, repositories.ErrAlreadyEnrolled):
			errStatus = http.StatusConflict
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Project assigned successfully"})
}

// ListUserProjects handles GET /user-projects
// @Summary List a user's enrollments
// @Description Get a user's enrollments joined with project title, description and difficulty level
// @Tags enrollments
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} models.EnrollmentListItem "List of enrollments"
// @Failure 400 {object} map[string]string "Missing userId"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /user-projects [get]
func (h *EnrollmentHandler) ListUserProjects(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	enrollments, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list user enrollments", zap.Error(err), zap.String("user_id", userID))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, enrollments)
}

// UpdateProgress handles POST /progress
// @Summary Report progress
// @Description Apply an optional milestone completion and an optional status/progress update in one call. A report carrying neither sub-update is accepted as a no-op.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param progress body models.ProgressUpdate true "Progress report"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 400 {object} map[string]string "Invalid body, status or progress range"
// @Failure 404 {object} map[string]string "Enrollment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [post]
func (h *EnrollmentHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var upd models.ProgressUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if upd.UserProjectID == 0 && (upd.HasMilestoneUpdate() || upd.HasStatusUpdate()) {
		h.RespondError(w, http.StatusBadRequest, "userProjectId is required")
		return
	}

	if err := h.service.UpdateProgress(r.Context(), &upd); err != nil {
		h.Logger.Error("failed to update progress",
			zap.Error(err),
			zap.Int("user_project_id", upd.UserProjectID),
		)
		errStatus := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrInvalidProgress), errors.Is(err, services.ErrInvalidStatus):
			errStatus = http.StatusBadRequest
		case errors.Is(err, repositories.ErrEnrollmentNotFound):
			errStatus = http.StatusNotFound
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Progress updated successfully"})
}
