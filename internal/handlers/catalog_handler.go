package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ionots/backend/internal/models"
	"github.com/ionots/backend/internal/repositories"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for catalog reads
type CatalogService interface {
	// ListProjects retrieves all catalog projects, newest first
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of projects and an error if any.
	ListProjects(ctx context.Context) ([]models.Project, error)
	// ListMilestones retrieves the milestones of a project in display order
	//
	// "ctx" is the context for the request.
	// "projectID" is the ID of the project.
	//
	// Returns a list of milestones and an error if any.
	ListMilestones(ctx context.Context, projectID int) ([]models.Milestone, error)
}

// CatalogHandler handles HTTP requests for the project catalog
type CatalogHandler struct {
	BaseHandler
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.ListProjects)
	r.Get("/projects/{id}/milestones", h.ListMilestones)
}

// ListProjects handles GET /projects
// @Summary List catalog projects
// @Description Get all catalog projects, newest first
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (h *CatalogHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		h.Logger.Error("failed to list projects", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// ListMilestones handles GET /projects/{id}/milestones
// @Summary List project milestones
// @Description Get the milestones of a project ordered for display
// @Tags catalog
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} models.Milestone "List of milestones"
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id}/milestones [get]
func (h *CatalogHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	milestones, err := h.service.ListMilestones(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to list milestones", zap.Error(err), zap.Int("project_id", id))
		errStatus := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrProjectNotFound) {
			errStatus = http.StatusNotFound
		}
		h.RespondError(w, errStatus, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, milestones)
}
