package previews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orca-backend/internal/shared/server/respond"
	"orca-backend/internal/snapshots"
)

// Handler wires HTTP handlers to the preview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches preview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:projectId/objects/:objectId/previews", h.objectPreviews)
	rg.GET("/projects/:projectId/objects/:objectId/warnings", h.objectWarnings)
	rg.GET("/projects/:projectId/previews", h.projectPreviews)
	rg.GET("/projects/:projectId/completion-stats", h.completionStats)
}

func (h *Handler) objectPreviews(c *gin.Context) {
	projectID := c.Param("projectId")
	objectID := c.Param("objectId")

	result, err := h.Svc.ObjectPreviews(c.Request.Context(), projectID, objectID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "object not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate previews", nil)
		}
		return
	}

	respond.OK(c, result)
}

func (h *Handler) objectWarnings(c *gin.Context) {
	projectID := c.Param("projectId")
	objectID := c.Param("objectId")

	guidance, err := h.Svc.ObjectGuidance(c.Request.Context(), projectID, objectID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "object not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze object", nil)
		}
		return
	}

	respond.OK(c, guidance)
}

type projectPreviewsResponse struct {
	ProjectID      string           `json:"projectId"`
	PriorityFilter string           `json:"priorityFilter,omitempty"`
	TotalObjects   int              `json:"totalObjects"`
	Previews       []ObjectPreviews `json:"previews"`
}

func (h *Handler) projectPreviews(c *gin.Context) {
	projectID := c.Param("projectId")
	phase := phaseFilter(c)

	results, err := h.Svc.ProjectPreviews(c.Request.Context(), projectID, phase)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate project previews", nil)
		return
	}

	respond.OK(c, projectPreviewsResponse{
		ProjectID:      projectID,
		PriorityFilter: string(phase),
		TotalObjects:   len(results),
		Previews:       results,
	})
}

func (h *Handler) completionStats(c *gin.Context) {
	projectID := c.Param("projectId")
	phase := phaseFilter(c)

	stats, err := h.Svc.CompletionStats(c.Request.Context(), projectID, phase)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to calculate completion stats", nil)
		return
	}

	respond.OK(c, gin.H{
		"projectId":      projectID,
		"priorityFilter": string(phase),
		"stats":          stats,
	})
}

// phaseFilter parses the optional phase query param. An invalid phase falls
// back to no filter rather than rejecting the request.
func phaseFilter(c *gin.Context) snapshots.PriorityPhase {
	raw := c.Query("phase")
	if raw == "" {
		return ""
	}
	phase, err := snapshots.ParsePhase(raw)
	if err != nil {
		return ""
	}
	return phase
}
