package validation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orca-backend/internal/shared/server/respond"
	"orca-backend/internal/snapshots"
)

// Handler wires HTTP handlers to the validation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches validation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:projectId/validation/summary", h.projectSummary)
	rg.GET("/projects/:projectId/validation/objects/:objectId", h.objectDetails)
	rg.GET("/projects/:projectId/validation/gaps", h.gaps)
}

func (h *Handler) projectSummary(c *gin.Context) {
	projectID := c.Param("projectId")

	summary, err := h.Svc.ProjectSummary(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to validate project", nil)
		return
	}

	respond.OK(c, summary)
}

func (h *Handler) objectDetails(c *gin.Context) {
	projectID := c.Param("projectId")
	objectID := c.Param("objectId")

	details, err := h.Svc.ObjectDetails(c.Request.Context(), projectID, objectID)
	if err != nil {
		switch {
		case errors.Is(err, snapshots.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "object not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to validate object", nil)
		}
		return
	}

	respond.OK(c, details)
}

func (h *Handler) gaps(c *gin.Context) {
	projectID := c.Param("projectId")
	phase := phaseFilter(c)

	report, err := h.Svc.Gaps(c.Request.Context(), projectID, phase)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze gaps", nil)
		return
	}

	respond.OK(c, report)
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
