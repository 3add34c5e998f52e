package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orca-backend/internal/projects"
	"orca-backend/internal/shared/server/middleware"
	"orca-backend/internal/shared/server/respond"
	"orca-backend/internal/snapshots"
)

// Handler wires HTTP handlers to the export service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:projectId/export", h.exportNow)
	rg.POST("/projects/:projectId/export/jobs", h.startJob)
	rg.GET("/projects/:projectId/export/jobs/:jobId", h.getJob)
}

type exportRequest struct {
	ObjectIDs []string `json:"objectIds"`
}

// exportNow renders the export document inline and returns it as a file
// download. An optional body narrows the export to specific objects.
func (h *Handler) exportNow(c *gin.Context) {
	projectID := c.Param("projectId")
	phase := phaseFilter(c)

	var req exportRequest
	// The body is optional; a missing or empty one means the whole project.
	_ = c.ShouldBindJSON(&req)

	var doc Document
	var err error
	if len(req.ObjectIDs) > 0 {
		doc, err = h.Svc.ExportSelection(c.Request.Context(), projectID, req.ObjectIDs)
	} else {
		doc, err = h.Svc.Export(c.Request.Context(), projectID, phase)
	}
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
		case errors.Is(err, ErrNoObjectsMatched), errors.Is(err, ErrNoObjects):
			respond.Error(c, http.StatusNotFound, "not_found", "no objects found matching the export criteria", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export previews", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+doc.Filename)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

func (h *Handler) startJob(c *gin.Context) {
	projectID := c.Param("projectId")
	phase := phaseFilter(c)
	requestedBy := middleware.UserIDFromContext(c)
	requestID := middleware.RequestIDFromContext(c)

	job, err := h.Svc.StartExport(c.Request.Context(), projectID, requestedBy, phase, requestID)
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start export", nil)
		}
		return
	}

	respond.Accepted(c, job)
}

func (h *Handler) getJob(c *gin.Context) {
	projectID := c.Param("projectId")
	jobID := c.Param("jobId")

	job, err := h.Svc.GetJob(c.Request.Context(), jobID)
	if err != nil || job.ProjectID != projectID {
		if err == nil || errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "export job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load export job", nil)
		return
	}

	respond.OK(c, job)
}

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
