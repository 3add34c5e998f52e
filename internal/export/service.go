package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"orca-backend/internal/previews"
	"orca-backend/internal/projects"
	"orca-backend/internal/queue"
	"orca-backend/internal/shared/metrics"
	"orca-backend/internal/shared/storage/object"
	"orca-backend/internal/shared/telemetry"
	"orca-backend/internal/snapshots"
)

// ErrNoObjects is returned when a project has no objects to export.
var ErrNoObjects = errors.New("no objects to export")

// Document is a fully rendered export ready to be downloaded or stored.
type Document struct {
	Filename string
	HTML     string
}

// Service composes export documents and drives the async export job
// lifecycle.
type Service struct {
	Projects projects.Repo
	Previews *previews.Service
	Jobs     Repo
	Store    object.ObjectStore
	Queue    queue.Client
}

// Export renders the complete export document synchronously. Objects the
// assembler cannot resolve appear as error entries rather than failing the
// whole export.
func (s *Service) Export(ctx context.Context, projectID string, phase snapshots.PriorityPhase) (Document, error) {
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return Document{}, err
	}

	entries, err := s.Previews.ProjectPreviews(ctx, projectID, phase)
	if err != nil {
		return Document{}, err
	}
	if len(entries) == 0 {
		return Document{}, ErrNoObjects
	}

	metrics.IncExportGenerated()
	return Document{
		Filename: fmt.Sprintf("cdll-previews-%s.html", projectID),
		HTML:     ComposeHTML(project, entries),
	}, nil
}

// ErrNoObjectsMatched is returned when an explicit object selection resolves
// to nothing.
var ErrNoObjectsMatched = errors.New("no requested objects matched")

// ExportSelection renders the export document for an explicit set of object
// ids. Ids that cannot be resolved are skipped; the export fails only when
// nothing matches.
func (s *Service) ExportSelection(ctx context.Context, projectID string, objectIDs []string) (Document, error) {
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return Document{}, err
	}

	entries := make([]previews.ObjectPreviews, 0, len(objectIDs))
	for _, objectID := range objectIDs {
		entry, err := s.Previews.ObjectPreviews(ctx, projectID, objectID)
		if errors.Is(err, previews.ErrNotFound) {
			telemetry.Info("export.object_skipped", map[string]any{
				"project_id": projectID,
				"object_id":  objectID,
			})
			continue
		}
		if err != nil {
			return Document{}, err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return Document{}, ErrNoObjectsMatched
	}

	metrics.IncExportGenerated()
	return Document{
		Filename: fmt.Sprintf("cdll-previews-%s.html", projectID),
		HTML:     ComposeHTML(project, entries),
	}, nil
}

// StartExport records a queued job and enqueues it for the worker. The job is
// created before the enqueue so a send failure leaves a visible failed job
// instead of a silent drop.
func (s *Service) StartExport(ctx context.Context, projectID, requestedBy string, phase snapshots.PriorityPhase, requestID string) (Job, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return Job{}, err
	}

	now := time.Now().UTC()
	job := Job{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		RequestedBy:    requestedBy,
		PriorityFilter: string(phase),
		Status:         StatusQueued,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Jobs.Create(ctx, job); err != nil {
		return Job{}, err
	}

	msg := queue.Message{
		ExportID:   job.ID,
		RequestID:  requestID,
		EnqueuedAt: now.Format(time.RFC3339),
		Version:    1,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		if failErr := s.Jobs.SetFailed(ctx, job.ID, "enqueue failed"); failErr != nil {
			telemetry.Error("export_job_fail_mark_error", map[string]any{
				"export_id": job.ID,
				"error":     failErr.Error(),
			})
		}
		return Job{}, fmt.Errorf("enqueue export: %w", err)
	}

	return job, nil
}

// GetJob returns one export job.
func (s *Service) GetJob(ctx context.Context, id string) (Job, error) {
	return s.Jobs.GetByID(ctx, id)
}

// ProcessExport runs one queued job to completion: compose the document,
// write it to the object store, and record the outcome on the job.
func (s *Service) ProcessExport(ctx context.Context, exportID string) error {
	job, err := s.Jobs.GetByID(ctx, exportID)
	if err != nil {
		return fmt.Errorf("load export job: %w", err)
	}
	if job.Status == StatusCompleted {
		return nil
	}

	if err := s.Jobs.SetStatus(ctx, job.ID, StatusProcessing); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	phase, _ := snapshots.ParsePhase(job.PriorityFilter)
	doc, err := s.Export(ctx, job.ProjectID, phase)
	if err != nil {
		return s.fail(ctx, job.ID, err)
	}

	storageKey, _, _, err := s.Store.Save(ctx, job.ProjectID, doc.Filename, strings.NewReader(doc.HTML))
	if err != nil {
		return s.fail(ctx, job.ID, fmt.Errorf("store export: %w", err))
	}

	if err := s.Jobs.SetCompleted(ctx, job.ID, storageKey); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	return nil
}

func (s *Service) fail(ctx context.Context, jobID string, cause error) error {
	metrics.IncExportFailed()
	if err := s.Jobs.SetFailed(ctx, jobID, cause.Error()); err != nil {
		telemetry.Error("export_job_fail_mark_error", map[string]any{
			"export_id": jobID,
			"error":     err.Error(),
		})
	}
	return cause
}
