package previews

import (
	"context"
	"errors"
	"sync"
	"time"

	"orca-backend/internal/scoring"
	"orca-backend/internal/scoring/recommendations"
	"orca-backend/internal/shared/metrics"
	"orca-backend/internal/shared/telemetry"
	"orca-backend/internal/snapshots"
)

const defaultConcurrency = 4

// ObjectPreviews bundles everything the UI needs for one object: the four
// shapes, warnings, and the completion score. Error is set only on failed
// entries inside a project batch.
type ObjectPreviews struct {
	ObjectID        string                  `json:"objectId"`
	ObjectName      string                  `json:"objectName"`
	PriorityPhase   snapshots.PriorityPhase `json:"priorityPhase"`
	Card            CardPreview             `json:"card"`
	Detail          DetailPreview           `json:"detail"`
	List            ListPreview             `json:"list"`
	Landing         LandingPreview          `json:"landing"`
	Warnings        []scoring.Warning       `json:"warnings"`
	CompletionScore scoring.CompletionScore `json:"completionScore"`
	Error           string                  `json:"error,omitempty"`
}

// Failed reports whether this entry is an error placeholder from a batch.
func (p ObjectPreviews) Failed() bool { return p.Error != "" }

// Service generates previews over the snapshot assembler boundary.
type Service struct {
	Snapshots   snapshots.Repo
	Cfg         scoring.Config
	Concurrency int
}

// ObjectPreviews assembles one snapshot and renders its previews, warnings,
// and completion score. Returns ErrNotFound unchanged when the object cannot
// be resolved.
func (s *Service) ObjectPreviews(ctx context.Context, projectID, objectID string) (ObjectPreviews, error) {
	started := time.Now()

	snap, err := s.Snapshots.GetObject(ctx, projectID, objectID)
	if err != nil {
		metrics.IncPreviewFailed()
		return ObjectPreviews{}, err
	}

	result := s.fromSnapshot(snap)
	metrics.IncPreviewGenerated()
	metrics.ObservePreviewDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return result, nil
}

// ProjectPreviews renders previews for every object in the project,
// optionally filtered by priority phase. Objects are processed concurrently;
// one object's failure becomes an error entry and never aborts the batch.
// Result order follows the assembler's name ordering.
func (s *Service) ProjectPreviews(ctx context.Context, projectID string, phase snapshots.PriorityPhase) ([]ObjectPreviews, error) {
	snaps, err := s.Snapshots.ListObjects(ctx, projectID, phase)
	if err != nil {
		return nil, err
	}

	results := make([]ObjectPreviews, len(snaps))
	sem := make(chan struct{}, s.concurrency())
	var wg sync.WaitGroup

	for i := range snaps {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.renderOne(ctx, projectID, snaps[i])
		}(i)
	}
	wg.Wait()

	return results, nil
}

// ObjectGuidance returns the warnings, score, and recommendations for one
// object without rendering previews.
func (s *Service) ObjectGuidance(ctx context.Context, projectID, objectID string) (ObjectGuidance, error) {
	snap, err := s.Snapshots.GetObject(ctx, projectID, objectID)
	if err != nil {
		return ObjectGuidance{}, err
	}

	score := scoring.Score(s.Cfg, snap)
	warnings := scoring.Warnings(s.Cfg, snap)
	return ObjectGuidance{
		ObjectID:        snap.ID,
		ObjectName:      snap.Name,
		Warnings:        warnings,
		CompletionScore: score,
		Recommendations: recommendations.Generate(score, warnings),
	}, nil
}

// ObjectGuidance carries warning and recommendation data for one object.
type ObjectGuidance struct {
	ObjectID        string                            `json:"objectId"`
	ObjectName      string                            `json:"objectName"`
	Warnings        []scoring.Warning                 `json:"warnings"`
	CompletionScore scoring.CompletionScore           `json:"completionScore"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

// renderOne never lets a single object abort the batch; a recovered panic or
// snapshot error becomes an error entry.
func (s *Service) renderOne(ctx context.Context, projectID string, snap snapshots.ObjectSnapshot) (result ObjectPreviews) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("preview.render_panic", map[string]any{
				"project_id": projectID,
				"object_id":  snap.ID,
				"error":      rec,
			})
			metrics.IncPreviewFailed()
			result = errorEntry(snap, errors.New("preview rendering failed"))
		}
	}()

	if err := ctx.Err(); err != nil {
		metrics.IncPreviewFailed()
		return errorEntry(snap, err)
	}

	started := time.Now()
	result = s.fromSnapshot(snap)
	metrics.IncPreviewGenerated()
	metrics.ObservePreviewDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return result
}

func (s *Service) fromSnapshot(snap snapshots.ObjectSnapshot) ObjectPreviews {
	set := Render(snap)
	return ObjectPreviews{
		ObjectID:        snap.ID,
		ObjectName:      snap.Name,
		PriorityPhase:   snap.PriorityPhase,
		Card:            set.Card,
		Detail:          set.Detail,
		List:            set.List,
		Landing:         set.Landing,
		Warnings:        scoring.Warnings(s.Cfg, snap),
		CompletionScore: scoring.Score(s.Cfg, snap),
	}
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return defaultConcurrency
}

func errorEntry(snap snapshots.ObjectSnapshot, err error) ObjectPreviews {
	return ObjectPreviews{
		ObjectID:      snap.ID,
		ObjectName:    snap.Name,
		PriorityPhase: snapshots.PhaseUnassigned,
		Error:         err.Error(),
	}
}
