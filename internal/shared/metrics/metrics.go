package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	previewGeneratedTotal atomic.Uint64
	previewFailedTotal    atomic.Uint64
	exportGeneratedTotal  atomic.Uint64
	exportFailedTotal     atomic.Uint64

	previewDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})

	exportJobsReceivedTotal             atomic.Uint64
	exportJobsCompletedTotal            atomic.Uint64
	exportJobsFailedTotal               atomic.Uint64
	exportJobsDeletedUnrecoverableTotal atomic.Uint64
)

// IncExportJobsReceived increments the received job counter.
func IncExportJobsReceived() {
	exportJobsReceivedTotal.Add(1)
}

// IncExportJobsCompleted increments the completed job counter.
func IncExportJobsCompleted() {
	exportJobsCompletedTotal.Add(1)
}

// IncExportJobsFailed increments the failed job counter.
func IncExportJobsFailed() {
	exportJobsFailedTotal.Add(1)
}

// IncExportJobsDeletedUnrecoverable increments the counter for jobs dropped as unrecoverable.
func IncExportJobsDeletedUnrecoverable() {
	exportJobsDeletedUnrecoverableTotal.Add(1)
}

// IncPreviewGenerated increments the preview generated counter.
func IncPreviewGenerated() {
	previewGeneratedTotal.Add(1)
}

// IncPreviewFailed increments the preview failed counter.
func IncPreviewFailed() {
	previewFailedTotal.Add(1)
}

// IncExportGenerated increments the export generated counter.
func IncExportGenerated() {
	exportGeneratedTotal.Add(1)
}

// IncExportFailed increments the export failed counter.
func IncExportFailed() {
	exportFailedTotal.Add(1)
}

// ObservePreviewDurationMs records a preview generation duration in milliseconds.
func ObservePreviewDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	previewDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "preview_generated_total", "Total object previews generated", previewGeneratedTotal.Load())
	writeCounter(&buf, "preview_failed_total", "Total object previews failed", previewFailedTotal.Load())
	writeCounter(&buf, "export_generated_total", "Total exports generated", exportGeneratedTotal.Load())
	writeCounter(&buf, "export_failed_total", "Total exports failed", exportFailedTotal.Load())
	writeCounter(&buf, "export_jobs_received_total", "Total export jobs received", exportJobsReceivedTotal.Load())
	writeCounter(&buf, "export_jobs_completed_total", "Total export jobs completed", exportJobsCompletedTotal.Load())
	writeCounter(&buf, "export_jobs_failed_total", "Total export jobs failed", exportJobsFailedTotal.Load())
	writeCounter(&buf, "export_jobs_deleted_unrecoverable_total", "Total export jobs dropped as unrecoverable", exportJobsDeletedUnrecoverableTotal.Load())
	writeHistogram(&buf, "preview_duration_ms", "Preview generation duration in milliseconds", previewDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
