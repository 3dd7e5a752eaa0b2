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
	applicationsAdmittedTotal atomic.Uint64
	applicationsRejectedTotal atomic.Uint64
	cacheHitTotal             atomic.Uint64
	cacheMissTotal            atomic.Uint64

	rejectionReasons = struct {
		mu     sync.Mutex
		counts map[string]uint64
	}{counts: make(map[string]uint64)}

	requestDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncApplicationAdmitted increments the admitted counter.
func IncApplicationAdmitted() {
	applicationsAdmittedTotal.Add(1)
}

// IncApplicationRejected increments the rejected counter, tagged by the
// admission rule that stopped the applicant.
func IncApplicationRejected(reason string) {
	applicationsRejectedTotal.Add(1)
	rejectionReasons.mu.Lock()
	rejectionReasons.counts[reason]++
	rejectionReasons.mu.Unlock()
}

// IncCacheHit increments the cache hit counter.
func IncCacheHit() {
	cacheHitTotal.Add(1)
}

// IncCacheMiss increments the cache miss counter.
func IncCacheMiss() {
	cacheMissTotal.Add(1)
}

// ObserveRequestDurationMs records an HTTP request duration in milliseconds.
func ObserveRequestDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	requestDuration.Observe(value)
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
	writeCounter(&buf, "applications_admitted_total", "Total applications admitted", applicationsAdmittedTotal.Load())
	writeCounter(&buf, "applications_rejected_total", "Total applications rejected", applicationsRejectedTotal.Load())
	writeLabeledCounter(&buf, "applications_rejected_by_reason_total", "Applications rejected, by admission rule", snapshotReasons())
	writeCounter(&buf, "cache_hit_total", "Total cache hits", cacheHitTotal.Load())
	writeCounter(&buf, "cache_miss_total", "Total cache misses", cacheMissTotal.Load())
	writeHistogram(&buf, "http_request_duration_ms", "HTTP request duration in milliseconds", requestDuration.Snapshot())
	return buf.String()
}

func snapshotReasons() map[string]uint64 {
	rejectionReasons.mu.Lock()
	defer rejectionReasons.mu.Unlock()
	out := make(map[string]uint64, len(rejectionReasons.counts))
	for k, v := range rejectionReasons.counts {
		out[k] = v
	}
	return out
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

func writeLabeledCounter(buf *bytes.Buffer, name, help string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	for label, value := range values {
		fmt.Fprintf(buf, "%s{reason=%q} %d\n", name, label, value)
	}
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
