package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"campuslinks/internal/store"
)

var (
	pendingQueueDesc = prometheus.NewDesc(
		"campuslinks_pending_links",
		"Number of links awaiting moderation, by subject",
		[]string{"subject"},
		nil,
	)

	submissionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campuslinks_link_submissions_total",
		Help: "Total community link submissions",
	})

	moderationActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campuslinks_moderation_actions_total",
		Help: "Total moderation decisions by action",
	}, []string{"action"})

	deletesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campuslinks_link_deletes_total",
		Help: "Total link delete attempts by outcome",
	}, []string{"outcome"})
)

// PendingCollector is a custom Prometheus collector that reads the
// moderation queue from the store on each scrape.
type PendingCollector struct {
	links *store.LinkStore
}

// Describe sends the metric descriptor to the channel.
func (c *PendingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- pendingQueueDesc
}

// Collect counts pending links per subject and emits them as gauges.
func (c *PendingCollector) Collect(ch chan<- prometheus.Metric) {
	pending, err := c.links.ListPending(context.Background())
	if err != nil {
		slog.Error("failed to collect pending link metrics", "error", err)
		return
	}

	counts := make(map[string]int)
	for _, p := range pending {
		counts[p.SubjectID]++
	}
	for subject, count := range counts {
		ch <- prometheus.MustNewConstMetric(
			pendingQueueDesc,
			prometheus.GaugeValue,
			float64(count),
			subject,
		)
	}
}

var (
	initialized bool
	initOnce    sync.Once
)

// Init registers all collectors. Must be called once at startup.
func Init(links *store.LinkStore) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&PendingCollector{links: links},
			submissionsTotal,
			moderationActionsTotal,
			deletesTotal,
		)
		initialized = true
	})
}

// RecordSubmission counts a link submission.
func RecordSubmission() {
	if !initialized {
		return
	}
	submissionsTotal.Inc()
}

// RecordModeration counts a moderation decision.
func RecordModeration(action string) {
	if !initialized {
		return
	}
	moderationActionsTotal.WithLabelValues(action).Inc()
}

// RecordDelete counts a delete attempt by outcome.
func RecordDelete(outcome string) {
	if !initialized {
		return
	}
	deletesTotal.WithLabelValues(outcome).Inc()
}
