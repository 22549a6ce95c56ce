// Package telemetry provides OpenTelemetry instrumentation for the classifier service.
// It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "classifier"

// Metrics holds all classifier Prometheus metrics
type Metrics struct {
	// Classification metrics
	ClassificationsTotal     *prometheus.CounterVec
	ClassificationDuration   *prometheus.HistogramVec
	ClassificationConfidence prometheus.Histogram
	UnknownTotal             prometheus.Counter
	ClassificationLag        prometheus.Histogram

	// Override layer metrics
	OverridesTotal       *prometheus.CounterVec
	PatternMatchDuration prometheus.Histogram

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Feedback metrics
	FeedbackTotal *prometheus.CounterVec

	// Retraining metrics
	RetrainTotal     *prometheus.CounterVec
	TrainingExamples prometheus.Gauge
	SubdomainModels  prometheus.Gauge

	// Batch processing metrics
	ComplaintsProcessed *prometheus.CounterVec
	ComplaintsFailed    *prometheus.CounterVec
	BatchSize           prometheus.Histogram
	QueueDepth          prometheus.Gauge
	ActiveWorkers       prometheus.Gauge
	WorkDropped         prometheus.Counter
	ThrottleCount       prometheus.Counter

	// Archive metrics
	ArchiveTotal *prometheus.CounterVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	metrics := initMetrics()
	tracer := otel.Tracer(serviceName)

	return &Provider{
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initClassificationMetrics(m)
	initOverrideMetrics(m)
	initCacheMetrics(m)
	initFeedbackMetrics(m)
	initRetrainMetrics(m)
	initBatchMetrics(m)
	initArchiveMetrics(m)
	return m
}

func initClassificationMetrics(m *Metrics) {
	m.ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_classifications_total",
		Help: "Total classifications by committed domain and method (rule_based, ml_model, hybrid)",
	}, []string{"domain", "method"})

	m.ClassificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classifier_classification_duration_seconds",
		Help:    "Time to classify a single complaint",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method"})

	m.ClassificationConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_confidence",
		Help:    "Final (feedback-adjusted) confidence distribution",
		Buckets: []float64{0.1, 0.2, 0.3, 0.45, 0.6, 0.7, 0.8, 0.9, 0.95, 1.0},
	})

	m.UnknownTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_unknown_total",
		Help: "Classifications that ended at the unknown sentinel",
	})

	m.ClassificationLag = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_classification_lag_seconds",
		Help:    "Time between complaint receipt and classification",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800, 3600},
	})
}

func initOverrideMetrics(m *Metrics) {
	m.OverridesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_overrides_total",
		Help: "Scenario pattern resolutions by pattern name",
	}, []string{"pattern"})

	m.PatternMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_pattern_match_duration_seconds",
		Help:    "Time spent in scenario pattern matching (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
}

func initCacheMetrics(m *Metrics) {
	m.CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_cache_hits_total",
		Help: "Classification cache hits",
	})

	m.CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_cache_misses_total",
		Help: "Classification cache misses",
	})
}

func initFeedbackMetrics(m *Metrics) {
	m.FeedbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_feedback_total",
		Help: "Feedback events by sentiment (positive, negative, neutral)",
	}, []string{"sentiment"})
}

func initRetrainMetrics(m *Metrics) {
	m.RetrainTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_retrain_total",
		Help: "Retraining attempts by outcome (success, rejected)",
	}, []string{"outcome"})

	m.TrainingExamples = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_training_examples",
		Help: "Examples in the corpus the live model was trained on",
	})

	m.SubdomainModels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_subdomain_models",
		Help: "Domains with a fitted subdomain model",
	})
}

func initBatchMetrics(m *Metrics) {
	m.ComplaintsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_complaints_processed_total",
		Help: "Complaints successfully classified by channel",
	}, []string{"channel"})

	m.ComplaintsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_complaints_failed_total",
		Help: "Complaints that failed classification",
	}, []string{"channel", "error_code"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_batch_size",
		Help:    "Number of complaints per batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_queue_depth",
		Help: "Current pending complaints in work queue",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_active_workers",
		Help: "Currently active worker goroutines",
	})

	m.WorkDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_work_dropped_total",
		Help: "Work items dropped due to queue full",
	})

	m.ThrottleCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_throttle_count_total",
		Help: "Number of times intake was throttled due to backpressure",
	})
}

func initArchiveMetrics(m *Metrics) {
	m.ArchiveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_archive_total",
		Help: "Classified complaints archived to Elasticsearch by outcome",
	}, []string{"outcome"})
}

// RecordClassification records metrics for a single completed classification
func (p *Provider) RecordClassification(ctx context.Context, dom, method string, confidence float64, duration time.Duration) {
	p.Metrics.ClassificationsTotal.WithLabelValues(dom, method).Inc()
	p.Metrics.ClassificationDuration.WithLabelValues(method).Observe(duration.Seconds())
	p.Metrics.ClassificationConfidence.Observe(confidence)
}

// RecordUnknown counts a classification that ended at the sentinel
func (p *Provider) RecordUnknown(ctx context.Context) {
	p.Metrics.UnknownTotal.Inc()
}

// RecordClassificationLag records receipt-to-classification lag
func (p *Provider) RecordClassificationLag(ctx context.Context, receivedAt time.Time) {
	lag := time.Since(receivedAt)
	p.Metrics.ClassificationLag.Observe(lag.Seconds())
}

// RecordOverride counts a scenario pattern deciding a result
func (p *Provider) RecordOverride(ctx context.Context, pattern string) {
	p.Metrics.OverridesTotal.WithLabelValues(pattern).Inc()
}

// RecordPatternMatch records scenario matching latency
func (p *Provider) RecordPatternMatch(ctx context.Context, duration time.Duration) {
	p.Metrics.PatternMatchDuration.Observe(duration.Seconds())
}

// RecordCacheHit counts a classification served from cache
func (p *Provider) RecordCacheHit(ctx context.Context) {
	p.Metrics.CacheHits.Inc()
}

// RecordCacheMiss counts a classification computed fresh
func (p *Provider) RecordCacheMiss(ctx context.Context) {
	p.Metrics.CacheMisses.Inc()
}

// RecordFeedback counts one feedback event by sentiment
func (p *Provider) RecordFeedback(ctx context.Context, sentiment string) {
	p.Metrics.FeedbackTotal.WithLabelValues(sentiment).Inc()
}

// RecordRetrain records a retraining attempt and the resulting model sizes
func (p *Provider) RecordRetrain(ctx context.Context, success bool, examples, subdomainModels int) {
	outcome := "success"
	if !success {
		outcome = "rejected"
	}
	p.Metrics.RetrainTotal.WithLabelValues(outcome).Inc()
	if success {
		p.Metrics.TrainingExamples.Set(float64(examples))
		p.Metrics.SubdomainModels.Set(float64(subdomainModels))
	}
}

// RecordComplaintProcessed counts a successfully classified complaint
func (p *Provider) RecordComplaintProcessed(ctx context.Context, channel string) {
	p.Metrics.ComplaintsProcessed.WithLabelValues(channelLabel(channel)).Inc()
}

// RecordComplaintFailed counts a failed complaint with its error code
func (p *Provider) RecordComplaintFailed(ctx context.Context, channel, errorCode string) {
	p.Metrics.ComplaintsFailed.WithLabelValues(channelLabel(channel), errorCode).Inc()
}

// RecordBatchSize records the size of a processed batch
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// SetQueueDepth sets the current queue depth
func (p *Provider) SetQueueDepth(depth int) {
	p.Metrics.QueueDepth.Set(float64(depth))
}

// SetActiveWorkers sets the current active worker count
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// IncrementWorkDropped increments the dropped work counter
func (p *Provider) IncrementWorkDropped() {
	p.Metrics.WorkDropped.Inc()
}

// IncrementThrottleCount increments the throttle counter
func (p *Provider) IncrementThrottleCount() {
	p.Metrics.ThrottleCount.Inc()
}

// RecordArchive records an Elasticsearch archive attempt
func (p *Provider) RecordArchive(ctx context.Context, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	p.Metrics.ArchiveTotal.WithLabelValues(outcome).Inc()
}

// channelLabel keeps the channel label space bounded
func channelLabel(channel string) string {
	if channel == "" {
		return "unknown"
	}
	return channel
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
