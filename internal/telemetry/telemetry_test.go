package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nyayasetu/classifier/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordClassification(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordClassification(ctx, "employment_law", "hybrid", 0.85, 100*time.Millisecond)
	provider.RecordClassification(ctx, "criminal_law", "rule_based", 0.90, 50*time.Millisecond)
	provider.RecordUnknown(ctx)
}

func TestRecordOverrideAndCache(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordOverride(ctx, "phone_theft")
	provider.RecordPatternMatch(ctx, 5*time.Millisecond)
	provider.RecordCacheHit(ctx)
	provider.RecordCacheMiss(ctx)
}

func TestRecordFeedbackAndRetrain(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordFeedback(ctx, "positive")
	provider.RecordRetrain(ctx, true, 120, 10)
	provider.RecordRetrain(ctx, false, 0, 0)
}

func TestSetQueueDepth(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.SetQueueDepth(100)
	provider.SetActiveWorkers(5)
	provider.RecordBatchSize(25)
}
