//nolint:testpackage // Testing internal processor requires same package access
package processor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// testProvider is shared across the package to avoid duplicate Prometheus
// metric registration from promauto's global registry.
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider() *telemetry.Provider {
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func newTestEngine(t *testing.T) *classifier.Engine {
	t.Helper()

	engine, err := classifier.NewEngine(logging.NewNop(), nil, nil, nil, classifier.Config{Version: "test"})
	require.NoError(t, err)
	require.True(t, engine.Retrain(context.Background(), data.TrainingCorpus()))
	return engine
}

func pendingComplaint(id, text string) *domain.Complaint {
	return &domain.Complaint{
		ID:                   id,
		Channel:              "web",
		Text:                 text,
		ReceivedAt:           time.Now().Add(-time.Minute),
		ClassificationStatus: domain.StatusPending,
	}
}

func TestBatchProcessor_Process(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewBatchProcessor(engine, getTestProvider(), 4, logging.NewNop())

	complaints := []*domain.Complaint{
		pendingComplaint("c-1", "my husband beats me daily"),
		pendingComplaint("c-2", "someone hacked my online banking account"),
		pendingComplaint("c-3", "my boss is not giving my salary"),
	}

	results := processor.Process(context.Background(), complaints)
	require.Len(t, results, 3)

	byID := make(map[string]*ProcessResult, len(results))
	for _, result := range results {
		require.NoError(t, result.Err)
		require.NotNil(t, result.Classification)
		require.NotNil(t, result.Classified)
		byID[result.Complaint.ID] = result
	}

	assert.Equal(t, domain.DomainFamilyLaw, byID["c-1"].Classification.Domain)
	assert.Equal(t, domain.DomainCyberCrime, byID["c-2"].Classification.Domain)
	assert.Equal(t, domain.DomainEmploymentLaw, byID["c-3"].Classification.Domain)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewBatchProcessor(engine, getTestProvider(), 2, logging.NewNop())

	results := processor.Process(context.Background(), nil)
	assert.Empty(t, results)
}

func TestBatchProcessor_DefaultConcurrency(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewBatchProcessor(engine, getTestProvider(), 0, logging.NewNop())
	assert.Equal(t, defaultConcurrency, processor.Concurrency())
}

func TestBuildClassified(t *testing.T) {
	complaint := pendingComplaint("c-9", "fraud call asking for otp")
	classification := &domain.Classification{
		Domain:       domain.DomainCyberCrime,
		Subdomain:    "online_fraud",
		Confidence:   0.9,
		Method:       domain.MethodHybrid,
		ModelVersion: "v2",
		ClassifiedAt: time.Now().UTC(),
	}

	classified := BuildClassified(complaint, classification, "1.2.0")

	assert.Equal(t, "c-9", classified.ID)
	assert.Equal(t, domain.DomainCyberCrime, classified.Domain)
	assert.Equal(t, domain.StatusClassified, classified.ClassificationStatus)
	assert.Equal(t, "1.2.0", classified.ClassifierVersion)
	require.NotNil(t, classified.ClassifiedAt)
	assert.Equal(t, classification.ClassifiedAt, *classified.ClassifiedAt)
}

func TestBuildHistory(t *testing.T) {
	result := &ProcessResult{
		Complaint: pendingComplaint("c-5", "my landlord kept my deposit"),
		Classification: &domain.Classification{
			Domain:     domain.DomainPropertyLaw,
			Subdomain:  "tenant_dispute",
			Confidence: 0.8,
			Sections: []domain.Section{
				{SectionNumber: "TPA-108", Category: domain.CategoryTransferAct},
			},
			Method:           domain.MethodMLModel,
			ProcessingTimeMs: 7,
			ClassifiedAt:     time.Now().UTC(),
		},
	}

	history := BuildHistory(result, "1.2.0")

	assert.Equal(t, "c-5", history.ComplaintID)
	assert.Equal(t, "my landlord kept my deposit", history.QueryText)
	assert.Equal(t, []string{"TPA-108"}, history.SectionNumbers)
	assert.Equal(t, "1.2.0", history.ClassifierVersion)
	assert.Equal(t, 7, history.ProcessingTimeMs)
}
