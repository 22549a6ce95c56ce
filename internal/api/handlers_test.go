package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/database"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/processor"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// The telemetry provider registers collectors in the global Prometheus
// registry, so the package shares a single instance across tests.
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

// mockPatternStore is an in-memory PatternStore.
type mockPatternStore struct {
	mu       sync.Mutex
	patterns map[int]*domain.ScenarioPattern
	nextID   int
	listErr  error
}

func newMockPatternStore() *mockPatternStore {
	return &mockPatternStore{
		patterns: make(map[int]*domain.ScenarioPattern),
		nextID:   1,
	}
}

func (m *mockPatternStore) Create(_ context.Context, pattern *domain.ScenarioPattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pattern.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	pattern.CreatedAt = now
	pattern.UpdatedAt = now
	clone := *pattern
	m.patterns[pattern.ID] = &clone
	return nil
}

func (m *mockPatternStore) GetByID(_ context.Context, id int) (*domain.ScenarioPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pattern, ok := m.patterns[id]
	if !ok {
		return nil, fmt.Errorf("pattern not found: %d", id)
	}
	clone := *pattern
	return &clone, nil
}

func (m *mockPatternStore) List(_ context.Context, enabled *bool) ([]*domain.ScenarioPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.ScenarioPattern, 0, len(m.patterns))
	for _, pattern := range m.patterns {
		if enabled != nil && pattern.Enabled != *enabled {
			continue
		}
		clone := *pattern
		out = append(out, &clone)
	}
	return out, nil
}

func (m *mockPatternStore) Update(_ context.Context, pattern *domain.ScenarioPattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.patterns[pattern.ID]; !ok {
		return fmt.Errorf("pattern not found: %d", pattern.ID)
	}
	pattern.UpdatedAt = time.Now().UTC()
	clone := *pattern
	m.patterns[pattern.ID] = &clone
	return nil
}

func (m *mockPatternStore) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.patterns, id)
	return nil
}

// mockHistoryStore is an in-memory HistoryStore.
type mockHistoryStore struct {
	mu       sync.Mutex
	records  []*domain.ClassificationHistory
	statsErr error
}

func (m *mockHistoryStore) Create(_ context.Context, history *domain.ClassificationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, history)
	return nil
}

func (m *mockHistoryStore) CreateBatch(_ context.Context, records []*domain.ClassificationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, records...)
	return nil
}

func (m *mockHistoryStore) GetByComplaintID(_ context.Context, complaintID string) (*domain.ClassificationHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].ComplaintID == complaintID {
			return m.records[i], nil
		}
	}
	return nil, fmt.Errorf("no history for complaint: %s", complaintID)
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]*domain.ClassificationHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockHistoryStore) GetStats(_ context.Context) (*database.HistoryStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	stats := &database.HistoryStats{
		TotalClassified: len(m.records),
		ByDomain:        make(map[string]int),
	}
	for _, record := range m.records {
		stats.AvgConfidence += record.Confidence
		stats.ByDomain[record.Domain]++
	}
	if len(m.records) > 0 {
		stats.AvgConfidence /= float64(len(m.records))
	}
	return stats, nil
}

func (m *mockHistoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type testFixture struct {
	router   *gin.Engine
	engine   *classifier.Engine
	patterns *mockPatternStore
	history  *mockHistoryStore
}

func setupTestRouter(t *testing.T) *testFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := classifier.NewEngine(logging.NewNop(), nil, nil, nil, classifier.Config{Version: "test"})
	require.NoError(t, err)
	require.True(t, engine.Retrain(context.Background(), data.TrainingCorpus()))

	patterns := newMockPatternStore()
	history := &mockHistoryStore{}

	batch := processor.NewBatchProcessor(engine, getTestProvider(), 2, logging.NewNop())
	handler := NewHandler(engine, batch, patterns, history, nil, logging.NewNop(), "classifier", "test")

	router := gin.New()
	SetupRoutes(router, handler, getTestProvider())

	return &testFixture{
		router:   router,
		engine:   engine,
		patterns: patterns,
		history:  history,
	}
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClassify(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify", ClassifyRequest{
		Text: "my husband beats me daily",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, domain.DomainFamilyLaw, resp.Result.Domain)
	assert.NotEmpty(t, resp.Result.ComplaintID)

	// Classification writes a history record.
	assert.Equal(t, 1, fixture.history.count())
}

func TestClassify_InvalidRequest(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify", gin.H{"channel": "web"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyBatch(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify/batch", BatchClassifyRequest{
		Complaints: []*domain.Complaint{
			{ID: "c-1", Text: "someone hacked my online banking account"},
			{ID: "c-2", Text: "my boss is not giving my salary"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp BatchClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Success)
	assert.Equal(t, 0, resp.Failed)

	assert.Equal(t, 2, fixture.history.count())
}

func TestClassifyBatch_EmptyRejected(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify/batch", BatchClassifyRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedback(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/feedback", FeedbackRequest{
		Query:      "my phone was stolen at the airport",
		Domain:     domain.DomainCriminalLaw,
		Confidence: 0.8,
		Feedback:   "correct, thank you",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Positive(t, fixture.engine.Stats().FeedbackTotal)
}

func TestFeedback_UnknownDomain(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/feedback", FeedbackRequest{
		Query:      "some complaint",
		Domain:     "space_law",
		Confidence: 0.8,
		Feedback:   "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDomains(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodGet, "/api/v1/domains", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp DomainsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(data.Domains()), resp.Total)
	for _, info := range resp.Domains {
		assert.NotEmpty(t, info.Subdomains, "domain %s has no subdomains", info.Domain)
	}
}

func TestPatternCRUD(t *testing.T) {
	fixture := setupTestRouter(t)

	createReq := CreatePatternRequest{
		Name:            "gas_cylinder_blast",
		Phrases:         []string{"gas cylinder", "blast"},
		Domain:          domain.DomainConsumerLaw,
		Subdomain:       "defective_products",
		FixedConfidence: 0.9,
		SectionNumbers:  []string{"84"},
		Priority:        "high",
		Enabled:         true,
	}

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/patterns", createReq)
	require.Equal(t, http.StatusCreated, w.Code)

	var created PatternResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "gas_cylinder_blast", created.Name)
	assert.Equal(t, "high", created.Priority)

	// The engine override layer picks the pattern up immediately.
	matched := fixture.engine.MatchedPatterns("my gas cylinder exploded in a blast yesterday")
	require.Len(t, matched, 1)
	assert.Equal(t, "gas_cylinder_blast", matched[0].Name)

	// Update demotes the priority.
	createReq.Priority = "low"
	w = performRequest(t, fixture.router, http.MethodPut, fmt.Sprintf("/api/v1/patterns/%d", created.ID), createReq)
	require.Equal(t, http.StatusOK, w.Code)

	var updated PatternResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "low", updated.Priority)

	// List reflects the stored pattern.
	w = performRequest(t, fixture.router, http.MethodGet, "/api/v1/patterns", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list PatternsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	// Delete removes it from the engine as well.
	w = performRequest(t, fixture.router, http.MethodDelete, fmt.Sprintf("/api/v1/patterns/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, fixture.engine.MatchedPatterns("my gas cylinder exploded in a blast yesterday"))
}

func TestCreatePattern_UnknownDomain(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/patterns", CreatePatternRequest{
		Name:            "bad_pattern",
		Phrases:         []string{"something"},
		Domain:          "space_law",
		FixedConfidence: 0.9,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePattern_NotFound(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPut, "/api/v1/patterns/99", CreatePatternRequest{
		Name:            "missing",
		Phrases:         []string{"something"},
		Domain:          domain.DomainCriminalLaw,
		FixedConfidence: 0.9,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchPatterns(t *testing.T) {
	fixture := setupTestRouter(t)

	fixture.engine.UpdatePatterns([]domain.ScenarioPattern{
		{
			Name:            "chain_snatching",
			Phrases:         []string{"chain", "snatched"},
			Domain:          domain.DomainCriminalLaw,
			Subdomain:       "theft",
			FixedConfidence: 0.9,
			Enabled:         true,
			Priority:        10,
		},
	})

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/patterns/match", MatchPatternsRequest{
		Text: "two men on a bike snatched my gold chain",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp MatchPatternsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "chain_snatching", resp.Matches[0].Name)
}

func TestGetStats(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify", ClassifyRequest{
		Text: "my husband beats me daily",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, fixture.router, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Trained)
	assert.Equal(t, len(data.Domains()), resp.Domains)
	assert.Equal(t, 1, resp.TotalClassified)
	assert.Positive(t, resp.AvgConfidence)
}

func TestGetStats_HistoryFailureDegrades(t *testing.T) {
	fixture := setupTestRouter(t)
	fixture.history.statsErr = fmt.Errorf("database gone")

	w := performRequest(t, fixture.router, http.MethodGet, "/api/v1/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Trained)
	assert.Zero(t, resp.TotalClassified)
}

func TestHistoryEndpoints(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodPost, "/api/v1/classify", ClassifyRequest{
		ComplaintID: "complaint-42",
		Text:        "someone hacked my online banking account",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, fixture.router, http.MethodGet, "/api/v1/history/complaint-42", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record domain.ClassificationHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "complaint-42", record.ComplaintID)
	assert.Equal(t, domain.DomainCyberCrime, record.Domain)

	w = performRequest(t, fixture.router, http.MethodGet, "/api/v1/history/no-such-complaint", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, fixture.router, http.MethodGet, "/api/v1/history?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list HistoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestHealthAndReady(t *testing.T) {
	fixture := setupTestRouter(t)

	w := performRequest(t, fixture.router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "classifier", health["service"])

	w = performRequest(t, fixture.router, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
