package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/database"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/processor"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// PatternStore persists scenario patterns.
type PatternStore interface {
	Create(ctx context.Context, pattern *domain.ScenarioPattern) error
	GetByID(ctx context.Context, id int) (*domain.ScenarioPattern, error)
	List(ctx context.Context, enabled *bool) ([]*domain.ScenarioPattern, error)
	Update(ctx context.Context, pattern *domain.ScenarioPattern) error
	Delete(ctx context.Context, id int) error
}

// HistoryStore persists and queries classification history.
type HistoryStore interface {
	Create(ctx context.Context, history *domain.ClassificationHistory) error
	CreateBatch(ctx context.Context, records []*domain.ClassificationHistory) error
	GetByComplaintID(ctx context.Context, complaintID string) (*domain.ClassificationHistory, error)
	List(ctx context.Context, limit int) ([]*domain.ClassificationHistory, error)
	GetStats(ctx context.Context) (*database.HistoryStats, error)
}

// Archiver stores classified complaints in the long-term archive.
type Archiver interface {
	Archive(ctx context.Context, classified *domain.ClassifiedComplaint) error
}

// Handler handles HTTP requests for the classifier API.
type Handler struct {
	engine   *classifier.Engine
	batch    *processor.BatchProcessor
	patterns PatternStore
	history  HistoryStore
	archive  Archiver // nil when Elasticsearch is disabled
	logger   logging.Logger
	service  string
	version  string
}

// NewHandler creates a new API handler. archive may be nil when the archive
// backend is disabled.
func NewHandler(
	engine *classifier.Engine,
	batch *processor.BatchProcessor,
	patterns PatternStore,
	history HistoryStore,
	archive Archiver,
	logger logging.Logger,
	service, version string,
) *Handler {
	return &Handler{
		engine:   engine,
		batch:    batch,
		patterns: patterns,
		history:  history,
		archive:  archive,
		logger:   logger,
		service:  service,
		version:  version,
	}
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint := complaintFromRequest(&req)

	h.logger.Info("Classifying complaint",
		logging.String("complaint_id", complaint.ID),
		logging.Int("word_count", complaint.WordCount),
	)

	result, err := h.engine.ClassifyComplaint(c.Request.Context(), complaint)
	if err != nil {
		h.logger.Error("Classification failed",
			logging.String("complaint_id", complaint.ID),
			logging.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ClassifyResponse{
			Error: err.Error(),
		})
		return
	}

	h.recordClassification(c.Request.Context(), complaint, result)

	h.logger.Info("Complaint classified",
		logging.String("complaint_id", complaint.ID),
		logging.String("domain", result.Domain),
		logging.Float64("confidence", result.Confidence),
	)

	c.JSON(http.StatusOK, ClassifyResponse{
		Result: result,
	})
}

// ClassifyBatch handles POST /api/v1/classify/batch
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, complaint := range req.Complaints {
		stampComplaint(complaint)
	}

	h.logger.Info("Batch classifying complaints", logging.Int("batch_size", len(req.Complaints)))

	results := h.batch.Process(c.Request.Context(), req.Complaints)

	items := make([]BatchItemResult, len(results))
	records := make([]*domain.ClassificationHistory, 0, len(results))
	success := 0
	failed := 0
	for i, result := range results {
		items[i] = BatchItemResult{ComplaintID: result.Complaint.ID}
		if result.Err != nil {
			items[i].Error = result.Err.Error()
			failed++
			continue
		}
		items[i].Result = result.Classification
		records = append(records, processor.BuildHistory(result, h.engine.Version()))
		success++
	}

	if len(records) > 0 {
		if err := h.history.CreateBatch(c.Request.Context(), records); err != nil {
			// History is advisory; the classification response still stands.
			h.logger.Warn("Failed to save batch classification history", logging.Error(err))
		}
	}

	h.logger.Info("Batch classification completed",
		logging.Int("total", len(results)),
		logging.Int("success", success),
		logging.Int("failed", failed),
	)

	c.JSON(http.StatusOK, BatchClassifyResponse{
		Results: items,
		Total:   len(items),
		Success: success,
		Failed:  failed,
	})
}

// Feedback handles POST /api/v1/feedback
func (h *Handler) Feedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid feedback request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !data.IsValidDomain(req.Domain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown domain: " + req.Domain})
		return
	}

	h.engine.RecordFeedback(c.Request.Context(), req.Query, req.Domain, req.Confidence, req.Feedback)

	h.logger.Info("Feedback recorded", logging.String("domain", req.Domain))

	c.Status(http.StatusNoContent)
}

// ListDomains handles GET /api/v1/domains
func (h *Handler) ListDomains(c *gin.Context) {
	domains := data.Domains()

	infos := make([]DomainInfo, len(domains))
	for i, d := range domains {
		infos[i] = DomainInfo{
			Domain:     d,
			Subdomains: data.SubdomainsFor(d),
		}
	}

	c.JSON(http.StatusOK, DomainsResponse{
		Domains: infos,
		Total:   len(infos),
	})
}

// ListPatterns handles GET /api/v1/patterns
func (h *Handler) ListPatterns(c *gin.Context) {
	h.logger.Debug("Listing scenario patterns")

	patterns, err := h.patterns.List(c.Request.Context(), nil)
	if err != nil {
		h.logger.Error("Failed to list patterns", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load patterns"})
		return
	}

	response := make([]PatternResponse, len(patterns))
	for i, pattern := range patterns {
		response[i] = toPatternResponse(pattern)
	}

	c.JSON(http.StatusOK, PatternsListResponse{
		Patterns: response,
		Total:    len(response),
	})
}

// CreatePattern handles POST /api/v1/patterns
func (h *Handler) CreatePattern(c *gin.Context) {
	var req CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid create pattern request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !data.IsValidDomain(req.Domain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown domain: " + req.Domain})
		return
	}

	h.logger.Info("Creating scenario pattern", logging.String("name", req.Name))

	pattern := &domain.ScenarioPattern{
		Name:            req.Name,
		Phrases:         req.Phrases,
		Domain:          req.Domain,
		Subdomain:       req.Subdomain,
		FixedConfidence: req.FixedConfidence,
		SectionNumbers:  req.SectionNumbers,
		Enabled:         req.Enabled,
		Priority:        priorityStringToInt(req.Priority),
	}

	if err := h.patterns.Create(c.Request.Context(), pattern); err != nil {
		h.logger.Error("Failed to create pattern", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pattern"})
		return
	}

	h.reloadEnginePatterns(c.Request.Context())

	h.logger.Info("Pattern created",
		logging.Int("id", pattern.ID),
		logging.String("name", pattern.Name),
	)

	c.JSON(http.StatusCreated, toPatternResponse(pattern))
}

// UpdatePattern handles PUT /api/v1/patterns/:id
func (h *Handler) UpdatePattern(c *gin.Context) {
	patternID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
		return
	}

	var req CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid update pattern request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !data.IsValidDomain(req.Domain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown domain: " + req.Domain})
		return
	}

	h.logger.Info("Updating scenario pattern",
		logging.Int("id", patternID),
		logging.String("name", req.Name),
	)

	pattern, err := h.patterns.GetByID(c.Request.Context(), patternID)
	if err != nil {
		h.logger.Warn("Pattern not found", logging.Int("id", patternID), logging.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Pattern not found"})
		return
	}

	pattern.Name = req.Name
	pattern.Phrases = req.Phrases
	pattern.Domain = req.Domain
	pattern.Subdomain = req.Subdomain
	pattern.FixedConfidence = req.FixedConfidence
	pattern.SectionNumbers = req.SectionNumbers
	pattern.Priority = priorityStringToInt(req.Priority)
	pattern.Enabled = req.Enabled

	if err := h.patterns.Update(c.Request.Context(), pattern); err != nil {
		h.logger.Error("Failed to update pattern", logging.Int("id", patternID), logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pattern"})
		return
	}

	h.reloadEnginePatterns(c.Request.Context())

	h.logger.Info("Pattern updated", logging.Int("id", patternID))

	c.JSON(http.StatusOK, toPatternResponse(pattern))
}

// DeletePattern handles DELETE /api/v1/patterns/:id
func (h *Handler) DeletePattern(c *gin.Context) {
	patternID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
		return
	}

	h.logger.Info("Deleting scenario pattern", logging.Int("id", patternID))

	if err := h.patterns.Delete(c.Request.Context(), patternID); err != nil {
		h.logger.Error("Failed to delete pattern", logging.Int("id", patternID), logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pattern"})
		return
	}

	h.reloadEnginePatterns(c.Request.Context())

	h.logger.Info("Pattern deleted", logging.Int("id", patternID))

	c.JSON(http.StatusOK, gin.H{"message": "Pattern deleted successfully"})
}

// MatchPatterns handles POST /api/v1/patterns/match. It reports which
// patterns a text would trigger without classifying it.
func (h *Handler) MatchPatterns(c *gin.Context) {
	var req MatchPatternsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid match patterns request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched := h.engine.MatchedPatterns(req.Text)

	matches := make([]PatternResponse, len(matched))
	for i := range matched {
		matches[i] = toPatternResponse(&matched[i])
	}

	c.JSON(http.StatusOK, MatchPatternsResponse{
		Matches: matches,
		Total:   len(matches),
	})
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	h.logger.Debug("Getting classification stats")

	engineStats := h.engine.Stats()

	response := StatsResponse{
		Trained:         engineStats.Trained,
		ModelVersion:    engineStats.ModelVersion,
		Domains:         engineStats.Domains,
		PatternCount:    engineStats.PatternCount,
		SubdomainModels: len(engineStats.SubdomainModels),
		FeedbackQueries: engineStats.FeedbackQueries,
		FeedbackTotal:   engineStats.FeedbackTotal,
		CacheEntries:    engineStats.CacheEntries,
	}

	historyStats, err := h.history.GetStats(c.Request.Context())
	if err != nil {
		// Return engine stats alone instead of an error to avoid breaking
		// the dashboard.
		h.logger.Error("Failed to get history stats", logging.Error(err))
		c.JSON(http.StatusOK, response)
		return
	}

	response.TotalClassified = historyStats.TotalClassified
	response.AvgConfidence = historyStats.AvgConfidence
	response.AvgProcessingTimeMs = historyStats.AvgProcessingTimeMs
	response.ByDomain = historyStats.ByDomain

	c.JSON(http.StatusOK, response)
}

// GetHistory handles GET /api/v1/history/:complaint_id
func (h *Handler) GetHistory(c *gin.Context) {
	complaintID := c.Param("complaint_id")
	if complaintID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint_id is required"})
		return
	}

	record, err := h.history.GetByComplaintID(c.Request.Context(), complaintID)
	if err != nil {
		h.logger.Warn("History not found",
			logging.String("complaint_id", complaintID),
			logging.Error(err),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "History not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListHistory handles GET /api/v1/history
func (h *Handler) ListHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 && l <= maxHistoryLimit {
			limit = l
		}
	}

	records, err := h.history.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list history", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, HistoryListResponse{
		History: records,
		Total:   len(records),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
		"version": h.version,
	})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	archive := "disabled"
	if h.archive != nil {
		archive = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{
			"model":   h.engine.Trained(),
			"archive": archive,
		},
	})
}

// recordClassification saves history and archives the classified complaint.
// Both are advisory; failures are logged and the response still stands.
func (h *Handler) recordClassification(ctx context.Context, complaint *domain.Complaint, result *domain.Classification) {
	processResult := &processor.ProcessResult{
		Complaint:      complaint,
		Classification: result,
	}

	if err := h.history.Create(ctx, processor.BuildHistory(processResult, h.engine.Version())); err != nil {
		h.logger.Warn("Failed to save classification history",
			logging.String("complaint_id", complaint.ID),
			logging.Error(err),
		)
	}

	if h.archive == nil {
		return
	}

	classified := processor.BuildClassified(complaint, result, h.engine.Version())
	if err := h.archive.Archive(ctx, classified); err != nil {
		h.logger.Warn("Failed to archive classified complaint",
			logging.String("complaint_id", complaint.ID),
			logging.Error(err),
		)
	}
}

// reloadEnginePatterns reloads enabled scenario patterns from the database
// into the engine. Called after every pattern CRUD operation so the override
// layer always matches what the dashboard shows.
func (h *Handler) reloadEnginePatterns(ctx context.Context) {
	patterns, err := h.patterns.List(ctx, ptr(true))
	if err != nil {
		h.logger.Error("Failed to reload patterns from database", logging.Error(err))
		return
	}

	loaded := make([]domain.ScenarioPattern, len(patterns))
	for i, pattern := range patterns {
		loaded[i] = *pattern
	}
	h.engine.UpdatePatterns(loaded)

	h.logger.Info("Scenario patterns reloaded", logging.Int("count", len(loaded)))
}

// complaintFromRequest builds a pending complaint from a classify request,
// assigning an ID when the caller did not supply one.
func complaintFromRequest(req *ClassifyRequest) *domain.Complaint {
	complaint := &domain.Complaint{
		ID:       req.ComplaintID,
		Channel:  req.Channel,
		Text:     req.Text,
		Language: req.Language,
	}
	stampComplaint(complaint)
	return complaint
}

// stampComplaint fills in the fields a caller may omit.
func stampComplaint(complaint *domain.Complaint) {
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	if complaint.ReceivedAt.IsZero() {
		complaint.ReceivedAt = time.Now().UTC()
	}
	if complaint.ClassificationStatus == "" {
		complaint.ClassificationStatus = domain.StatusPending
	}
	if complaint.WordCount == 0 {
		complaint.WordCount = len(strings.Fields(complaint.Text))
	}
}
