package classifier

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// Sentiment phrase lists. Negative phrases are checked first: "not helpful"
// contains "helpful" as a substring, so reversing the order would misread
// negative feedback as positive.
var (
	negativeFeedbackPhrases = []string{
		"not helpful", "not correct", "not right", "not useful", "not good",
		"wrong", "incorrect", "unhelpful", "useless", "bad", "irrelevant",
		"makes no sense", "doesn t match",
	}

	positiveFeedbackPhrases = []string{
		"helpful", "correct", "right", "useful", "good", "accurate",
		"relevant", "thank", "perfect", "exactly",
	}
)

// FeedbackStore persists individual feedback events. A nil store keeps
// feedback in memory only.
type FeedbackStore interface {
	SaveFeedback(ctx context.Context, record *domain.FeedbackRecord) error
	ListFeedback(ctx context.Context) ([]domain.FeedbackRecord, error)
}

// feedbackAggregate accumulates the feedback history for one normalized
// query.
type feedbackAggregate struct {
	domain        string
	feedbackCount int
	positiveCount int
	negativeCount int
}

// positiveRatio is the fraction of all feedback that was positive. Neutral
// feedback counts toward the total, pulling the ratio down.
func (a *feedbackAggregate) positiveRatio() float64 {
	if a.feedbackCount == 0 {
		return 0
	}
	return float64(a.positiveCount) / float64(a.feedbackCount)
}

// FeedbackAdjuster tunes classification confidence from user feedback.
// History is keyed on the exact normalized query, so only repeats of the
// same complaint benefit; paraphrases start fresh. Aggregates live in
// memory guarded by a mutex, with individual events written through to the
// store.
type FeedbackAdjuster struct {
	mu      sync.RWMutex
	records map[string]*feedbackAggregate

	store  FeedbackStore
	logger logging.Logger
}

// NewFeedbackAdjuster creates an adjuster with an empty history.
func NewFeedbackAdjuster(store FeedbackStore, logger logging.Logger) *FeedbackAdjuster {
	return &FeedbackAdjuster{
		records: make(map[string]*feedbackAggregate),
		store:   store,
		logger:  logger,
	}
}

// Load rebuilds the in-memory aggregates from persisted feedback events.
// Called once at startup; safe to skip when the store is nil.
func (f *FeedbackAdjuster) Load(ctx context.Context) error {
	if f.store == nil {
		return nil
	}
	events, err := f.store.ListFeedback(ctx)
	if err != nil {
		return fmt.Errorf("load feedback history: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = make(map[string]*feedbackAggregate, len(events))
	for i := range events {
		agg := f.aggregateLocked(events[i].NormalizedQuery, events[i].Domain)
		applySentiment(agg, events[i].Sentiment)
	}

	f.logger.Info("Feedback history loaded",
		logging.Int("events", len(events)),
		logging.Int("queries", len(f.records)),
	)
	return nil
}

// RecordFeedback classifies the feedback text and folds it into the query's
// history. Never fails the caller: persistence errors are logged and the
// in-memory state still updates.
func (f *FeedbackAdjuster) RecordFeedback(ctx context.Context, query, dom string, confidence float64, feedbackText string) {
	normalized := textnorm.Normalize(query)
	sentiment := classifySentiment(feedbackText)

	f.mu.Lock()
	agg := f.aggregateLocked(normalized, dom)
	applySentiment(agg, sentiment)
	ratio := agg.positiveRatio()
	f.mu.Unlock()

	f.logger.Debug("Feedback recorded",
		logging.String("normalized_query", normalized),
		logging.String("domain", dom),
		logging.String("sentiment", sentiment),
		logging.Float64("positive_ratio", ratio),
	)

	if f.store == nil {
		return
	}
	record := &domain.FeedbackRecord{
		QueryText:       query,
		NormalizedQuery: normalized,
		Domain:          dom,
		Confidence:      confidence,
		FeedbackText:    feedbackText,
		Sentiment:       sentiment,
		PositiveRatio:   ratio,
		Adjustment:      adjustmentFor(ratio),
		CreatedAt:       time.Now().UTC(),
	}
	if err := f.store.SaveFeedback(ctx, record); err != nil {
		f.logger.Warn("Failed to persist feedback",
			logging.String("normalized_query", normalized),
			logging.Error(err),
		)
	}
}

// AdjustedConfidence applies the query's feedback history to a base
// confidence. Queries with no history pass through unchanged. The result is
// always clamped to [0, 1].
func (f *FeedbackAdjuster) AdjustedConfidence(query string, baseConfidence float64) float64 {
	normalized := textnorm.Normalize(query)

	f.mu.RLock()
	agg, ok := f.records[normalized]
	var ratio float64
	if ok {
		ratio = agg.positiveRatio()
	}
	f.mu.RUnlock()

	if !ok {
		return clampUnit(baseConfidence)
	}
	return clampUnit(baseConfidence + adjustmentFor(ratio))
}

// QueryCount returns how many distinct normalized queries have feedback.
func (f *FeedbackAdjuster) QueryCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.records)
}

// TotalFeedback returns the total number of feedback events recorded.
func (f *FeedbackAdjuster) TotalFeedback() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	total := 0
	for _, agg := range f.records {
		total += agg.feedbackCount
	}
	return total
}

// aggregateLocked returns the aggregate for a normalized query, creating it
// if absent. Caller holds f.mu.
func (f *FeedbackAdjuster) aggregateLocked(normalizedQuery, dom string) *feedbackAggregate {
	agg, ok := f.records[normalizedQuery]
	if !ok {
		agg = &feedbackAggregate{domain: dom}
		f.records[normalizedQuery] = agg
	}
	return agg
}

// applySentiment increments the aggregate counters for one event.
func applySentiment(agg *feedbackAggregate, sentiment string) {
	agg.feedbackCount++
	switch sentiment {
	case domain.SentimentPositive:
		agg.positiveCount++
	case domain.SentimentNegative:
		agg.negativeCount++
	}
}

// adjustmentFor converts a positive ratio into a signed confidence delta.
// An exactly balanced history adjusts nothing.
func adjustmentFor(ratio float64) float64 {
	switch {
	case ratio > feedbackNeutralRatio:
		delta := ratio * positiveAdjustmentRate
		if delta > maxPositiveAdjustment {
			delta = maxPositiveAdjustment
		}
		return delta
	case ratio < feedbackNeutralRatio:
		delta := (1 - ratio) * negativeAdjustmentRate
		if delta > maxNegativeAdjustment {
			delta = maxNegativeAdjustment
		}
		return -delta
	default:
		return 0
	}
}

// classifySentiment buckets feedback text by phrase lists, negative first.
func classifySentiment(feedbackText string) string {
	text := textnorm.Normalize(feedbackText)
	if text == "" {
		return domain.SentimentNeutral
	}
	for _, phrase := range negativeFeedbackPhrases {
		if strings.Contains(text, phrase) {
			return domain.SentimentNegative
		}
	}
	for _, phrase := range positiveFeedbackPhrases {
		if strings.Contains(text, phrase) {
			return domain.SentimentPositive
		}
	}
	return domain.SentimentNeutral
}

// clampUnit clamps to the [0, 1] confidence range.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
