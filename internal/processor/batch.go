// Package processor runs complaint classification in the background: a
// worker-pool batch processor, an archive poller, and the nightly
// retrainer.
package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/statute"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// defaultConcurrency is the worker pool size when none is configured.
const defaultConcurrency = 10

// BatchProcessor classifies batches of complaints in parallel using a
// worker pool.
type BatchProcessor struct {
	engine      *classifier.Engine
	telemetry   *telemetry.Provider
	concurrency int
	logger      logging.Logger
}

// ProcessResult holds the result of processing a single complaint.
type ProcessResult struct {
	Complaint      *domain.Complaint
	Classification *domain.Classification
	Classified     *domain.ClassifiedComplaint
	Err            error
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(engine *classifier.Engine, tp *telemetry.Provider, concurrency int, logger logging.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		engine:      engine,
		telemetry:   tp,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Process classifies a batch of complaints using the worker pool.
func (b *BatchProcessor) Process(ctx context.Context, complaints []*domain.Complaint) []*ProcessResult {
	if len(complaints) == 0 {
		return []*ProcessResult{}
	}

	b.logger.Info("Starting batch processing",
		logging.Int("batch_size", len(complaints)),
		logging.Int("concurrency", b.concurrency),
	)

	startTime := time.Now()
	b.telemetry.RecordBatchSize(len(complaints))
	b.telemetry.SetQueueDepth(len(complaints))
	b.telemetry.SetActiveWorkers(b.concurrency)
	defer func() {
		b.telemetry.SetQueueDepth(0)
		b.telemetry.SetActiveWorkers(0)
	}()

	jobs := make(chan *domain.Complaint, len(complaints))
	results := make(chan *ProcessResult, len(complaints))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for _, complaint := range complaints {
		jobs <- complaint
	}
	close(jobs)

	wg.Wait()
	close(results)

	processResults := make([]*ProcessResult, 0, len(complaints))
	for result := range results {
		processResults = append(processResults, result)
	}

	duration := time.Since(startTime)
	var successCount, errorCount int
	for _, result := range processResults {
		if result.Err == nil {
			successCount++
		} else {
			errorCount++
		}
	}

	b.logger.Info("Batch processing complete",
		logging.Int("total", len(complaints)),
		logging.Int("success", successCount),
		logging.Int("errors", errorCount),
		logging.Int64("duration_ms", duration.Milliseconds()),
	)

	return processResults
}

// worker processes complaints from the jobs channel.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan *domain.Complaint,
	results chan<- *ProcessResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for complaint := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("Worker stopping due to context cancellation", logging.Int("worker_id", id))
			b.telemetry.IncrementWorkDropped()
			results <- &ProcessResult{Complaint: complaint, Err: ctx.Err()}
			continue
		default:
		}

		results <- b.processComplaint(ctx, complaint)
	}
}

// processComplaint classifies a single complaint.
func (b *BatchProcessor) processComplaint(ctx context.Context, complaint *domain.Complaint) *ProcessResult {
	result := &ProcessResult{Complaint: complaint}

	classification, err := b.engine.ClassifyComplaint(ctx, complaint)
	if err != nil {
		result.Err = fmt.Errorf("classification failed: %w", err)
		b.telemetry.RecordComplaintFailed(ctx, complaint.Channel, "classification_error")
		b.logger.Error("Failed to classify complaint",
			logging.String("complaint_id", complaint.ID),
			logging.Error(err),
		)
		return result
	}

	result.Classification = classification
	result.Classified = BuildClassified(complaint, classification, b.engine.Version())

	b.telemetry.RecordComplaintProcessed(ctx, complaint.Channel)
	if !complaint.ReceivedAt.IsZero() {
		b.telemetry.RecordClassificationLag(ctx, complaint.ReceivedAt)
	}

	b.logger.Debug("Complaint processed",
		logging.String("complaint_id", complaint.ID),
		logging.String("domain", classification.Domain),
		logging.Float64("confidence", classification.Confidence),
	)

	return result
}

// BuildClassified flattens a complaint and its classification into the
// archive document.
func BuildClassified(complaint *domain.Complaint, classification *domain.Classification, classifierVersion string) *domain.ClassifiedComplaint {
	classified := &domain.ClassifiedComplaint{
		Complaint:            *complaint,
		Domain:               classification.Domain,
		Subdomain:            classification.Subdomain,
		Confidence:           classification.Confidence,
		Sections:             classification.Sections,
		Articles:             classification.Articles,
		ClassifierVersion:    classifierVersion,
		ClassificationMethod: classification.Method,
		ModelVersion:         classification.ModelVersion,
	}

	classified.ClassificationStatus = domain.StatusClassified
	classifiedAt := classification.ClassifiedAt
	if classifiedAt.IsZero() {
		classifiedAt = time.Now().UTC()
	}
	classified.ClassifiedAt = &classifiedAt

	return classified
}

// BuildHistory converts a successful process result into a history record.
func BuildHistory(result *ProcessResult, classifierVersion string) *domain.ClassificationHistory {
	c := result.Classification
	return &domain.ClassificationHistory{
		ComplaintID:          result.Complaint.ID,
		QueryText:            result.Complaint.Text,
		Domain:               c.Domain,
		Subdomain:            c.Subdomain,
		Confidence:           c.Confidence,
		SectionNumbers:       statute.SectionNumbers(c.Sections),
		ClassifierVersion:    classifierVersion,
		ClassificationMethod: c.Method,
		ModelVersion:         c.ModelVersion,
		ProcessingTimeMs:     int(c.ProcessingTimeMs),
		ClassifiedAt:         c.ClassifiedAt,
	}
}

// Concurrency returns the worker pool size.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
