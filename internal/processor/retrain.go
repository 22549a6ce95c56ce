package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

// FeedbackReader supplies the accumulated feedback used to augment the
// training corpus.
type FeedbackReader interface {
	ListFeedback(ctx context.Context) ([]domain.FeedbackRecord, error)
}

// Retrainer periodically rebuilds the classification models from the
// built-in corpus plus positively confirmed queries. The engine swaps
// models atomically, so in-flight classifications are unaffected.
type Retrainer struct {
	engine   *classifier.Engine
	feedback FeedbackReader
	logger   logging.Logger
	cron     *cron.Cron
	schedule string
}

// NewRetrainer creates a retrainer with the given cron schedule.
func NewRetrainer(engine *classifier.Engine, feedback FeedbackReader, schedule string, logger logging.Logger) *Retrainer {
	return &Retrainer{
		engine:   engine,
		feedback: feedback,
		logger:   logger,
		cron:     cron.New(cron.WithLogger(logging.NewCronAdapter(logger))),
		schedule: schedule,
	}
}

// Start registers the retrain job and starts the scheduler.
func (r *Retrainer) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		if runErr := r.RunOnce(ctx); runErr != nil {
			r.logger.Error("Scheduled retrain failed", logging.Error(runErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retrain: %w", err)
	}

	r.cron.Start()
	r.logger.Info("Retrainer started", logging.String("schedule", r.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (r *Retrainer) Stop() {
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
	r.logger.Info("Retrainer stopped")
}

// RunOnce rebuilds the models immediately. The previous model stays live
// if training fails.
func (r *Retrainer) RunOnce(ctx context.Context) error {
	examples, augmented := r.buildCorpus(ctx)

	r.logger.Info("Retraining models",
		logging.Int("examples", len(examples)),
		logging.Int("from_feedback", augmented),
	)

	if !r.engine.Retrain(ctx, examples) {
		return errors.New("retrain rejected, keeping previous model")
	}

	r.logger.Info("Retrain complete", logging.String("model_version", r.engine.ModelVersion()))
	return nil
}

// buildCorpus merges the built-in corpus with positively confirmed
// queries. It returns the examples and how many came from feedback.
func (r *Retrainer) buildCorpus(ctx context.Context) ([]domain.TrainingExample, int) {
	examples := data.TrainingCorpus()

	if r.feedback == nil {
		return examples, 0
	}

	records, err := r.feedback.ListFeedback(ctx)
	if err != nil {
		r.logger.Warn("Failed to load feedback for retraining, using base corpus", logging.Error(err))
		return examples, 0
	}

	seen := make(map[string]bool, len(examples))
	for _, ex := range examples {
		seen[corpusKey(ex.Domain, ex.Text)] = true
	}

	var augmented int
	for _, record := range records {
		// Only positively confirmed, valid-domain queries become training
		// signal; negative feedback already lowered their confidence.
		if record.Sentiment != domain.SentimentPositive {
			continue
		}
		if !data.IsValidDomain(record.Domain) {
			continue
		}

		key := corpusKey(record.Domain, record.NormalizedQuery)
		if seen[key] {
			continue
		}
		seen[key] = true

		examples = append(examples, domain.TrainingExample{
			Text:   record.QueryText,
			Domain: record.Domain,
		})
		augmented++
	}

	return examples, augmented
}

func corpusKey(dom, text string) string {
	return dom + "\x00" + strings.ToLower(strings.TrimSpace(text))
}
