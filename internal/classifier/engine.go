package classifier

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/statute"
	"github.com/nyayasetu/classifier/internal/telemetry"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// defaultCacheSize bounds the normalized-query result cache.
const defaultCacheSize = 1024

// Config holds configuration for the classification engine
type Config struct {
	Version   string
	CacheSize int

	// UnknownFloor and CommitFloor override the two-tier confidence
	// floors. Zero values keep the defaults.
	UnknownFloor float64
	CommitFloor  float64
}

// Engine runs the full classification pipeline: normalize, statistical
// domain classification, scenario override, subdomain refinement, statute
// and guidance lookup, feedback adjustment. Results are cached by
// normalized query; feedback and retraining invalidate the cache.
type Engine struct {
	domains    *DomainClassifier
	subdomains *SubdomainClassifier
	scenarios  *ScenarioEngine
	keywords   *KeywordScorer
	feedback   *FeedbackAdjuster

	cache     *lru.Cache[string, domain.Classification]
	telemetry *telemetry.Provider
	logger    logging.Logger
	version   string
}

// NewEngine assembles the pipeline. A nil patterns slice loads the builtin
// scenario table; a nil store keeps feedback in memory only. The engine
// starts untrained: call Retrain before serving, or rely on the keyword
// fallback.
func NewEngine(
	logger logging.Logger,
	tp *telemetry.Provider,
	store FeedbackStore,
	patterns []domain.ScenarioPattern,
	cfg Config,
) (*Engine, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, domain.Classification](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	if patterns == nil {
		patterns = builtinPatterns()
	}

	keywords := NewKeywordScorer(logger)
	domains := NewDomainClassifier(logger)
	domains.SetFloors(cfg.UnknownFloor, cfg.CommitFloor)
	return &Engine{
		domains:    domains,
		subdomains: NewSubdomainClassifier(logger),
		scenarios:  NewScenarioEngine(patterns, keywords, logger),
		keywords:   keywords,
		feedback:   NewFeedbackAdjuster(store, logger),
		cache:      cache,
		telemetry:  tp,
		logger:     logger,
		version:    cfg.Version,
	}, nil
}

// Retrain refits the primary and subdomain models from the given corpus and
// purges the result cache. Returns false when the corpus cannot fit a
// primary model; the previous models keep serving in that case.
func (e *Engine) Retrain(ctx context.Context, examples []domain.TrainingExample) bool {
	ok := e.domains.Train(examples)
	subdomainModels := 0
	if ok {
		subdomainModels = e.subdomains.Train(examples)
		e.cache.Purge()
	}
	if e.telemetry != nil {
		e.telemetry.RecordRetrain(ctx, ok, len(examples), subdomainModels)
	}
	return ok
}

// LoadFeedback warms the feedback history from the store.
func (e *Engine) LoadFeedback(ctx context.Context) error {
	return e.feedback.Load(ctx)
}

// ClassifyQuery runs the full pipeline for one free-form complaint text.
// The result is always well-formed: unknown input yields the sentinel
// domain with zero confidence, never an error.
func (e *Engine) ClassifyQuery(ctx context.Context, query string) (*domain.Classification, error) {
	start := time.Now()

	normalized := textnorm.Normalize(query)
	if normalized == "" {
		result := e.emptyResult(start)
		e.logger.Debug("Empty query after normalization")
		return result, nil
	}

	if cached, ok := e.cache.Get(normalized); ok {
		if e.telemetry != nil {
			e.telemetry.RecordCacheHit(ctx)
		}
		return &cached, nil
	}
	if e.telemetry != nil {
		e.telemetry.RecordCacheMiss(ctx)
	}

	domainResult, pattern, method := e.resolveDomain(ctx, normalized)

	result := &domain.Classification{
		Domain:           domainResult.Domain,
		Confidence:       e.feedback.AdjustedConfidence(normalized, domainResult.Confidence),
		Alternatives:     domainResult.Alternatives,
		Method:           method,
		ModelVersion:     e.domains.ModelVersion(),
		ClassifiedAt:     time.Now().UTC(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}

	if !result.IsUnknown() {
		result.Subdomain = e.resolveSubdomain(domainResult.Domain, normalized, pattern)
		result.Sections = e.resolveSections(domainResult.Domain, result.Subdomain, normalized, pattern)
		result.Guidance = statute.GuidanceFor(domainResult.Domain, result.Subdomain)
		result.Articles = statute.ArticlesFor(domainResult.Domain)
	}

	e.cache.Add(normalized, *result)

	if e.telemetry != nil {
		e.telemetry.RecordClassification(ctx, result.Domain, result.Method, result.Confidence, time.Since(start))
		if result.IsUnknown() {
			e.telemetry.RecordUnknown(ctx)
		}
		if pattern != nil {
			e.telemetry.RecordOverride(ctx, pattern.Name)
		}
	}
	e.logClassified(query, result, pattern)

	return result, nil
}

// ClassifyComplaint classifies a stored complaint, stamping its ID into the
// result and recording receipt-to-classification lag.
func (e *Engine) ClassifyComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Classification, error) {
	result, err := e.ClassifyQuery(ctx, complaint.Text)
	if err != nil {
		return nil, err
	}
	result.ComplaintID = complaint.ID
	if e.telemetry != nil && !complaint.ReceivedAt.IsZero() {
		e.telemetry.RecordClassificationLag(ctx, complaint.ReceivedAt)
	}
	return result, nil
}

// ClassifyDomain runs normalization, statistical classification, and the
// override layer, returning the domain-stage result with feedback applied.
func (e *Engine) ClassifyDomain(ctx context.Context, query string) domain.DomainResult {
	normalized := textnorm.Normalize(query)
	if normalized == "" {
		return domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.0}
	}
	result, _, _ := e.resolveDomain(ctx, normalized)
	result.Confidence = e.feedback.AdjustedConfidence(normalized, result.Confidence)
	return result
}

// ClassifySubdomain refines a committed domain for a query. Returns
// ErrUnknownDomain for domains outside the taxonomy.
func (e *Engine) ClassifySubdomain(ctx context.Context, dom, query string) (domain.SubdomainResult, error) {
	return e.subdomains.Classify(dom, textnorm.Normalize(query))
}

// RecordFeedback folds user feedback into the query's history and drops the
// query's cached result so the adjustment applies immediately.
func (e *Engine) RecordFeedback(ctx context.Context, query, dom string, confidence float64, feedbackText string) {
	e.feedback.RecordFeedback(ctx, query, dom, confidence, feedbackText)
	e.cache.Remove(textnorm.Normalize(query))
	if e.telemetry != nil {
		e.telemetry.RecordFeedback(ctx, classifySentiment(feedbackText))
	}
}

// AdjustedConfidence exposes the feedback adjustment for a query.
func (e *Engine) AdjustedConfidence(query string, baseConfidence float64) float64 {
	return e.feedback.AdjustedConfidence(textnorm.Normalize(query), baseConfidence)
}

// UpdatePatterns hot-reloads the scenario table and purges cached results
// that may have depended on the old table.
func (e *Engine) UpdatePatterns(patterns []domain.ScenarioPattern) {
	e.scenarios.UpdatePatterns(patterns)
	e.cache.Purge()
}

// Patterns returns the enabled scenario patterns.
func (e *Engine) Patterns() []domain.ScenarioPattern {
	return e.scenarios.Patterns()
}

// MatchedPatterns reports which patterns fire for a query, for the
// pattern-testing endpoint.
func (e *Engine) MatchedPatterns(query string) []domain.ScenarioPattern {
	return e.scenarios.MatchedPatterns(textnorm.Normalize(query))
}

// Version returns the classifier build version.
func (e *Engine) Version() string {
	return e.version
}

// ModelVersion returns the live statistical model version.
func (e *Engine) ModelVersion() string {
	return e.domains.ModelVersion()
}

// Trained reports whether the primary model is fit.
func (e *Engine) Trained() bool {
	return e.domains.Trained()
}

// Stats summarizes the engine state for the stats endpoint.
type Stats struct {
	Trained         bool     `json:"trained"`
	ModelVersion    string   `json:"model_version,omitempty"`
	Domains         int      `json:"domains"`
	PatternCount    int      `json:"pattern_count"`
	SubdomainModels []string `json:"subdomain_models,omitempty"`
	FeedbackQueries int      `json:"feedback_queries"`
	FeedbackTotal   int      `json:"feedback_total"`
	CacheEntries    int      `json:"cache_entries"`
}

// Stats returns a snapshot of the engine state.
func (e *Engine) Stats() Stats {
	return Stats{
		Trained:         e.domains.Trained(),
		ModelVersion:    e.domains.ModelVersion(),
		Domains:         len(data.Domains()),
		PatternCount:    e.scenarios.PatternCount(),
		SubdomainModels: e.subdomains.TrainedDomains(),
		FeedbackQueries: e.feedback.QueryCount(),
		FeedbackTotal:   e.feedback.TotalFeedback(),
		CacheEntries:    e.cache.Len(),
	}
}

// resolveDomain runs the statistical classifier and the override layer and
// names the method that produced the final label.
func (e *Engine) resolveDomain(ctx context.Context, normalized string) (domain.DomainResult, *domain.ScenarioPattern, string) {
	mlResult, err := e.domains.Classify(normalized)
	trained := true
	if err != nil {
		if !errors.Is(err, ErrNotTrained) {
			e.logger.Warn("Domain classification failed, using override layer only", logging.Error(err))
		}
		trained = false
		mlResult = domain.DomainResult{Domain: domain.DomainUnknown}
	}

	patternStart := time.Now()
	result, pattern := e.scenarios.Resolve(normalized, mlResult)
	if e.telemetry != nil {
		e.telemetry.RecordPatternMatch(ctx, time.Since(patternStart))
	}

	method := domain.MethodMLModel
	switch {
	case pattern != nil && mlResult.Domain != domain.DomainUnknown:
		method = domain.MethodHybrid
	case pattern != nil:
		method = domain.MethodRuleBased
	case mlResult.Domain == domain.DomainUnknown && result.Domain != domain.DomainUnknown:
		// Keyword fallback committed.
		method = domain.MethodRuleBased
	case !trained:
		method = domain.MethodRuleBased
	}
	return result, pattern, method
}

// resolveSubdomain prefers the subdomain pinned by a fired pattern, then
// the second-stage classifier.
func (e *Engine) resolveSubdomain(dom, normalized string, pattern *domain.ScenarioPattern) string {
	if pattern != nil && pattern.Subdomain != "" && pattern.Domain == dom {
		return pattern.Subdomain
	}
	sub, err := e.subdomains.Classify(dom, normalized)
	if err != nil {
		return domain.SubdomainGeneral
	}
	return sub.Subdomain
}

// resolveSections prefers sections pinned by a fired pattern, then the
// statute tables keyed by classification.
func (e *Engine) resolveSections(dom, sub, normalized string, pattern *domain.ScenarioPattern) []domain.Section {
	if pattern != nil && pattern.Domain == dom {
		if pinned := statute.SectionsByKeys(pattern.SectionNumbers); pinned != nil {
			return pinned
		}
	}
	return statute.SectionsFor(dom, sub, normalized)
}

// emptyResult is the sentinel classification for empty input.
func (e *Engine) emptyResult(start time.Time) *domain.Classification {
	return &domain.Classification{
		Domain:           domain.DomainUnknown,
		Confidence:       0.0,
		Method:           domain.MethodRuleBased,
		ClassifiedAt:     time.Now().UTC(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
