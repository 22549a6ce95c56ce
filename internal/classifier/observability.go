package classifier

import (
	"strings"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

const queryExcerptWordLimit = 10

// truncateWords returns the first n words of s, appending "..." if truncated.
func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "..."
}

// logClassified emits one structured Info log per completed classification.
// Complaint text can carry personal detail, so only a short excerpt is logged.
func (e *Engine) logClassified(query string, result *domain.Classification, pattern *domain.ScenarioPattern) {
	fields := []logging.Field{
		logging.String("query_excerpt", truncateWords(query, queryExcerptWordLimit)),
		logging.String("domain", result.Domain),
		logging.Float64("confidence", result.Confidence),
		logging.String("method", result.Method),
		logging.Int64("processing_time_ms", result.ProcessingTimeMs),
	}
	if result.Subdomain != "" {
		fields = append(fields, logging.String("subdomain", result.Subdomain))
	}
	if result.ModelVersion != "" {
		fields = append(fields, logging.String("model_version", result.ModelVersion))
	}
	if pattern != nil {
		fields = append(fields, logging.String("pattern", pattern.Name))
	}
	e.logger.Info("Classification complete", fields...)
}
