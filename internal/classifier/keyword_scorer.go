package classifier

import (
	"sort"
	"strings"

	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// KeywordScorer scores queries against the static domain keyword table.
// It is the coarse fallback used when the statistical model is untrained or
// when no scenario pattern resolves an unknown result.
type KeywordScorer struct {
	logger   logging.Logger
	keywords map[string][]string
}

// NewKeywordScorer builds a scorer over the full domain taxonomy.
func NewKeywordScorer(logger logging.Logger) *KeywordScorer {
	keywords := make(map[string][]string)
	for _, d := range data.Domains() {
		keywords[d] = data.DomainKeywords(d)
	}
	return &KeywordScorer{logger: logger, keywords: keywords}
}

// Score returns the keyword coverage per domain for a normalized query.
// Domains with zero coverage are omitted.
func (k *KeywordScorer) Score(normalizedQuery string) map[string]float64 {
	queryTokens := tokenSet(textnorm.Tokenize(normalizedQuery))

	scores := make(map[string]float64)
	for dom, phrases := range k.keywords {
		if coverage := phraseCoverage(normalizedQuery, queryTokens, phrases); coverage > 0 {
			scores[dom] = coverage
		}
	}
	return scores
}

// Resolve returns the highest-coverage domain, or the unknown sentinel when
// no keyword matches at all. Any nonzero coverage commits; the caller asked
// for a keyword opinion precisely because the model had none.
func (k *KeywordScorer) Resolve(normalizedQuery string) domain.DomainResult {
	scores := k.Score(normalizedQuery)
	if len(scores) == 0 {
		return domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.0}
	}

	scored := make([]domain.Prediction, 0, len(scores))
	for dom, score := range scores {
		scored = append(scored, domain.Prediction{Label: dom, Score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Label < scored[j].Label
	})

	best := scored[0]
	k.logger.Debug("Keyword fallback resolved",
		logging.String("domain", best.Label),
		logging.Float64("coverage", best.Score),
	)
	return domain.DomainResult{
		Domain:       best.Label,
		Confidence:   best.Score,
		Alternatives: topPredictions(scored, maxAlternatives),
	}
}

// phraseCoverage returns the fraction of phrases present in a normalized
// query. Multi-word phrases match on substring containment; single words
// must match a whole query token so "rob" cannot match inside "problem".
func phraseCoverage(query string, queryTokens map[string]bool, phrases []string) float64 {
	if len(phrases) == 0 {
		return 0.0
	}

	matched := 0
	for _, phrase := range phrases {
		if phraseInQuery(query, queryTokens, phrase) {
			matched++
		}
	}
	return float64(matched) / float64(len(phrases))
}

// phraseInQuery reports whether one phrase occurs in the query.
func phraseInQuery(query string, queryTokens map[string]bool, phrase string) bool {
	if strings.Contains(phrase, " ") {
		return strings.Contains(query, phrase)
	}
	return queryTokens[phrase]
}

// tokenSet converts a token slice into a membership set.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
