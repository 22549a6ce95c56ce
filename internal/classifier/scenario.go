// scenario.go implements the keyword override layer: an Aho-Corasick
// prefilter over all pattern phrases, exact-phrase confirmation, and a
// context-aware priority policy for picking one pattern when several fire.
package classifier

import (
	"sort"
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// phraseRef locates one phrase within the pattern table.
type phraseRef struct {
	patternIndex int
	phraseIndex  int
}

// ScenarioEngine matches hand-authored scenario patterns against normalized
// queries and resolves unconfident statistical results.
//
// Matching is two-stage: the Aho-Corasick automaton finds candidate phrase
// hits in one pass, then each hit is confirmed exactly. Single-word phrases
// must match a whole query token, so "upi" cannot fire inside "occupied";
// multi-word phrases match on substring containment. A pattern fires only
// when every one of its phrases is confirmed.
type ScenarioEngine struct {
	mu         sync.RWMutex
	matcher    *ahocorasick.Matcher
	patterns   []domain.ScenarioPattern
	needles    []string
	needleRefs map[string][]phraseRef

	fallback *KeywordScorer
	logger   logging.Logger
}

// NewScenarioEngine builds the automaton from the given patterns. Disabled
// patterns are dropped. Pass builtinPatterns() for the stock table.
func NewScenarioEngine(patterns []domain.ScenarioPattern, fallback *KeywordScorer, logger logging.Logger) *ScenarioEngine {
	e := &ScenarioEngine{
		fallback: fallback,
		logger:   logger,
	}
	e.setPatternsLocked(patterns)

	e.logger.Info("Scenario engine initialized",
		logging.Int("patterns", len(e.patterns)),
		logging.Int("phrases", len(e.needles)),
	)
	return e
}

// setPatternsLocked rebuilds the automaton. Callers own e.mu unless the
// engine is not yet shared.
func (e *ScenarioEngine) setPatternsLocked(patterns []domain.ScenarioPattern) {
	enabled := make([]domain.ScenarioPattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Enabled && len(p.Phrases) > 0 {
			enabled = append(enabled, p)
		}
	}

	e.patterns = enabled
	e.needles = make([]string, 0, len(enabled)*2)
	e.needleRefs = make(map[string][]phraseRef)

	for pi := range e.patterns {
		for fi, phrase := range e.patterns[pi].Phrases {
			phrase = strings.ToLower(strings.TrimSpace(phrase))
			if phrase == "" {
				continue
			}
			if _, seen := e.needleRefs[phrase]; !seen {
				e.needles = append(e.needles, phrase)
			}
			e.needleRefs[phrase] = append(e.needleRefs[phrase], phraseRef{patternIndex: pi, phraseIndex: fi})
		}
	}

	if len(e.needles) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(e.needles)
	} else {
		e.matcher = nil
	}
}

// UpdatePatterns hot-reloads the pattern table without restart.
func (e *ScenarioEngine) UpdatePatterns(patterns []domain.ScenarioPattern) {
	e.mu.Lock()
	e.setPatternsLocked(patterns)
	patternCount := len(e.patterns)
	phraseCount := len(e.needles)
	e.mu.Unlock()

	e.logger.Info("Scenario patterns updated",
		logging.Int("patterns", patternCount),
		logging.Int("phrases", phraseCount),
	)
}

// PatternCount returns the number of enabled patterns.
func (e *ScenarioEngine) PatternCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.patterns)
}

// Patterns returns a copy of the enabled pattern table.
func (e *ScenarioEngine) Patterns() []domain.ScenarioPattern {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.ScenarioPattern, len(e.patterns))
	copy(out, e.patterns)
	return out
}

// MatchedPatterns returns every pattern that fires for a normalized query,
// ordered by priority then fixed confidence then registration. Exposed for
// the pattern-testing endpoint.
func (e *ScenarioEngine) MatchedPatterns(normalizedQuery string) []domain.ScenarioPattern {
	matches := e.match(normalizedQuery)
	out := make([]domain.ScenarioPattern, len(matches))
	for i, m := range matches {
		out[i] = *m
	}
	return out
}

// Resolve applies the override policy to a statistical result.
//
// Committed results are never relabelled: when a matching pattern agrees
// with the committed domain the confidence is raised to the pattern's fixed
// confidence (rule and model agreeing is stronger evidence than either
// alone), otherwise the result passes through untouched. Unknown results
// are resolved by the pattern table, or failing that by coarse keyword
// coverage. The second return is the pattern that decided the result, nil
// when none did.
//
// Resolve never fails; the worst case is the unknown sentinel passing
// through.
func (e *ScenarioEngine) Resolve(normalizedQuery string, ml domain.DomainResult) (domain.DomainResult, *domain.ScenarioPattern) {
	matches := e.match(normalizedQuery)

	if ml.Domain != domain.DomainUnknown {
		for _, m := range matches {
			if m.Domain != ml.Domain {
				continue
			}
			boosted := ml
			if m.FixedConfidence > boosted.Confidence {
				boosted.Confidence = m.FixedConfidence
			}
			e.logger.Debug("Pattern agreement boost",
				logging.String("pattern", m.Name),
				logging.String("domain", ml.Domain),
				logging.Float64("ml_confidence", ml.Confidence),
				logging.Float64("boosted_confidence", boosted.Confidence),
			)
			return boosted, m
		}
		return ml, nil
	}

	if len(matches) == 0 {
		if fb := e.fallback.Resolve(normalizedQuery); fb.Domain != domain.DomainUnknown {
			return fb, nil
		}
		return ml, nil
	}

	winner := e.disambiguate(normalizedQuery, matches)
	e.logger.Debug("Scenario override fired",
		logging.String("pattern", winner.Name),
		logging.String("domain", winner.Domain),
		logging.Float64("fixed_confidence", winner.FixedConfidence),
		logging.Int("candidates", len(matches)),
	)

	return domain.DomainResult{
		Domain:       winner.Domain,
		Confidence:   winner.FixedConfidence,
		Alternatives: ml.Alternatives,
	}, winner
}

// match returns pointers to every pattern whose phrases all occur in the
// query, sorted by priority (desc), fixed confidence (desc), then ID (asc).
func (e *ScenarioEngine) match(normalizedQuery string) []*domain.ScenarioPattern {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.matcher == nil || normalizedQuery == "" {
		return nil
	}

	hits := e.matcher.Match([]byte(normalizedQuery))
	if len(hits) == 0 {
		return nil
	}

	queryTokens := tokenSet(textnorm.Tokenize(normalizedQuery))

	// Confirm candidate phrase hits and accumulate per pattern.
	confirmed := make(map[int]map[int]bool)
	for _, hitIndex := range hits {
		if hitIndex >= len(e.needles) {
			continue
		}
		phrase := e.needles[hitIndex]
		if !phraseInQuery(normalizedQuery, queryTokens, phrase) {
			continue
		}
		for _, ref := range e.needleRefs[phrase] {
			if confirmed[ref.patternIndex] == nil {
				confirmed[ref.patternIndex] = make(map[int]bool)
			}
			confirmed[ref.patternIndex][ref.phraseIndex] = true
		}
	}

	matches := make([]*domain.ScenarioPattern, 0, len(confirmed))
	for pi, phrases := range confirmed {
		if len(phrases) == len(e.patterns[pi].Phrases) {
			matches = append(matches, &e.patterns[pi])
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}
		if matches[i].FixedConfidence != matches[j].FixedConfidence {
			return matches[i].FixedConfidence > matches[j].FixedConfidence
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}

// disambiguate picks one winner from multiple fired patterns. Context
// keywords settle physical-versus-cyber readings and strong employment
// words pull toward employment_law; what remains is decided by fixed
// confidence, then registration order.
func (e *ScenarioEngine) disambiguate(normalizedQuery string, matches []*domain.ScenarioPattern) *domain.ScenarioPattern {
	if len(matches) == 1 {
		return matches[0]
	}

	ctx := detectContext(tokenSet(textnorm.Tokenize(normalizedQuery)))
	candidates := matches

	physical := filterByDomain(candidates, domain.DomainCriminalLaw)
	cyber := filterByDomain(candidates, domain.DomainCyberCrime)
	switch {
	case len(physical) > 0 && len(cyber) > 0 && ctx.prefersPhysical():
		candidates = withoutDomain(candidates, domain.DomainCyberCrime)
	case len(physical) > 0 && len(cyber) > 0 && ctx.prefersCyber():
		candidates = withoutDomain(candidates, domain.DomainCriminalLaw)
	}

	if ctx.prefersEmployment() {
		if employment := filterByDomain(candidates, domain.DomainEmploymentLaw); len(employment) > 0 {
			candidates = employment
		}
	}

	winner := candidates[0]
	for _, m := range candidates[1:] {
		if m.FixedConfidence > winner.FixedConfidence {
			winner = m
			continue
		}
		if m.FixedConfidence == winner.FixedConfidence && m.ID < winner.ID {
			winner = m
		}
	}
	return winner
}

// filterByDomain returns the patterns targeting one domain.
func filterByDomain(patterns []*domain.ScenarioPattern, dom string) []*domain.ScenarioPattern {
	out := make([]*domain.ScenarioPattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Domain == dom {
			out = append(out, p)
		}
	}
	return out
}

// withoutDomain returns the patterns not targeting the given domain.
func withoutDomain(patterns []*domain.ScenarioPattern, dom string) []*domain.ScenarioPattern {
	out := make([]*domain.ScenarioPattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Domain != dom {
			out = append(out, p)
		}
	}
	return out
}
