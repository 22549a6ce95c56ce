package classifier

import (
	"errors"
	"sort"
	"sync/atomic"

	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// ErrUnknownDomain is returned when subdomain classification is requested
// for a domain outside the taxonomy.
var ErrUnknownDomain = errors.New("unrecognized domain")

// subdomainModel is one domain's fitted second-stage model.
type subdomainModel struct {
	vec *vectorizer
	nb  *naiveBayes
}

// SubdomainClassifier refines a committed domain into a subdomain. Each
// domain with at least two labelled subdomains gets its own Naive Bayes
// model; domains without one degrade to keyword coverage alone. Subdomain
// classification is advisory: it never fails the request, worst case it
// reports the "general" fallback.
type SubdomainClassifier struct {
	models atomic.Pointer[map[string]*subdomainModel]
	logger logging.Logger
}

// NewSubdomainClassifier creates an untrained subdomain classifier. Until
// Train runs, every domain uses the keyword-only path.
func NewSubdomainClassifier(logger logging.Logger) *SubdomainClassifier {
	return &SubdomainClassifier{logger: logger}
}

// Train fits one model per domain that has two or more distinct subdomain
// labels in the examples, then publishes the whole model set atomically.
// Returns the number of domains that got a model.
func (sc *SubdomainClassifier) Train(examples []domain.TrainingExample) int {
	// Group examples by domain, keeping only labelled ones.
	grouped := make(map[string][]domain.TrainingExample)
	for _, ex := range examples {
		if ex.Subdomain != "" {
			grouped[ex.Domain] = append(grouped[ex.Domain], ex)
		}
	}

	models := make(map[string]*subdomainModel, len(grouped))
	for dom, domainExamples := range grouped {
		docs := make([][]string, 0, len(domainExamples))
		labels := make([]string, 0, len(domainExamples))
		for _, ex := range domainExamples {
			docs = append(docs, textnorm.Tokenize(textnorm.Normalize(ex.Text)))
			labels = append(labels, ex.Subdomain)
		}

		vec := fitVectorizer(docs)
		nb, err := fitNaiveBayes(vec, docs, labels)
		if err != nil {
			// Single-subdomain domains stay on the keyword path.
			continue
		}
		models[dom] = &subdomainModel{vec: vec, nb: nb}
	}

	sc.models.Store(&models)
	sc.logger.Info("Subdomain models trained",
		logging.Int("domains", len(models)),
		logging.Int("examples", len(examples)),
	)
	return len(models)
}

// Classify scores the query against the domain's subdomains. With a trained
// model the Naive Bayes posterior and keyword coverage are blended; without
// one, keyword coverage decides alone. All-zero scores fall back to the
// "general" subdomain at low confidence.
func (sc *SubdomainClassifier) Classify(dom, normalizedQuery string) (domain.SubdomainResult, error) {
	subdomains := data.SubdomainsFor(dom)
	if subdomains == nil {
		return domain.SubdomainResult{Subdomain: domain.SubdomainGeneral, Confidence: subdomainLowConfidence}, ErrUnknownDomain
	}

	queryTokens := tokenSet(textnorm.Tokenize(normalizedQuery))

	keyword := make(map[string]float64, len(subdomains))
	for _, sub := range subdomains {
		keyword[sub] = phraseCoverage(normalizedQuery, queryTokens, data.SubdomainKeywords(dom, sub))
	}

	var probs map[string]float64
	if model := sc.modelFor(dom); model != nil {
		probs = model.nb.probabilities(model.vec.termCounts(textnorm.Tokenize(normalizedQuery)))
	}

	scored := make([]domain.Prediction, 0, len(subdomains))
	for _, sub := range subdomains {
		var score float64
		if probs != nil {
			score = subdomainNBWeight*probs[sub] + subdomainKeywordWeight*keyword[sub]
		} else {
			score = keyword[sub]
		}
		if score > 0 {
			scored = append(scored, domain.Prediction{Label: sub, Score: score})
		}
	}

	if len(scored) == 0 {
		return domain.SubdomainResult{Subdomain: domain.SubdomainGeneral, Confidence: subdomainLowConfidence}, nil
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Label < scored[j].Label
	})

	best := scored[0]
	return domain.SubdomainResult{
		Subdomain:    best.Label,
		Confidence:   best.Score,
		Alternatives: topPredictions(scored, maxAlternatives),
	}, nil
}

// modelFor returns the trained model for a domain, or nil.
func (sc *SubdomainClassifier) modelFor(dom string) *subdomainModel {
	models := sc.models.Load()
	if models == nil {
		return nil
	}
	return (*models)[dom]
}

// TrainedDomains returns the domains that currently have a fitted model.
func (sc *SubdomainClassifier) TrainedDomains() []string {
	models := sc.models.Load()
	if models == nil {
		return nil
	}
	out := make([]string, 0, len(*models))
	for dom := range *models {
		out = append(out, dom)
	}
	sort.Strings(out)
	return out
}
