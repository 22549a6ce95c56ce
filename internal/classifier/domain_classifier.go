package classifier

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/textnorm"
)

// ErrNotTrained is returned when classification is attempted before any
// successful Train call. Callers recover by falling back to keyword scoring.
var ErrNotTrained = errors.New("domain model not trained")

// trainingRow pairs one training document's TF-IDF vector with its label.
type trainingRow struct {
	label  string
	vector sparseVector
}

// domainModel is an immutable model snapshot. The vectorizer, the Naive
// Bayes model, and the retained training matrix all come from the same fit
// pass, so they can never drift out of version sync with each other.
type domainModel struct {
	vec     *vectorizer
	nb      *naiveBayes
	rows    []trainingRow
	version string
}

// DomainClassifier is the statistical primary classifier. It blends a Naive
// Bayes posterior with cosine similarity against the training matrix and
// applies a two-tier confidence floor before committing to a label.
//
// The live model is swapped atomically: Train builds a complete replacement
// snapshot and publishes it only after a successful fit, so concurrent
// Classify calls always see a consistent model and a failed retrain leaves
// the previous model serving.
type DomainClassifier struct {
	model      atomic.Pointer[domainModel]
	generation atomic.Uint64
	logger     logging.Logger

	unknownFloor float64
	commitFloor  float64
}

// NewDomainClassifier creates an untrained domain classifier with the
// default confidence floors.
func NewDomainClassifier(logger logging.Logger) *DomainClassifier {
	return &DomainClassifier{
		logger:       logger,
		unknownFloor: unknownFloor,
		commitFloor:  commitFloor,
	}
}

// SetFloors overrides the two-tier confidence floors. Zero values keep the
// current floors; an inverted or out-of-range pair is rejected with a
// warning. Call before the classifier is shared.
func (dc *DomainClassifier) SetFloors(unknown, commit float64) {
	if unknown == 0 && commit == 0 {
		return
	}
	if unknown <= 0 || commit > 1 || unknown >= commit {
		dc.logger.Warn("Invalid confidence floors ignored",
			logging.Float64("unknown_floor", unknown),
			logging.Float64("commit_floor", commit),
		)
		return
	}
	dc.unknownFloor = unknown
	dc.commitFloor = commit
}

// Train refits the vectorizer and Naive Bayes model from scratch and retains
// the training matrix for cosine scoring. Returns false (keeping the current
// model intact) when the examples span fewer than two domains.
func (dc *DomainClassifier) Train(examples []domain.TrainingExample) bool {
	docs := make([][]string, 0, len(examples))
	labels := make([]string, 0, len(examples))
	for _, ex := range examples {
		docs = append(docs, textnorm.Tokenize(textnorm.Normalize(ex.Text)))
		labels = append(labels, ex.Domain)
	}

	vec := fitVectorizer(docs)
	nb, err := fitNaiveBayes(vec, docs, labels)
	if err != nil {
		dc.logger.Warn("Domain model training rejected, previous model kept",
			logging.Int("examples", len(examples)),
			logging.Error(err),
		)
		return false
	}

	rows := make([]trainingRow, len(docs))
	for i, tokens := range docs {
		rows[i] = trainingRow{label: labels[i], vector: vec.transform(tokens)}
	}

	model := &domainModel{
		vec:     vec,
		nb:      nb,
		rows:    rows,
		version: fmt.Sprintf("nb-tfidf-g%d", dc.generation.Add(1)),
	}
	dc.model.Store(model)

	dc.logger.Info("Domain model trained",
		logging.String("model_version", model.version),
		logging.Int("examples", len(examples)),
		logging.Int("domains", len(nb.classes)),
		logging.Int("vocabulary", vec.vocabularySize()),
	)
	return true
}

// Trained reports whether a model has been published.
func (dc *DomainClassifier) Trained() bool {
	return dc.model.Load() != nil
}

// ModelVersion returns the version tag of the live model, or "" when
// untrained.
func (dc *DomainClassifier) ModelVersion() string {
	if m := dc.model.Load(); m != nil {
		return m.version
	}
	return ""
}

// Classify scores a normalized query against every trained domain and
// applies the two-tier confidence floor. Below unknownFloor the sentinel is
// returned with no alternatives; between the floors the sentinel still
// carries the top candidates; at or above commitFloor the best domain is
// committed. Returns ErrNotTrained before the first successful Train.
func (dc *DomainClassifier) Classify(normalizedQuery string) (domain.DomainResult, error) {
	model := dc.model.Load()
	if model == nil {
		return domain.DomainResult{Domain: domain.DomainUnknown}, ErrNotTrained
	}

	tokens := textnorm.Tokenize(normalizedQuery)
	probs := model.nb.probabilities(model.vec.termCounts(tokens))

	// Per-domain cosine contribution: similarity to the domain's most
	// similar training example. Max aggregation keeps the score monotone
	// when near-duplicate examples are added for a domain.
	queryVec := model.vec.transform(tokens)
	cosine := make(map[string]float64, len(probs))
	for _, row := range model.rows {
		if sim := queryVec.dot(row.vector); sim > cosine[row.label] {
			cosine[row.label] = sim
		}
	}

	scored := make([]domain.Prediction, 0, len(probs))
	for label, p := range probs {
		scored = append(scored, domain.Prediction{
			Label: label,
			Score: nbBlendWeight*p + cosineBlendWeight*cosine[label],
		})
	}
	// Ties broken by label so repeated calls return identical results.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Label < scored[j].Label
	})

	best := scored[0]
	switch {
	case best.Score < dc.unknownFloor:
		return domain.DomainResult{Domain: domain.DomainUnknown, Confidence: best.Score}, nil
	case best.Score < dc.commitFloor:
		return domain.DomainResult{
			Domain:       domain.DomainUnknown,
			Confidence:   best.Score,
			Alternatives: topPredictions(scored, maxAlternatives),
		}, nil
	default:
		return domain.DomainResult{
			Domain:       best.Label,
			Confidence:   best.Score,
			Alternatives: topPredictions(scored, maxAlternatives),
		}, nil
	}
}

// topPredictions returns the first n predictions from an already sorted
// slice, copied so callers cannot mutate model internals.
func topPredictions(scored []domain.Prediction, n int) []domain.Prediction {
	if len(scored) < n {
		n = len(scored)
	}
	out := make([]domain.Prediction, n)
	copy(out, scored[:n])
	return out
}
