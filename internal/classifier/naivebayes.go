package classifier

import (
	"errors"
	"math"
)

// ErrInsufficientClasses is returned when a training set contains fewer than
// two distinct labels. Naive Bayes cannot fit a single-class problem.
var ErrInsufficientClasses = errors.New("training set needs at least two classes")

// naiveBayes is a multinomial Naive Bayes model over the vectorizer's
// vocabulary columns. Priors and per-class token likelihoods are Laplace
// smoothed so unseen (class, token) pairs never zero out a posterior.
type naiveBayes struct {
	classes       []string
	logPrior      []float64
	logLikelihood [][]float64
}

// fitNaiveBayes trains a multinomial model from tokenized documents and their
// labels, using the vocabulary learned by v. docs and labels are parallel
// slices from the same fit pass as v.
func fitNaiveBayes(v *vectorizer, docs [][]string, labels []string) (*naiveBayes, error) {
	classIndex := make(map[string]int)
	classes := make([]string, 0, 8)
	for _, label := range labels {
		if _, ok := classIndex[label]; !ok {
			classIndex[label] = len(classes)
			classes = append(classes, label)
		}
	}
	if len(classes) < minTrainingClasses {
		return nil, ErrInsufficientClasses
	}

	vocabSize := v.vocabularySize()
	numClasses := len(classes)

	docCount := make([]float64, numClasses)
	tokenCount := make([][]float64, numClasses)
	totalTokens := make([]float64, numClasses)
	for c := range tokenCount {
		tokenCount[c] = make([]float64, vocabSize)
	}

	for i, tokens := range docs {
		c := classIndex[labels[i]]
		docCount[c]++
		for _, tok := range tokens {
			if col, ok := v.vocabulary[tok]; ok {
				tokenCount[c][col]++
				totalTokens[c]++
			}
		}
	}

	nb := &naiveBayes{
		classes:       classes,
		logPrior:      make([]float64, numClasses),
		logLikelihood: make([][]float64, numClasses),
	}

	totalDocs := float64(len(docs))
	for c := range classes {
		nb.logPrior[c] = math.Log((docCount[c] + laplaceAlpha) / (totalDocs + laplaceAlpha*float64(numClasses)))

		denom := totalTokens[c] + laplaceAlpha*float64(vocabSize)
		nb.logLikelihood[c] = make([]float64, vocabSize)
		for col := range nb.logLikelihood[c] {
			nb.logLikelihood[c][col] = math.Log((tokenCount[c][col] + laplaceAlpha) / denom)
		}
	}
	return nb, nil
}

// probabilities returns the posterior distribution over classes for a bag of
// term counts keyed by vocabulary column. Log scores are shifted by their
// maximum before exponentiation so long queries cannot underflow to zero.
func (nb *naiveBayes) probabilities(counts map[int]float64) map[string]float64 {
	logs := make([]float64, len(nb.classes))
	for c := range nb.classes {
		score := nb.logPrior[c]
		for col, count := range counts {
			score += count * nb.logLikelihood[c][col]
		}
		logs[c] = score
	}

	maxLog := logs[0]
	for _, l := range logs[1:] {
		if l > maxLog {
			maxLog = l
		}
	}

	var sum float64
	exps := make([]float64, len(logs))
	for i, l := range logs {
		exps[i] = math.Exp(l - maxLog)
		sum += exps[i]
	}

	probs := make(map[string]float64, len(nb.classes))
	for i, class := range nb.classes {
		probs[class] = exps[i] / sum
	}
	return probs
}
