//nolint:testpackage // Testing internal model code requires same package access
package classifier

import (
	"errors"
	"math"
	"testing"
)

func TestFitNaiveBayes_RejectsSingleClass(t *testing.T) {
	t.Helper()

	docs := [][]string{{"stolen", "phone"}, {"stolen", "wallet"}}
	v := fitVectorizer(docs)

	_, err := fitNaiveBayes(v, docs, []string{"criminal_law", "criminal_law"})
	if !errors.Is(err, ErrInsufficientClasses) {
		t.Fatalf("expected ErrInsufficientClasses, got %v", err)
	}
}

func TestNaiveBayes_SmoothedPriors(t *testing.T) {
	t.Helper()

	docs := [][]string{
		{"win", "cash", "prize"},
		{"meeting", "tomorrow"},
		{"cash", "prize", "now"},
	}
	labels := []string{"spam", "ham", "spam"}

	v := fitVectorizer(docs)
	nb, err := fitNaiveBayes(v, docs, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Priors with add-one smoothing: spam (2+1)/(3+2), ham (1+1)/(3+2).
	if got := math.Exp(nb.logPrior[0]); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("prior(spam): got %f, want 0.6", got)
	}
	if got := math.Exp(nb.logPrior[1]); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("prior(ham): got %f, want 0.4", got)
	}

	// Likelihood of "cash" given spam: (2+1)/(6+6); given ham: (0+1)/(2+6).
	col := v.vocabulary["cash"]
	if got := math.Exp(nb.logLikelihood[0][col]); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("P(cash|spam): got %f, want 0.25", got)
	}
	if got := math.Exp(nb.logLikelihood[1][col]); math.Abs(got-0.125) > 1e-12 {
		t.Errorf("P(cash|ham): got %f, want 0.125", got)
	}
}

func TestNaiveBayes_Probabilities(t *testing.T) {
	t.Helper()

	docs := [][]string{
		{"win", "cash", "prize"},
		{"meeting", "tomorrow"},
		{"cash", "prize", "now"},
	}
	labels := []string{"spam", "ham", "spam"}

	v := fitVectorizer(docs)
	nb, err := fitNaiveBayes(v, docs, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	probs := nb.probabilities(v.termCounts([]string{"cash"}))

	// Posterior for "cash": spam 0.6*0.25, ham 0.4*0.125, normalized.
	if math.Abs(probs["spam"]-0.75) > 1e-12 {
		t.Errorf("P(spam|cash): got %f, want 0.75", probs["spam"])
	}
	if math.Abs(probs["ham"]-0.25) > 1e-12 {
		t.Errorf("P(ham|cash): got %f, want 0.25", probs["ham"])
	}
}

func TestNaiveBayes_ProbabilitiesSumToOne(t *testing.T) {
	t.Helper()

	docs := [][]string{
		{"stolen", "phone", "market"},
		{"hacked", "account", "online"},
		{"salary", "boss", "office"},
	}
	labels := []string{"criminal_law", "cyber_crime", "employment_law"}

	v := fitVectorizer(docs)
	nb, err := fitNaiveBayes(v, docs, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tokens := range [][]string{
		{"stolen", "phone"},
		{"hacked"},
		{},
		{"stolen", "hacked", "salary", "stolen", "stolen"},
	} {
		probs := nb.probabilities(v.termCounts(tokens))
		var sum float64
		for _, p := range probs {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("probabilities for %v sum to %f, want 1.0", tokens, sum)
		}
	}
}

func TestNaiveBayes_LongQueryNoUnderflow(t *testing.T) {
	t.Helper()

	docs := [][]string{
		{"stolen", "phone"},
		{"hacked", "account"},
	}
	labels := []string{"criminal_law", "cyber_crime"}

	v := fitVectorizer(docs)
	nb, err := fitNaiveBayes(v, docs, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Hundreds of repeated tokens push raw probabilities far below float
	// range; the max-log shift must keep the posterior meaningful.
	long := make([]string, 0, 600)
	for range 300 {
		long = append(long, "stolen", "phone")
	}

	probs := nb.probabilities(v.termCounts(long))
	if probs["criminal_law"] < 0.99 {
		t.Errorf("expected near-certain criminal_law, got %f", probs["criminal_law"])
	}
}
