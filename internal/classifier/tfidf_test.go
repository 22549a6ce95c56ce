//nolint:testpackage // Testing internal model code requires same package access
package classifier

import (
	"math"
	"testing"
)

func TestFitVectorizer_IDFWeights(t *testing.T) {
	t.Helper()

	docs := [][]string{
		{"theft", "phone", "theft"},
		{"salary", "boss"},
		{"theft", "salary"},
	}

	v := fitVectorizer(docs)

	if v.vocabularySize() != 4 {
		t.Fatalf("vocabulary size: got %d, want 4", v.vocabularySize())
	}

	// N=3; "theft" appears in 2 docs, "boss" in 1.
	wantTheft := math.Log(4.0/3.0) + 1
	wantBoss := math.Log(4.0/2.0) + 1

	if got := v.idf[v.vocabulary["theft"]]; math.Abs(got-wantTheft) > 1e-12 {
		t.Errorf("idf(theft): got %f, want %f", got, wantTheft)
	}
	if got := v.idf[v.vocabulary["boss"]]; math.Abs(got-wantBoss) > 1e-12 {
		t.Errorf("idf(boss): got %f, want %f", got, wantBoss)
	}

	// A term in every document still gets positive weight.
	all := fitVectorizer([][]string{{"my"}, {"my"}, {"my"}})
	if got := all.idf[all.vocabulary["my"]]; got <= 0 {
		t.Errorf("idf of ubiquitous term must stay positive, got %f", got)
	}
}

func TestTransform_L2Normalized(t *testing.T) {
	t.Helper()

	v := fitVectorizer([][]string{
		{"theft", "phone"},
		{"salary", "boss"},
	})

	vec := v.transform([]string{"theft", "theft", "phone"})

	var normSq float64
	for _, w := range vec {
		normSq += w * w
	}
	if math.Abs(normSq-1.0) > 1e-12 {
		t.Errorf("squared norm: got %f, want 1.0", normSq)
	}

	// Repeated terms must outweigh single ones after weighting.
	if vec[v.vocabulary["theft"]] <= vec[v.vocabulary["phone"]] {
		t.Errorf("expected theft weight > phone weight, got %f vs %f",
			vec[v.vocabulary["theft"]], vec[v.vocabulary["phone"]])
	}
}

func TestTransform_OutOfVocabulary(t *testing.T) {
	t.Helper()

	v := fitVectorizer([][]string{
		{"theft", "phone"},
		{"salary", "boss"},
	})

	vec := v.transform([]string{"zebra", "quantum"})
	if len(vec) != 0 {
		t.Errorf("expected empty vector for out-of-vocabulary tokens, got %v", vec)
	}

	// Mixed input keeps only the known token.
	mixed := v.transform([]string{"zebra", "theft"})
	if len(mixed) != 1 {
		t.Errorf("expected single-component vector, got %v", mixed)
	}
	if math.Abs(mixed[v.vocabulary["theft"]]-1.0) > 1e-12 {
		t.Errorf("single-term vector must normalize to 1.0, got %f", mixed[v.vocabulary["theft"]])
	}
}

func TestSparseVector_Dot(t *testing.T) {
	t.Helper()

	v := fitVectorizer([][]string{
		{"theft", "phone", "market"},
		{"salary", "boss", "office"},
	})

	theft := v.transform([]string{"theft", "phone"})
	salary := v.transform([]string{"salary", "boss"})

	if got := theft.dot(salary); got != 0 {
		t.Errorf("disjoint vectors: got %f, want 0", got)
	}
	if got := theft.dot(theft); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("self similarity: got %f, want 1.0", got)
	}

	// Partial overlap lands strictly between.
	partial := v.transform([]string{"theft", "office"})
	sim := theft.dot(partial)
	if sim <= 0 || sim >= 1 {
		t.Errorf("partial overlap similarity out of range: %f", sim)
	}
}

func TestTermCounts(t *testing.T) {
	t.Helper()

	v := fitVectorizer([][]string{
		{"theft", "phone"},
		{"salary", "boss"},
	})

	counts := v.termCounts([]string{"theft", "theft", "phone", "zebra"})

	if got := counts[v.vocabulary["theft"]]; got != 2 {
		t.Errorf("count(theft): got %f, want 2", got)
	}
	if got := counts[v.vocabulary["phone"]]; got != 1 {
		t.Errorf("count(phone): got %f, want 1", got)
	}
	if len(counts) != 2 {
		t.Errorf("unknown tokens must be dropped, got %v", counts)
	}
}
