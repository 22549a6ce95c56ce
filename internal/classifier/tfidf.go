package classifier

import "math"

// sparseVector is a TF-IDF document vector keyed by vocabulary column.
// Vectors produced by transform are L2-normalized, so cosine similarity
// between two of them reduces to a dot product.
type sparseVector map[int]float64

// dot computes the inner product of two sparse vectors.
func (a sparseVector) dot(b sparseVector) float64 {
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, av := range a {
		if bv, ok := b[col]; ok {
			sum += av * bv
		}
	}
	return sum
}

// vectorizer maps token streams into TF-IDF space. The vocabulary and IDF
// weights are fixed at fit time; tokens unseen during fitting contribute
// nothing to transformed vectors.
type vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// fitVectorizer learns a vocabulary and IDF weights from tokenized documents.
// IDF uses add-one smoothing on both counts so unseen-at-query-time terms and
// terms present in every document both stay finite and positive:
//
//	idf(t) = ln((N+1)/(df(t)+1)) + 1
func fitVectorizer(docs [][]string) *vectorizer {
	v := &vectorizer{vocabulary: make(map[string]int)}

	docFreq := make([]int, 0, 256)
	seen := make(map[int]bool)
	for _, tokens := range docs {
		for col := range seen {
			delete(seen, col)
		}
		for _, tok := range tokens {
			col, ok := v.vocabulary[tok]
			if !ok {
				col = len(v.vocabulary)
				v.vocabulary[tok] = col
				docFreq = append(docFreq, 0)
			}
			if !seen[col] {
				seen[col] = true
				docFreq[col]++
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(docFreq))
	for col, df := range docFreq {
		v.idf[col] = math.Log((n+1)/(float64(df)+1)) + 1
	}
	return v
}

// transform converts a token stream into an L2-normalized TF-IDF vector.
// Returns an empty vector when no token is in the vocabulary.
func (v *vectorizer) transform(tokens []string) sparseVector {
	vec := make(sparseVector)
	for _, tok := range tokens {
		if col, ok := v.vocabulary[tok]; ok {
			vec[col]++
		}
	}

	var normSq float64
	for col, tf := range vec {
		w := tf * v.idf[col]
		vec[col] = w
		normSq += w * w
	}
	if normSq == 0 {
		return vec
	}

	norm := math.Sqrt(normSq)
	for col := range vec {
		vec[col] /= norm
	}
	return vec
}

// termCounts returns raw in-vocabulary term frequencies for a token stream,
// keyed by vocabulary column. Out-of-vocabulary tokens are dropped.
func (v *vectorizer) termCounts(tokens []string) map[int]float64 {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		if col, ok := v.vocabulary[tok]; ok {
			counts[col]++
		}
	}
	return counts
}

// vocabularySize returns the number of distinct terms learned at fit time.
func (v *vectorizer) vocabularySize() int {
	return len(v.vocabulary)
}
