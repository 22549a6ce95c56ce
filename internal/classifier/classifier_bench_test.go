package classifier_test

import (
	"context"
	"testing"

	"github.com/nyayasetu/classifier/internal/classifier"
	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/logging"
)

func newBenchEngine(b *testing.B) *classifier.Engine {
	b.Helper()

	engine, err := classifier.NewEngine(logging.NewNop(), nil, nil, nil, classifier.Config{Version: "bench"})
	if err != nil {
		b.Fatal(err)
	}
	if !engine.Retrain(context.Background(), data.TrainingCorpus()) {
		b.Fatal("training failed")
	}
	return engine
}

// BenchmarkClassifyQuery measures the full pipeline on cache misses: the
// queries rotate so the result cache never hits.
func BenchmarkClassifyQuery(b *testing.B) {
	engine := newBenchEngine(b)
	ctx := context.Background()

	queries := []string{
		"my phone was stolen at the airport yesterday",
		"someone hacked my online banking account and took money",
		"my boss is not giving my salary for three months",
		"my husband beats me daily and demands dowry",
		"the builder refuses to hand over my flat after full payment",
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.ClassifyQuery(ctx, queries[i%len(queries)]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClassifyQueryCached measures a repeated query, which after the
// first call is served from the LRU cache.
func BenchmarkClassifyQueryCached(b *testing.B) {
	engine := newBenchEngine(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.ClassifyQuery(ctx, "my phone was stolen at the airport"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatchedPatterns measures the override layer alone.
func BenchmarkMatchedPatterns(b *testing.B) {
	engine := newBenchEngine(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = engine.MatchedPatterns("auto rickshaw hit me and the driver ran away without helping")
	}
}

// BenchmarkRetrain measures a full refit of the primary and subdomain models.
func BenchmarkRetrain(b *testing.B) {
	engine := newBenchEngine(b)
	ctx := context.Background()
	corpus := data.TrainingCorpus()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !engine.Retrain(ctx, corpus) {
			b.Fatal("training failed")
		}
	}
}
