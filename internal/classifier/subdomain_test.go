//nolint:testpackage // Testing internal model code requires same package access
package classifier

import (
	"errors"
	"math"
	"testing"

	"github.com/nyayasetu/classifier/internal/data"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

func TestSubdomainClassifier_TrainsEveryDomain(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())

	fitted := sc.Train(data.TrainingCorpus())
	if want := len(data.Domains()); fitted != want {
		t.Fatalf("fitted models: got %d, want %d", fitted, want)
	}
	if got := len(sc.TrainedDomains()); got != fitted {
		t.Errorf("TrainedDomains length: got %d, want %d", got, fitted)
	}
}

func TestSubdomainClassifier_SalaryIssues(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())
	sc.Train(data.TrainingCorpus())

	result, err := sc.Classify("employment_law", "my boss is not giving my salary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Subdomain != "salary_issues" {
		t.Errorf("subdomain: got %q, want salary_issues", result.Subdomain)
	}
	if result.Confidence <= 0.5 {
		t.Errorf("confidence: got %f, want > 0.5", result.Confidence)
	}
	if len(result.Alternatives) == 0 || result.Alternatives[0].Label != result.Subdomain {
		t.Errorf("winner must lead the alternatives, got %v", result.Alternatives)
	}
}

func TestSubdomainClassifier_UnknownDomain(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())
	sc.Train(data.TrainingCorpus())

	result, err := sc.Classify("space_law", "satellite crashed into my field")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
	if result.Subdomain != domain.SubdomainGeneral {
		t.Errorf("subdomain: got %q, want general", result.Subdomain)
	}
	if result.Confidence != subdomainLowConfidence {
		t.Errorf("confidence: got %f, want %f", result.Confidence, subdomainLowConfidence)
	}
}

func TestSubdomainClassifier_KeywordPathWithoutModel(t *testing.T) {
	t.Helper()

	// Untrained: every domain resolves on keyword coverage alone.
	sc := NewSubdomainClassifier(logging.NewNop())

	result, err := sc.Classify("criminal_law", "my wallet was stolen by a pickpocket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Subdomain != "theft" {
		t.Errorf("subdomain: got %q, want theft", result.Subdomain)
	}
	// Three of the ten theft keywords are present.
	if math.Abs(result.Confidence-0.3) > 1e-12 {
		t.Errorf("confidence: got %f, want 0.3", result.Confidence)
	}
}

func TestSubdomainClassifier_GeneralFallback(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())

	result, err := sc.Classify("criminal_law", "qwerty zzz nothing matches")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Subdomain != domain.SubdomainGeneral {
		t.Errorf("subdomain: got %q, want general", result.Subdomain)
	}
	if result.Confidence != subdomainLowConfidence {
		t.Errorf("confidence: got %f, want %f", result.Confidence, subdomainLowConfidence)
	}
	if result.Alternatives != nil {
		t.Errorf("general fallback carries no alternatives, got %v", result.Alternatives)
	}
}

func TestSubdomainClassifier_SingleLabelDomainStaysOnKeywords(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())

	// accident_law has only one labelled subdomain here, so it cannot fit
	// a model; family_law can.
	fitted := sc.Train([]domain.TrainingExample{
		{Text: "truck hit my car on the highway", Domain: "accident_law", Subdomain: "road_accidents"},
		{Text: "bus collided with my bike near the signal", Domain: "accident_law", Subdomain: "road_accidents"},
		{Text: "my husband beats me daily", Domain: "family_law", Subdomain: "domestic_violence"},
		{Text: "i want divorce from my wife", Domain: "family_law", Subdomain: "divorce"},
	})
	if fitted != 1 {
		t.Fatalf("fitted models: got %d, want 1", fitted)
	}
	trained := sc.TrainedDomains()
	if len(trained) != 1 || trained[0] != "family_law" {
		t.Fatalf("trained domains: got %v, want [family_law]", trained)
	}

	// The modelless domain still classifies through its keyword table.
	result, err := sc.Classify("accident_law", "a bus hit my car at the crossing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Subdomain != "road_accidents" {
		t.Errorf("subdomain: got %q, want road_accidents", result.Subdomain)
	}
}

func TestSubdomainClassifier_UnlabelledExamplesIgnored(t *testing.T) {
	t.Helper()

	sc := NewSubdomainClassifier(logging.NewNop())

	fitted := sc.Train([]domain.TrainingExample{
		{Text: "my phone was stolen", Domain: "criminal_law"},
		{Text: "i was robbed at night", Domain: "criminal_law"},
	})
	if fitted != 0 {
		t.Errorf("unlabelled examples must not fit models, got %d", fitted)
	}
}
