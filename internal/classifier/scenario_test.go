//nolint:testpackage // Exercising the builtin pattern table requires same package access
package classifier

import (
	"testing"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

func newBuiltinScenarioEngine() *ScenarioEngine {
	nop := logging.NewNop()
	return NewScenarioEngine(builtinPatterns(), NewKeywordScorer(nop), nop)
}

func unknownResult() domain.DomainResult {
	return domain.DomainResult{
		Domain:     domain.DomainUnknown,
		Confidence: 0.30,
		Alternatives: []domain.Prediction{
			{Label: "criminal_law", Score: 0.30},
			{Label: "cyber_crime", Score: 0.21},
		},
	}
}

func TestScenarioEngine_OverridesUnknown(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()
	ml := unknownResult()

	result, pattern := engine.Resolve("my phone was stolen at the airport", ml)

	if pattern == nil || pattern.Name != "phone_theft" {
		t.Fatalf("expected phone_theft pattern, got %+v", pattern)
	}
	if result.Domain != "criminal_law" {
		t.Errorf("domain: got %q, want criminal_law", result.Domain)
	}
	if result.Confidence != confidenceStrong {
		t.Errorf("confidence: got %f, want %f", result.Confidence, confidenceStrong)
	}
	// The statistical candidates ride along for transparency.
	if len(result.Alternatives) != len(ml.Alternatives) {
		t.Errorf("alternatives must pass through, got %v", result.Alternatives)
	}
}

func TestScenarioEngine_AllPhrasesRequired(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	// "phone" alone must not fire phone_theft, and no keyword covers the
	// rest of the query, so the unknown result passes through.
	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.25}
	result, pattern := engine.Resolve("my phone is acting strangely", ml)

	if pattern != nil {
		t.Fatalf("no pattern should fire, got %q", pattern.Name)
	}
	if result.Domain != domain.DomainUnknown {
		t.Errorf("domain: got %q, want unknown", result.Domain)
	}
	if result.Confidence != 0.25 {
		t.Errorf("confidence must pass through, got %f", result.Confidence)
	}
}

func TestScenarioEngine_PartialPhrasesNeverFire(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	// "kill" is one of death_threat's two phrases; without "threatening"
	// in the query the pattern must stay silent.
	for _, m := range engine.MatchedPatterns("people kill animals near my house") {
		if m.Name == "death_threat" {
			t.Fatal("death_threat fired with only one of its phrases present")
		}
	}

	// Both phrases present, it fires.
	matched := engine.MatchedPatterns("he is threatening to kill me")
	if len(matched) != 1 || matched[0].Name != "death_threat" {
		t.Fatalf("expected death_threat to fire, got %+v", matched)
	}
}

func TestScenarioEngine_NeverRelabelsCommitted(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	// The model committed to family_law; a firing criminal pattern must
	// not flip the label.
	ml := domain.DomainResult{Domain: "family_law", Confidence: 0.60}
	result, pattern := engine.Resolve("my phone was stolen at the airport", ml)

	if pattern != nil {
		t.Fatalf("disagreeing pattern must not decide the result, got %q", pattern.Name)
	}
	if result.Domain != "family_law" || result.Confidence != 0.60 {
		t.Errorf("committed result must pass through untouched, got %+v", result)
	}
}

func TestScenarioEngine_AgreementBoost(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	ml := domain.DomainResult{Domain: "criminal_law", Confidence: 0.50}
	result, pattern := engine.Resolve("my phone was stolen at the airport", ml)

	if pattern == nil || pattern.Name != "phone_theft" {
		t.Fatalf("expected phone_theft agreement, got %+v", pattern)
	}
	if result.Domain != "criminal_law" {
		t.Errorf("domain: got %q, want criminal_law", result.Domain)
	}
	if result.Confidence != confidenceStrong {
		t.Errorf("confidence must be raised to %f, got %f", confidenceStrong, result.Confidence)
	}
}

func TestScenarioEngine_BoostNeverLowers(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	ml := domain.DomainResult{Domain: "criminal_law", Confidence: 0.97}
	result, pattern := engine.Resolve("my phone was stolen at the airport", ml)

	if pattern == nil {
		t.Fatal("agreeing pattern expected")
	}
	if result.Confidence != 0.97 {
		t.Errorf("a lower fixed confidence must not reduce the result, got %f", result.Confidence)
	}
}

func TestScenarioEngine_SpecificBeatsGeneric(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	matches := engine.MatchedPatterns("my phone was stolen")
	if len(matches) != 2 {
		t.Fatalf("expected phone_theft and theft_generic, got %+v", matches)
	}
	if matches[0].Name != "phone_theft" || matches[1].Name != "theft_generic" {
		t.Errorf("priority order wrong: %q, %q", matches[0].Name, matches[1].Name)
	}

	_, pattern := engine.Resolve("my phone was stolen", unknownResult())
	if pattern == nil || pattern.Name != "phone_theft" {
		t.Errorf("expected the specific pattern to win, got %+v", pattern)
	}
}

func TestScenarioEngine_ContextDisambiguation(t *testing.T) {
	t.Helper()

	nop := logging.NewNop()
	patterns := []domain.ScenarioPattern{
		{ID: 1, Name: "street_theft", Phrases: []string{"stolen"}, Domain: "criminal_law", Subdomain: "theft", FixedConfidence: 0.85, Priority: 10, Enabled: true},
		{ID: 2, Name: "sim_fraud", Phrases: []string{"sim"}, Domain: "cyber_crime", Subdomain: "identity_theft", FixedConfidence: 0.90, Priority: 10, Enabled: true},
	}
	engine := NewScenarioEngine(patterns, NewKeywordScorer(nop), nop)
	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.30}

	testCases := []struct {
		name       string
		query      string
		wantDomain string
		wantName   string
	}{
		{
			name:       "physical context keeps the criminal reading",
			query:      "my sim card was stolen in the bus",
			wantDomain: "criminal_law",
			wantName:   "street_theft",
		},
		{
			name:       "cyber context keeps the cyber reading",
			query:      "my sim was stolen using an online password trick",
			wantDomain: "cyber_crime",
			wantName:   "sim_fraud",
		},
		{
			name:       "no context falls back to fixed confidence",
			query:      "sim stolen",
			wantDomain: "cyber_crime",
			wantName:   "sim_fraud",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, pattern := engine.Resolve(tc.query, ml)
			if pattern == nil || pattern.Name != tc.wantName {
				t.Fatalf("pattern: got %+v, want %q", pattern, tc.wantName)
			}
			if result.Domain != tc.wantDomain {
				t.Errorf("domain: got %q, want %q", result.Domain, tc.wantDomain)
			}
		})
	}
}

func TestScenarioEngine_EmploymentPreference(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	// Fires death_threat (criminal), salary_unpaid and salary_withheld
	// (employment). Strong employment words pull the resolution toward
	// employment_law.
	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.30}
	result, pattern := engine.Resolve("my boss is threatening to kill me when i ask for my salary", ml)

	if pattern == nil || pattern.Name != "salary_unpaid" {
		t.Fatalf("expected salary_unpaid, got %+v", pattern)
	}
	if result.Domain != "employment_law" {
		t.Errorf("domain: got %q, want employment_law", result.Domain)
	}
}

func TestScenarioEngine_KeywordFallback(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	// No pattern covers this phrasing, but the property_law keyword
	// table does.
	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.22}
	result, pattern := engine.Resolve("the tenant is not paying rent for my flat", ml)

	if pattern != nil {
		t.Fatalf("no pattern should fire, got %q", pattern.Name)
	}
	if result.Domain != "property_law" {
		t.Errorf("domain: got %q, want property_law", result.Domain)
	}
	if result.Confidence <= 0 {
		t.Errorf("keyword coverage must be positive, got %f", result.Confidence)
	}
}

func TestScenarioEngine_UpdatePatterns(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()
	if engine.PatternCount() == 0 {
		t.Fatal("builtin table must not be empty")
	}

	engine.UpdatePatterns([]domain.ScenarioPattern{
		{ID: 1, Name: "pothole_injury", Phrases: []string{"pothole"}, Domain: "accident_law", Subdomain: "road_accidents", FixedConfidence: 0.80, Priority: 10, Enabled: true},
		{ID: 2, Name: "disabled_rule", Phrases: []string{"pothole"}, Domain: "consumer_law", FixedConfidence: 0.99, Priority: 20, Enabled: false},
	})

	if engine.PatternCount() != 1 {
		t.Fatalf("disabled patterns must be dropped, count=%d", engine.PatternCount())
	}

	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0.30}
	result, pattern := engine.Resolve("my scooter skidded into a pothole", ml)
	if pattern == nil || pattern.Name != "pothole_injury" {
		t.Fatalf("expected the reloaded pattern to fire, got %+v", pattern)
	}
	if result.Domain != "accident_law" {
		t.Errorf("domain: got %q, want accident_law", result.Domain)
	}

	// The old table is gone: dowry no longer matches a pattern and falls
	// through to keyword coverage instead.
	_, pattern = engine.Resolve("they are demanding dowry from me", ml)
	if pattern != nil {
		t.Errorf("replaced table must not fire, got %q", pattern.Name)
	}
}

func TestScenarioEngine_EmptyQuery(t *testing.T) {
	t.Helper()

	engine := newBuiltinScenarioEngine()

	ml := domain.DomainResult{Domain: domain.DomainUnknown, Confidence: 0}
	result, pattern := engine.Resolve("", ml)
	if pattern != nil {
		t.Fatalf("empty query must not match, got %q", pattern.Name)
	}
	if result.Domain != domain.DomainUnknown {
		t.Errorf("domain: got %q, want unknown", result.Domain)
	}
}
