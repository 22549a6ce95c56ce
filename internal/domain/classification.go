package domain

import "time"

// Domain labels a complaint can be classified into. The label set is fixed
// at build time; "unknown" is the sentinel for unconfident classifications.
const (
	DomainUnknown = "unknown"

	DomainCriminalLaw       = "criminal_law"
	DomainCyberCrime        = "cyber_crime"
	DomainEmploymentLaw     = "employment_law"
	DomainFamilyLaw         = "family_law"
	DomainPropertyLaw       = "property_law"
	DomainConsumerLaw       = "consumer_law"
	DomainFinancialFraud    = "financial_fraud"
	DomainMedicalNegligence = "medical_negligence"
	DomainAccidentLaw       = "accident_law"
	DomainElderAbuse        = "elder_abuse"
)

// SubdomainGeneral is the fallback subdomain when no finer category can be
// determined for a committed domain.
const SubdomainGeneral = "general"

// ClassificationMethod constants
const (
	MethodRuleBased = "rule_based"
	MethodMLModel   = "ml_model"
	MethodHybrid    = "hybrid"
)

// Prediction is a candidate label with its blended score.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// DomainResult is the output of the primary domain classifier.
// Alternatives holds the top-scored candidates (best first) when the
// classifier is unconfident or wants to expose runners-up; it is nil when
// the query is empty or the score is below the unknown floor.
type DomainResult struct {
	Domain       string       `json:"domain"`
	Confidence   float64      `json:"confidence"`
	Alternatives []Prediction `json:"alternatives,omitempty"`
}

// SubdomainResult is the output of the domain-scoped subdomain classifier.
type SubdomainResult struct {
	Subdomain    string       `json:"subdomain"`
	Confidence   float64      `json:"confidence"`
	Alternatives []Prediction `json:"alternatives,omitempty"`
}

// Classification is the full pipeline result for one complaint: domain,
// subdomain, statutory sections, and procedural guidance.
type Classification struct {
	ComplaintID string `json:"complaint_id,omitempty"`

	Domain       string       `json:"domain"`
	Subdomain    string       `json:"subdomain,omitempty"`
	Confidence   float64      `json:"confidence"`
	Alternatives []Prediction `json:"alternatives,omitempty"`

	// Matching statutory sections, capped at six.
	Sections []Section `json:"sections,omitempty"`

	// Procedural guidance for the (domain, subdomain) pair.
	Guidance *Guidance `json:"guidance,omitempty"`

	// Constitutional articles relevant to the domain.
	Articles []string `json:"articles,omitempty"`

	// Classification metadata
	Method           string    `json:"classification_method"`
	ModelVersion     string    `json:"model_version,omitempty"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	ClassifiedAt     time.Time `json:"classified_at"`
}

// IsUnknown reports whether the classification fell below the commit floor.
func (c *Classification) IsUnknown() bool {
	return c.Domain == DomainUnknown
}
