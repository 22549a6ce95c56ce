package domain

import "time"

// ScenarioPattern is a hand-authored override rule. When every phrase in
// Phrases occurs in a normalized query, the pattern proposes its domain and
// subdomain with a fixed confidence.
type ScenarioPattern struct {
	ID              int       `db:"id"               json:"id"`
	Name            string    `db:"name"             json:"name"`
	Phrases         []string  `db:"phrases"          json:"phrases"`
	Domain          string    `db:"domain"           json:"domain"`
	Subdomain       string    `db:"subdomain"        json:"subdomain,omitempty"`
	FixedConfidence float64   `db:"fixed_confidence" json:"fixed_confidence"`
	SectionNumbers  []string  `db:"section_numbers"  json:"section_numbers,omitempty"`
	Enabled         bool      `db:"enabled"          json:"enabled"`
	Priority        int       `db:"priority"         json:"priority"` // Higher priority patterns evaluated first
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// FeedbackRecord stores one piece of user feedback on a classification.
// Sentiment is derived from the feedback text; Adjustment is the signed
// confidence delta it produced.
type FeedbackRecord struct {
	ID              int       `db:"id"               json:"id"`
	QueryText       string    `db:"query_text"       json:"query_text"`
	NormalizedQuery string    `db:"normalized_query" json:"normalized_query"`
	Domain          string    `db:"domain"           json:"domain"`
	Confidence      float64   `db:"confidence"       json:"confidence"`
	FeedbackText    string    `db:"feedback_text"    json:"feedback_text"`
	Sentiment       string    `db:"sentiment"        json:"sentiment"` // "positive", "negative", "neutral"
	PositiveRatio   float64   `db:"positive_ratio"   json:"positive_ratio"`
	Adjustment      float64   `db:"adjustment"       json:"adjustment"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
}

// Feedback sentiment constants
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ClassificationHistory represents the audit trail for classifications.
type ClassificationHistory struct {
	ID                   int       `db:"id"                    json:"id"`
	ComplaintID          string    `db:"complaint_id"          json:"complaint_id"`
	QueryText            string    `db:"query_text"            json:"query_text"`
	Domain               string    `db:"domain"                json:"domain"`
	Subdomain            string    `db:"subdomain"             json:"subdomain,omitempty"`
	Confidence           float64   `db:"confidence"            json:"confidence"`
	SectionNumbers       []string  `db:"section_numbers"       json:"section_numbers,omitempty"`
	ClassifierVersion    string    `db:"classifier_version"    json:"classifier_version"`
	ClassificationMethod string    `db:"classification_method" json:"classification_method"`
	ModelVersion         string    `db:"model_version"         json:"model_version,omitempty"`
	ProcessingTimeMs     int       `db:"processing_time_ms"    json:"processing_time_ms,omitempty"`
	ClassifiedAt         time.Time `db:"classified_at"         json:"classified_at"`
}

// TrainingExample is one labelled complaint in the training corpus.
type TrainingExample struct {
	Text      string `json:"text"`
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain,omitempty"`
}
