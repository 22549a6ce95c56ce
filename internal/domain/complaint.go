package domain

import "time"

// Complaint represents a minimally-processed citizen complaint.
// This is the input to the classifier service from the intake channels.
type Complaint struct {
	// Core identifiers
	ID      string `json:"id"`
	Channel string `json:"channel,omitempty"` // "web", "mobile", "helpline"

	// Complaint text as typed by the citizen
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`

	// Optional location metadata from intake
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`

	// Timestamps
	ReceivedAt time.Time `json:"received_at"`

	// Processing status
	ClassificationStatus string     `json:"classification_status"` // "pending", "classified", "failed"
	ClassifiedAt         *time.Time `json:"classified_at,omitempty"`

	// Quick metrics
	WordCount int `json:"word_count"`
}

// ClassificationStatus constants
const (
	StatusPending    = "pending"
	StatusClassified = "classified"
	StatusFailed     = "failed"
)

// ClassifiedComplaint represents the full enriched document for Elasticsearch.
// This combines Complaint + Classification, flattened for indexing.
type ClassifiedComplaint struct {
	Complaint

	// Classification results
	Domain       string    `json:"domain"`
	Subdomain    string    `json:"subdomain,omitempty"`
	Confidence   float64   `json:"confidence"`
	Sections     []Section `json:"sections,omitempty"`
	Articles     []string  `json:"articles,omitempty"`

	// Classification metadata
	ClassifierVersion    string `json:"classifier_version"`
	ClassificationMethod string `json:"classification_method"`
	ModelVersion         string `json:"model_version,omitempty"`
}
