package contracts_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/classifier/internal/domain"
)

// The dashboard and downstream consumers read classified complaints straight
// from the archive index, so the JSON shape of ClassifiedComplaint is a
// contract: renaming a field here breaks them silently.

func sampleClassified() *domain.ClassifiedComplaint {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return &domain.ClassifiedComplaint{
		Complaint: domain.Complaint{
			ID:                   "complaint-1",
			Channel:              "web",
			Text:                 "my phone was stolen at the airport",
			Language:             "en",
			District:             "Pune",
			State:                "Maharashtra",
			ReceivedAt:           now,
			ClassificationStatus: domain.StatusClassified,
			ClassifiedAt:         &now,
			WordCount:            7,
		},
		Domain:     "criminal_law",
		Subdomain:  "theft",
		Confidence: 0.82,
		Sections: []domain.Section{
			{SectionNumber: "303", Title: "Theft", Description: "Theft of movable property", Category: "BNS 2023"},
		},
		Articles:             []string{"Article 21"},
		ClassifierVersion:    "1.0.0",
		ClassificationMethod: "statistical",
		ModelVersion:         "v20260314-103000",
	}
}

func TestClassifiedComplaintFieldNames(t *testing.T) {
	payload, err := json.Marshal(sampleClassified())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))

	// Fields the archive mapping and the dashboard both rely on.
	requiredFields := []string{
		"id", "channel", "text", "language",
		"district", "state", "received_at",
		"classification_status", "classified_at", "word_count",
		"domain", "subdomain", "confidence",
		"sections", "articles",
		"classifier_version", "classification_method", "model_version",
	}

	for _, field := range requiredFields {
		assert.Contains(t, doc, field, "classified complaint is missing %q", field)
	}
}

func TestSectionFieldNames(t *testing.T) {
	payload, err := json.Marshal(domain.Section{
		SectionNumber: "318",
		Title:         "Cheating",
		Description:   "Cheating and dishonestly inducing delivery of property",
		Category:      "BNS 2023",
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))

	for _, field := range []string{"section_number", "title", "description", "category"} {
		assert.Contains(t, doc, field, "section is missing %q", field)
	}
}

func TestHistoryRecordFieldNames(t *testing.T) {
	payload, err := json.Marshal(domain.ClassificationHistory{
		ID:                   1,
		ComplaintID:          "complaint-1",
		QueryText:            "my phone was stolen",
		Domain:               "criminal_law",
		Subdomain:            "theft",
		Confidence:           0.82,
		SectionNumbers:       []string{"303"},
		ClassifierVersion:    "1.0.0",
		ClassificationMethod: "statistical",
		ModelVersion:         "v20260314-103000",
		ProcessingTimeMs:     4,
		ClassifiedAt:         time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))

	for _, field := range []string{
		"id", "complaint_id", "query_text", "domain", "subdomain",
		"confidence", "section_numbers", "classifier_version",
		"classification_method", "model_version", "processing_time_ms",
		"classified_at",
	} {
		assert.Contains(t, doc, field, "history record is missing %q", field)
	}
}
